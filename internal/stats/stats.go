// Package stats holds the pure aggregation helpers behind the dashboard
// endpoints. Everything operates on already-loaded slices; nothing here
// touches the database.
package stats

import "strings"

// CountByStatus tallies records per status value.
func CountByStatus[T any](records []T, status func(T) string) map[string]int {
	out := make(map[string]int)
	for _, r := range records {
		out[status(r)]++
	}
	return out
}

// SumByStatus totals an amount per status value.
func SumByStatus[T any](records []T, status func(T) string, amount func(T) int64) map[string]int64 {
	out := make(map[string]int64)
	for _, r := range records {
		out[status(r)] += amount(r)
	}
	return out
}

// FilterByStatus keeps records whose status matches exactly.
func FilterByStatus[T any](records []T, want string, status func(T) string) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if status(r) == want {
			out = append(out, r)
		}
	}
	return out
}

// FilterByFreeText keeps records where any of the given fields contains the
// query, case-insensitively. An empty query keeps everything.
func FilterByFreeText[T any](records []T, query string, fields func(T) []string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		for _, f := range fields(r) {
			if strings.Contains(strings.ToLower(f), query) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
