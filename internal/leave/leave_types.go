package leave

import "strings"

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Canonical leave types. Every stored row carries one of these.
const (
	TypePaid      = "PAID"
	TypeUnpaid    = "UNPAID"
	TypeSick      = "SICK"
	TypeMaternity = "MATERNITY"
	TypePaternity = "PATERNITY"
)

// legacyLeaveTypes maps the labels older clients still send to the canonical
// set. Lookup keys are lowercase.
var legacyLeaveTypes = map[string]string{
	"annual":      TypePaid,
	"conge paye":  TypePaid,
	"congé payé":  TypePaid,
	"sans solde":  TypeUnpaid,
	"other":       TypeUnpaid,
	"maladie":     TypeSick,
	"maternite":   TypeMaternity,
	"maternité":   TypeMaternity,
	"parental":    TypePaternity,
	"paternite":   TypePaternity,
	"paternité":   TypePaternity,
}

// normalizeLeaveType resolves a client-supplied label to a canonical type.
// The second return is false when the label is not recognized.
func normalizeLeaveType(v string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(v))
	switch upper {
	case TypePaid, TypeUnpaid, TypeSick, TypeMaternity, TypePaternity:
		return upper, true
	}
	if canonical, ok := legacyLeaveTypes[strings.ToLower(strings.TrimSpace(v))]; ok {
		return canonical, true
	}
	return "", false
}

// isAllowedStatusTransition encodes the approval workflow: a pending request
// is either approved or rejected, and both outcomes are final.
func isAllowedStatusTransition(currentStatus, targetStatus string) bool {
	if currentStatus != StatusPending {
		return false
	}
	return targetStatus == StatusApproved || targetStatus == StatusRejected
}
