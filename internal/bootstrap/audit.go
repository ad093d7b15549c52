package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records actions that must stay traceable after the fact
// (payments, server lifecycle). Implementations must never fail the caller.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
