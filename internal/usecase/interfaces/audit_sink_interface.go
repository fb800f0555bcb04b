package interfaces

import (
	"context"
	"vistoria_xpto/internal/domain/entities"
)

// IAuditSink is the append-only change log consumed by every mutating
// usecase. Appends are fire-and-forget from the caller's perspective: a sink
// failure is logged and must not abort the primary operation, unless the
// deployment opts into strict mode (AUDIT_STRICT).

type IAuditSink interface {
	Append(ctx context.Context, e entities.AuditEntry) error
}
