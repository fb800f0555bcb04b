package usecase

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// appendAudit appends a change record to the audit sink. Sink failures are
// logged and swallowed so the primary operation still succeeds; set
// AUDIT_STRICT to propagate them instead.
func appendAudit(ctx context.Context, sink interfaces.IAuditSink, e entities.AuditEntry) error {
	if sink == nil {
		return nil
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	if err := sink.Append(ctx, e); err != nil {
		if isAuditStrict() {
			return err
		}
		log.Printf("[audit][usecase] append failed entity=%s id=%s action=%s err=%v", e.EntityType, e.EntityID, e.Action, err)
	}
	return nil
}

func isAuditStrict() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("AUDIT_STRICT"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
