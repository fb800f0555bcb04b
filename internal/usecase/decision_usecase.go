package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase/interfaces"
)

var (
	ErrDecisionNotAllowed   = errors.New("decision not allowed")
	ErrLineAlreadyDecided   = errors.New("frc line already decided")
	ErrFRCLineNotFound      = errors.New("frc line not found")
	ErrAdjustReasonRequired = errors.New("adjust requires a reason")
	ErrActualTotalRequired  = errors.New("adjust requires an actual total")
)

// IDecisionUseCase records per-line reconciliation decisions on top of the
// merged snapshot.

type IDecisionUseCase interface {
	Decide(ctx context.Context, assessmentID, fingerprint string, decision entities.FRCDecision, actualTotal *float64, reason string) (entities.FRCSnapshot, error)
}

type DecisionUseCase struct {
	snapshots interfaces.IFRCRepository
	audit     interfaces.IAuditSink
}

var _ IDecisionUseCase = (*DecisionUseCase)(nil)

func NewDecisionUseCase(snapshots interfaces.IFRCRepository, audit interfaces.IAuditSink) *DecisionUseCase {
	return &DecisionUseCase{snapshots: snapshots, audit: audit}
}

// Decide moves one pending line to agree or adjust. removed and declined are
// assigned by the merge only and can never be set through this call. agree
// copies the quoted total into the actual verbatim; adjust requires a reason
// and a caller-supplied actual total.
//
// The write is a compare-and-swap on the snapshot version; a lost race
// retries the whole decision once against the reloaded snapshot.
func (u *DecisionUseCase) Decide(ctx context.Context, assessmentID, fingerprint string, decision entities.FRCDecision, actualTotal *float64, reason string) (entities.FRCSnapshot, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.FRCSnapshot{}, ErrInvalidAssessmentID
	}
	fingerprint = strings.TrimSpace(fingerprint)
	if fingerprint == "" {
		return entities.FRCSnapshot{}, ErrFRCLineNotFound
	}
	if decision != entities.FRCDecisionAgree && decision != entities.FRCDecisionAdjust {
		return entities.FRCSnapshot{}, ErrDecisionNotAllowed
	}
	if decision == entities.FRCDecisionAdjust {
		if strings.TrimSpace(reason) == "" {
			return entities.FRCSnapshot{}, ErrAdjustReasonRequired
		}
		if actualTotal == nil {
			return entities.FRCSnapshot{}, ErrActualTotalRequired
		}
	}

	for attempt := 0; attempt < 2; attempt++ {
		snap, err := u.snapshots.Get(ctx, assessmentID)
		if err != nil {
			return entities.FRCSnapshot{}, err
		}
		if snap.AssessmentID == "" {
			return entities.FRCSnapshot{}, ErrSnapshotNotFound
		}
		if snap.Locked {
			return entities.FRCSnapshot{}, ErrSnapshotLocked
		}

		idx := -1
		for i := range snap.Lines {
			if snap.Lines[i].Fingerprint == fingerprint {
				idx = i
				break
			}
		}
		if idx < 0 {
			return entities.FRCSnapshot{}, ErrFRCLineNotFound
		}
		line := snap.Lines[idx]
		if line.Decision != entities.FRCDecisionPending {
			return entities.FRCSnapshot{}, ErrLineAlreadyDecided
		}

		old := line.Decision
		line.Decision = decision
		if decision == entities.FRCDecisionAgree {
			line.ActualTotal = line.QuotedTotal
			line.AdjustReason = ""
		} else {
			line.ActualTotal = *actualTotal
			line.AdjustReason = strings.TrimSpace(reason)
		}
		snap.Lines[idx] = line
		snap.RecomputeTotals()

		written, err := u.snapshots.Write(ctx, snap, snap.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[frc][usecase] decision version conflict assessment_id=%s fingerprint=%s attempt=%d", assessmentID, fingerprint, attempt+1)
			continue
		}
		if err != nil {
			return entities.FRCSnapshot{}, err
		}

		if err := appendAudit(ctx, u.audit, entities.AuditEntry{
			EntityType: "frc_line",
			EntityID:   assessmentID + "#" + fingerprint,
			Action:     "decision",
			OldValue:   string(old),
			NewValue:   string(decision),
			Metadata:   map[string]string{"actual_total": fmt.Sprintf("%.2f", line.ActualTotal)},
		}); err != nil {
			return entities.FRCSnapshot{}, err
		}
		return written, nil
	}
	return entities.FRCSnapshot{}, ErrConcurrencyConflict
}

// FRCComplete is the completion predicate: the assessment may leave the
// reconciliation stage only when no line is still pending. Lines the merge
// decided itself (removed, declined) are not actionable and never block
// completion.
func FRCComplete(snap entities.FRCSnapshot) bool {
	for _, l := range snap.Lines {
		if l.Decision == entities.FRCDecisionPending {
			return false
		}
	}
	return true
}
