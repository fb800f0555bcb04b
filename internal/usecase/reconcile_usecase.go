package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase/interfaces"
)

var (
	ErrIntegrityViolation       = errors.New("line item integrity violation")
	ErrReconciliationNotReached = errors.New("assessment has not reached the finalization stage")
	ErrSnapshotNotLocked        = errors.New("frc snapshot is not finalized")
)

// IReconcileUseCase merges the current estimate lines and decided
// additionals into the assessment's FRC snapshot.

type IReconcileUseCase interface {
	Merge(ctx context.Context, assessmentID string) (entities.FRCSnapshot, error)
	Get(ctx context.Context, assessmentID string) (entities.FRCSnapshot, error)
	Reopen(ctx context.Context, assessmentID string) (entities.FRCSnapshot, error)
}

type ReconcileUseCase struct {
	assessments interfaces.IAssessmentRepository
	lines       interfaces.ILineItemRepository
	snapshots   interfaces.IFRCRepository
	audit       interfaces.IAuditSink
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(assessments interfaces.IAssessmentRepository, lines interfaces.ILineItemRepository, snapshots interfaces.IFRCRepository, audit interfaces.IAuditSink) *ReconcileUseCase {
	return &ReconcileUseCase{assessments: assessments, lines: lines, snapshots: snapshots, audit: audit}
}

// Merge recomputes the FRC snapshot. The merge is a replace, not an append:
// it is a pure function of (estimate lines, decided additionals, previous
// snapshot by fingerprint), so re-running it with unchanged inputs
// reproduces the same line set. Prior decisions on unchanged fingerprints
// are preserved. The persisted write always bumps the version, marking the
// snapshot as refreshed even when content did not change.
//
// On a lost version race the whole merge re-runs once against the fresh
// base; merging against a stale base is never correct.
func (u *ReconcileUseCase) Merge(ctx context.Context, assessmentID string) (entities.FRCSnapshot, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.FRCSnapshot{}, ErrInvalidAssessmentID
	}

	a, err := u.assessments.GetByID(ctx, assessmentID)
	if err != nil {
		return entities.FRCSnapshot{}, err
	}
	if a.ID == "" {
		return entities.FRCSnapshot{}, ErrAssessmentNotFound
	}
	if a.Stage == entities.StageCancelled || !a.Stage.AtOrAfter(entities.StageFinalized) {
		return entities.FRCSnapshot{}, ErrReconciliationNotReached
	}

	for attempt := 0; attempt < 2; attempt++ {
		prev, err := u.snapshots.Get(ctx, assessmentID)
		if err != nil {
			return entities.FRCSnapshot{}, err
		}
		if prev.AssessmentID != "" && prev.Locked {
			return entities.FRCSnapshot{}, ErrSnapshotLocked
		}

		estimates, err := u.lines.ListEstimateLines(ctx, assessmentID)
		if err != nil {
			return entities.FRCSnapshot{}, err
		}
		additionals, err := u.lines.ListAdditionalLines(ctx, assessmentID)
		if err != nil {
			return entities.FRCSnapshot{}, err
		}

		merged, err := buildSnapshot(assessmentID, estimates, additionals, prev)
		if err != nil {
			return entities.FRCSnapshot{}, err
		}

		written, err := u.snapshots.Write(ctx, merged, prev.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[frc][usecase] merge version conflict assessment_id=%s attempt=%d", assessmentID, attempt+1)
			continue
		}
		if err != nil {
			return entities.FRCSnapshot{}, err
		}

		if err := appendAudit(ctx, u.audit, entities.AuditEntry{
			EntityType: "frc_snapshot",
			EntityID:   assessmentID,
			Action:     "merged",
			NewValue:   fmt.Sprintf("lines=%d grand_total=%.2f version=%d", len(written.Lines), written.GrandTotal, written.Version),
		}); err != nil {
			return entities.FRCSnapshot{}, err
		}
		log.Printf("[frc][usecase] merge success assessment_id=%s lines=%d version=%d", assessmentID, len(written.Lines), written.Version)
		return written, nil
	}
	return entities.FRCSnapshot{}, ErrConcurrencyConflict
}

func (u *ReconcileUseCase) Get(ctx context.Context, assessmentID string) (entities.FRCSnapshot, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.FRCSnapshot{}, ErrInvalidAssessmentID
	}
	snap, err := u.snapshots.Get(ctx, assessmentID)
	if err != nil {
		return entities.FRCSnapshot{}, err
	}
	if snap.AssessmentID == "" {
		return entities.FRCSnapshot{}, ErrSnapshotNotFound
	}
	return snap, nil
}

// Reopen clears a finalized snapshot's immutability so merges and decisions
// can run again. Decisions recorded for unchanged fingerprints survive the
// next merge.
func (u *ReconcileUseCase) Reopen(ctx context.Context, assessmentID string) (entities.FRCSnapshot, error) {
	for attempt := 0; attempt < 2; attempt++ {
		snap, err := u.Get(ctx, assessmentID)
		if err != nil {
			return entities.FRCSnapshot{}, err
		}
		if !snap.Locked {
			return entities.FRCSnapshot{}, ErrSnapshotNotLocked
		}

		snap.Locked = false
		written, err := u.snapshots.Write(ctx, snap, snap.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return entities.FRCSnapshot{}, err
		}

		if err := appendAudit(ctx, u.audit, entities.AuditEntry{
			EntityType: "frc_snapshot",
			EntityID:   assessmentID,
			Action:     "reopened",
		}); err != nil {
			return entities.FRCSnapshot{}, err
		}
		return written, nil
	}
	return entities.FRCSnapshot{}, ErrConcurrencyConflict
}

// buildSnapshot is the pure merge. It never touches storage.
func buildSnapshot(assessmentID string, estimates []entities.EstimateLine, additionals []entities.AdditionalLine, prev entities.FRCSnapshot) (entities.FRCSnapshot, error) {
	prevByFp := make(map[string]entities.FRCLine, len(prev.Lines))
	for _, l := range prev.Lines {
		prevByFp[l.Fingerprint] = l
	}

	sort.Slice(estimates, func(i, j int) bool { return estimates[i].LineNumber < estimates[j].LineNumber })

	lines := make([]entities.FRCLine, 0, len(estimates)+len(additionals))
	estFpByID := make(map[string]string, len(estimates))
	estIdxByFp := make(map[string]int, len(estimates))

	for _, e := range estimates {
		fp := entities.FingerprintEstimateLine(e)
		l := entities.FRCLine{
			Fingerprint: fp,
			Source:      entities.FRCSourceEstimate,
			Decision:    entities.FRCDecisionPending,
			LineNumber:  e.LineNumber,
			Description: e.Description,
			Category:    e.Category,
			PartType:    e.PartType,
			QuotedTotal: e.Amounts.Total(),
		}
		// Preserve the engineer's prior work; only the quoted side refreshes
		// when the underlying estimate changed. Auto-assigned decisions
		// (removed/declined) are re-derived from the current additionals, so
		// retracting a removal returns the line to pending.
		if p, ok := prevByFp[fp]; ok && !p.Decision.AutoDecided() {
			l.Decision = p.Decision
			l.ActualTotal = p.ActualTotal
			l.AdjustReason = p.AdjustReason
		}
		estFpByID[e.ID] = fp
		estIdxByFp[fp] = len(lines)
		lines = append(lines, l)
	}

	sort.Slice(additionals, func(i, j int) bool {
		if !additionals[i].CreatedAt.Equal(additionals[j].CreatedAt) {
			return additionals[i].CreatedAt.Before(additionals[j].CreatedAt)
		}
		return additionals[i].ID < additionals[j].ID
	})

	removedTargets := make(map[string]bool)
	nextNumber := len(estimates) + 1
	for _, add := range additionals {
		if !add.Status.IsDecided() {
			continue
		}

		var targetFp string
		if add.Action == entities.AdditionalActionRemove {
			fp, ok := estFpByID[add.RemovesLineID]
			if !ok {
				return entities.FRCSnapshot{}, fmt.Errorf("%w: removal %s references missing estimate line %s", ErrIntegrityViolation, add.ID, add.RemovesLineID)
			}
			if add.Status == entities.AdditionalStatusApproved && removedTargets[fp] {
				return entities.FRCSnapshot{}, fmt.Errorf("%w: estimate line %s already negated by an earlier removal", ErrIntegrityViolation, add.RemovesLineID)
			}
			targetFp = fp
		}

		fp := entities.FingerprintAdditionalLine(add, targetFp)
		l := entities.FRCLine{
			Fingerprint: fp,
			Source:      entities.FRCSourceAdditional,
			Decision:    entities.FRCDecisionPending,
			LineNumber:  nextNumber,
			Description: add.Description,
			Category:    add.Category,
			PartType:    add.PartType,
			QuotedTotal: add.Amounts.Total(),
		}
		nextNumber++

		switch {
		case add.Status == entities.AdditionalStatusDeclined:
			l.Decision = entities.FRCDecisionDeclined
		case add.Action == entities.AdditionalActionRemove:
			// Approved removals are pre-agreed: the negative line lands with
			// its negative total so the pair nets to zero, and the negated
			// original is taken out of the actionable set.
			l.Decision = entities.FRCDecisionRemoved
			l.ActualTotal = l.QuotedTotal
			removedTargets[targetFp] = true
			i := estIdxByFp[targetFp]
			lines[i].RemovedViaAdditionals = true
			lines[i].Decision = entities.FRCDecisionRemoved
			lines[i].ActualTotal = lines[i].QuotedTotal
			lines[i].AdjustReason = ""
		default:
			if p, ok := prevByFp[fp]; ok && !p.Decision.AutoDecided() {
				l.Decision = p.Decision
				l.ActualTotal = p.ActualTotal
				l.AdjustReason = p.AdjustReason
			}
		}
		lines = append(lines, l)
	}

	snap := entities.FRCSnapshot{
		AssessmentID: assessmentID,
		Lines:        lines,
		Version:      prev.Version,
		Locked:       prev.Locked,
		MergedAt:     time.Now().UTC(),
	}
	snap.RecomputeTotals()
	return snap, nil
}
