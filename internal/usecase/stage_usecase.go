package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidTransition   = errors.New("invalid stage transition")
	ErrMissingPrerequisite = errors.New("missing prerequisite for stage transition")
)

// IStageUseCase governs the assessment lifecycle stage.
//
// Transitions advance one stage at a time, re-validating prerequisite data
// at call time. Cancellation is legal from any non-terminal stage and
// bypasses linked-record invariants.

type IStageUseCase interface {
	Transition(ctx context.Context, assessmentID string, target entities.AssessmentStage) (entities.Assessment, error)
	Cancel(ctx context.Context, assessmentID, reason string) (entities.Assessment, error)
}

type StageUseCase struct {
	repo      interfaces.IAssessmentRepository
	snapshots interfaces.IFRCRepository
	audit     interfaces.IAuditSink
	notifier  interfaces.IStageNotifier
}

var _ IStageUseCase = (*StageUseCase)(nil)

func NewStageUseCase(repo interfaces.IAssessmentRepository, snapshots interfaces.IFRCRepository, audit interfaces.IAuditSink, notifier interfaces.IStageNotifier) *StageUseCase {
	return &StageUseCase{repo: repo, snapshots: snapshots, audit: audit, notifier: notifier}
}

func (u *StageUseCase) Transition(ctx context.Context, assessmentID string, target entities.AssessmentStage) (entities.Assessment, error) {
	if target == entities.StageCancelled {
		return u.Cancel(ctx, assessmentID, "")
	}
	if !target.IsValid() {
		return entities.Assessment{}, ErrInvalidStage
	}
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.Assessment{}, ErrInvalidAssessmentID
	}

	// One automatic retry on a lost optimistic-concurrency race; the whole
	// validation re-runs against the fresh record, never just the write.
	for attempt := 0; attempt < 2; attempt++ {
		a, err := u.repo.GetByID(ctx, assessmentID)
		if err != nil {
			return entities.Assessment{}, err
		}
		if a.ID == "" {
			return entities.Assessment{}, ErrAssessmentNotFound
		}

		if err := u.validateTransition(ctx, a, target); err != nil {
			return entities.Assessment{}, err
		}

		updated, err := u.repo.UpdateStage(ctx, a.ID, target, "", a.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[stage][usecase] version conflict assessment_id=%s target=%s attempt=%d", a.ID, target, attempt+1)
			continue
		}
		if err != nil {
			return entities.Assessment{}, err
		}

		if err := u.afterStageWrite(ctx, a, updated, ""); err != nil {
			return entities.Assessment{}, err
		}
		return updated, nil
	}
	return entities.Assessment{}, ErrConcurrencyConflict
}

func (u *StageUseCase) Cancel(ctx context.Context, assessmentID, reason string) (entities.Assessment, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.Assessment{}, ErrInvalidAssessmentID
	}

	for attempt := 0; attempt < 2; attempt++ {
		a, err := u.repo.GetByID(ctx, assessmentID)
		if err != nil {
			return entities.Assessment{}, err
		}
		if a.ID == "" {
			return entities.Assessment{}, ErrAssessmentNotFound
		}
		if a.Stage.IsTerminal() {
			return entities.Assessment{}, ErrInvalidTransition
		}

		updated, err := u.repo.UpdateStage(ctx, a.ID, entities.StageCancelled, reason, a.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return entities.Assessment{}, err
		}

		if err := u.afterStageWrite(ctx, a, updated, reason); err != nil {
			return entities.Assessment{}, err
		}
		return updated, nil
	}
	return entities.Assessment{}, ErrConcurrencyConflict
}

// validateTransition enforces the pipeline order and prerequisite-data
// invariants. Violations surface verbatim; nothing is silently corrected.
func (u *StageUseCase) validateTransition(ctx context.Context, a entities.Assessment, target entities.AssessmentStage) error {
	if a.Stage.IsTerminal() {
		return ErrInvalidTransition
	}
	if target != a.Stage.Next() {
		return ErrInvalidTransition
	}
	if target.RequiresScheduling() && !a.HasScheduling() {
		return ErrMissingPrerequisite
	}

	// Leaving reconciliation for the archive requires every actionable FRC
	// line to be decided; the snapshot is locked as part of completing the
	// stage.
	if a.Stage == entities.StageReconciliation && target == entities.StageArchived {
		snap, err := u.snapshots.Get(ctx, a.ID)
		if err != nil {
			return err
		}
		if snap.AssessmentID == "" {
			return ErrMissingPrerequisite
		}
		if !FRCComplete(snap) {
			return ErrMissingPrerequisite
		}
		if !snap.Locked {
			snap.Locked = true
			if _, err := u.snapshots.Write(ctx, snap, snap.Version); err != nil {
				if errors.Is(err, interfaces.ErrVersionConflict) {
					return ErrConcurrencyConflict
				}
				return err
			}
		}
	}
	return nil
}

func (u *StageUseCase) afterStageWrite(ctx context.Context, old, updated entities.Assessment, reason string) error {
	var meta map[string]string
	if reason != "" {
		meta = map[string]string{"reason": reason}
	}
	if err := appendAudit(ctx, u.audit, entities.AuditEntry{
		EntityType: "assessment",
		EntityID:   updated.ID,
		Action:     "stage_transition",
		OldValue:   string(old.Stage),
		NewValue:   string(updated.Stage),
		Metadata:   meta,
	}); err != nil {
		return err
	}
	if u.notifier != nil {
		u.notifier.StageChanged(updated.ID, old.Stage, updated.Stage)
	}
	log.Printf("[stage][usecase] transition assessment_id=%s %s -> %s", updated.ID, old.Stage, updated.Stage)
	return nil
}
