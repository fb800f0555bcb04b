package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidIntakeID      = errors.New("invalid intake id")
	ErrIntakeAlreadyClaimed = errors.New("assessment already exists for this intake")
	ErrInvalidSchedulingID  = errors.New("invalid scheduling id")
	ErrInvalidStage         = errors.New("unrecognized stage value")
)

const defaultCaseNumberCategory = "REQ"

// IAssessmentUseCase exposes assessment lifecycle operations other than
// stage transitions (those live on IStageUseCase).

type IAssessmentUseCase interface {
	OpenAssessment(ctx context.Context, intakeID string) (entities.Assessment, error)
	GetByID(ctx context.Context, id string) (entities.Assessment, error)
	LinkScheduling(ctx context.Context, id, schedulingID string) (entities.Assessment, error)
	ListByStage(ctx context.Context, stage entities.AssessmentStage, onlyScheduled bool) ([]entities.Assessment, error)
}

type AssessmentUseCase struct {
	repo  interfaces.IAssessmentRepository
	seq   ISequenceUseCase
	audit interfaces.IAuditSink
}

var _ IAssessmentUseCase = (*AssessmentUseCase)(nil)

func NewAssessmentUseCase(repo interfaces.IAssessmentRepository, seq ISequenceUseCase, audit interfaces.IAuditSink) *AssessmentUseCase {
	return &AssessmentUseCase{repo: repo, seq: seq, audit: audit}
}

// OpenAssessment creates the single assessment for an intake event.
//
// Ordering matters: the intake claim and the case number are both durably
// committed before the assessment record is written, so a failure midway
// never leaves an assessment pointing at an unclaimed number. If a later
// step fails the claim is released again so a retry can open the intake;
// a rolled-back open may leave a gap in the number sequence.
func (u *AssessmentUseCase) OpenAssessment(ctx context.Context, intakeID string) (entities.Assessment, error) {
	intakeID = strings.TrimSpace(intakeID)
	if intakeID == "" {
		return entities.Assessment{}, ErrInvalidIntakeID
	}

	id := uuid.NewString()
	if err := u.repo.ClaimIntake(ctx, intakeID, id); err != nil {
		if errors.Is(err, interfaces.ErrIntakeAlreadyClaimed) {
			return entities.Assessment{}, ErrIntakeAlreadyClaimed
		}
		return entities.Assessment{}, err
	}

	now := time.Now().UTC()
	caseNumber, err := u.seq.Next(ctx, caseNumberCategory(), now.Year())
	if err != nil {
		u.releaseIntake(ctx, intakeID, id)
		return entities.Assessment{}, err
	}

	a := entities.Assessment{
		ID:         id,
		CaseNumber: caseNumber,
		IntakeID:   intakeID,
		Stage:      entities.StageIntakeSubmitted,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		u.releaseIntake(ctx, intakeID, id)
		return entities.Assessment{}, err
	}
	log.Printf("[assessment][usecase] opened assessment id=%s case_number=%s intake_id=%s", created.ID, created.CaseNumber, intakeID)

	if err := appendAudit(ctx, u.audit, entities.AuditEntry{
		EntityType: "assessment",
		EntityID:   created.ID,
		Action:     "opened",
		NewValue:   string(created.Stage),
		Metadata:   map[string]string{"intake_id": intakeID, "case_number": caseNumber},
	}); err != nil {
		return entities.Assessment{}, err
	}
	return created, nil
}

// releaseIntake rolls back the intake claim after a failed open. Best
// effort: a release failure only leaves the claim for manual cleanup, so it
// is logged and the original open error is what the caller sees.
func (u *AssessmentUseCase) releaseIntake(ctx context.Context, intakeID, assessmentID string) {
	if err := u.repo.ReleaseIntake(ctx, intakeID, assessmentID); err != nil {
		log.Printf("[assessment][usecase] failed to release intake claim intake_id=%s assessment_id=%s error=%v", intakeID, assessmentID, err)
	}
}

func (u *AssessmentUseCase) GetByID(ctx context.Context, id string) (entities.Assessment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Assessment{}, ErrInvalidAssessmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Assessment{}, err
	}
	if a.ID == "" {
		return entities.Assessment{}, ErrAssessmentNotFound
	}
	return a, nil
}

// LinkScheduling attaches a scheduling record to the assessment. This is a
// separate operation from advancing the stage; transitions re-validate the
// link at call time regardless of caller ordering.
func (u *AssessmentUseCase) LinkScheduling(ctx context.Context, id, schedulingID string) (entities.Assessment, error) {
	schedulingID = strings.TrimSpace(schedulingID)
	if schedulingID == "" {
		return entities.Assessment{}, ErrInvalidSchedulingID
	}

	for attempt := 0; attempt < 2; attempt++ {
		a, err := u.GetByID(ctx, id)
		if err != nil {
			return entities.Assessment{}, err
		}

		updated, err := u.repo.LinkScheduling(ctx, a.ID, schedulingID, a.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return entities.Assessment{}, err
		}

		if err := appendAudit(ctx, u.audit, entities.AuditEntry{
			EntityType: "assessment",
			EntityID:   a.ID,
			Action:     "scheduling_linked",
			OldValue:   a.SchedulingID,
			NewValue:   schedulingID,
		}); err != nil {
			return entities.Assessment{}, err
		}
		return updated, nil
	}
	return entities.Assessment{}, ErrConcurrencyConflict
}

func (u *AssessmentUseCase) ListByStage(ctx context.Context, stage entities.AssessmentStage, onlyScheduled bool) ([]entities.Assessment, error) {
	if !stage.IsValid() {
		return nil, ErrInvalidStage
	}
	return u.repo.ListByStage(ctx, stage, onlyScheduled)
}

func caseNumberCategory() string {
	if v := strings.TrimSpace(strings.ToUpper(os.Getenv("CASE_NUMBER_CATEGORY"))); v != "" {
		return v
	}
	return defaultCaseNumberCategory
}
