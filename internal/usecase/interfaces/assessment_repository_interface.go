package interfaces

import (
	"context"
	"vistoria_xpto/internal/domain/entities"
)

// IAssessmentRepository abstracts DynamoDB persistence for Assessment.
//
// The service must be able to:
//   - create an assessment when an intake event arrives (one per intake)
//   - advance/cancel the stage under optimistic concurrency
//   - link a scheduling record (separate operation from stage transitions)
//   - serve stage-population lists and counts off the same predicate

type IAssessmentRepository interface {
	Create(ctx context.Context, a entities.Assessment) (entities.Assessment, error)
	// ClaimIntake reserves the intake event for the given assessment.
	// Returns ErrIntakeAlreadyClaimed when another assessment holds it.
	ClaimIntake(ctx context.Context, intakeID, assessmentID string) error
	// ReleaseIntake removes the reservation, but only while the given
	// assessment still holds it. Releasing an intake claimed by a different
	// assessment, or one never claimed, is a no-op.
	ReleaseIntake(ctx context.Context, intakeID, assessmentID string) error
	GetByID(ctx context.Context, id string) (entities.Assessment, error)
	// UpdateStage writes the new stage conditionally on expectedVersion and
	// bumps the version. Returns ErrVersionConflict on a lost race.
	UpdateStage(ctx context.Context, id string, stage entities.AssessmentStage, reason string, expectedVersion int64) (entities.Assessment, error)
	// LinkScheduling attaches a scheduling record under the same version
	// discipline as UpdateStage.
	LinkScheduling(ctx context.Context, id, schedulingID string, expectedVersion int64) (entities.Assessment, error)
	ListByStage(ctx context.Context, stage entities.AssessmentStage, onlyScheduled bool) ([]entities.Assessment, error)
	CountByStage(ctx context.Context, stage entities.AssessmentStage, onlyScheduled bool) (int, error)
	CountByStages(ctx context.Context, stages []entities.AssessmentStage, onlyScheduled bool) (int, error)
}
