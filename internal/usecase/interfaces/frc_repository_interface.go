package interfaces

import (
	"context"
	"vistoria_xpto/internal/domain/entities"
)

// IFRCRepository abstracts DynamoDB persistence for FRC snapshots.
//
// The snapshot is stored whole (lines as one blob) and versioned by a single
// counter; every write is a compare-and-swap on that counter.

type IFRCRepository interface {
	// Get returns the current snapshot, or the zero value (empty
	// AssessmentID) when no merge has run yet.
	Get(ctx context.Context, assessmentID string) (entities.FRCSnapshot, error)
	// Write persists the snapshot conditionally on expectedVersion and bumps
	// the version by one. expectedVersion 0 creates the snapshot and fails if
	// one already exists. Returns ErrVersionConflict on a lost race.
	Write(ctx context.Context, snap entities.FRCSnapshot, expectedVersion int64) (entities.FRCSnapshot, error)
}
