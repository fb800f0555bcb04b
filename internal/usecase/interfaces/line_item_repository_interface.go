package interfaces

import (
	"context"
	"vistoria_xpto/internal/domain/entities"
)

// ILineItemRepository abstracts DynamoDB persistence for estimate lines and
// additionals. Line reads are always assessment-scoped; the merge consumes
// the full sets.

type ILineItemRepository interface {
	CreateEstimateLine(ctx context.Context, l entities.EstimateLine) (entities.EstimateLine, error)
	GetEstimateLineByID(ctx context.Context, id string) (entities.EstimateLine, error)
	ListEstimateLines(ctx context.Context, assessmentID string) ([]entities.EstimateLine, error)

	CreateAdditionalLine(ctx context.Context, a entities.AdditionalLine) (entities.AdditionalLine, error)
	GetAdditionalLineByID(ctx context.Context, id string) (entities.AdditionalLine, error)
	ListAdditionalLines(ctx context.Context, assessmentID string) ([]entities.AdditionalLine, error)
	// UpdateAdditionalStatus transitions an additional out of pending. The
	// write is conditional on the stored status still being pending, so an
	// additional is decided exactly once; a lost race returns the zero value.
	UpdateAdditionalStatus(ctx context.Context, id string, status entities.AdditionalStatus) (entities.AdditionalLine, error)
}
