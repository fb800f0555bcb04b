package interfaces

import (
	"context"
	"vistoria_xpto/internal/domain/entities"
)

// IExcessPaymentRepository abstracts DynamoDB persistence for ExcessPayment.

type IExcessPaymentRepository interface {
	Create(ctx context.Context, p entities.ExcessPayment) (entities.ExcessPayment, error)
	GetByID(ctx context.Context, id string) (entities.ExcessPayment, error)
	ListByAssessmentID(ctx context.Context, assessmentID string) ([]entities.ExcessPayment, error)
}
