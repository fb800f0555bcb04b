package response

import (
	"time"

	"vistoria_xpto/internal/domain/entities"
)

type ExcessPaymentResponse struct {
	ID              string                 `json:"id"`
	AssessmentID    string                 `json:"assessment_id"`
	Amount          float64                `json:"amount"`
	Date            time.Time              `json:"date"`
	Status          string                 `json:"status"`
	ProviderPayload map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromExcessPayment(p entities.ExcessPayment) ExcessPaymentResponse {
	return ExcessPaymentResponse{
		ID:              p.ID,
		AssessmentID:    p.AssessmentID,
		Amount:          p.Amount,
		Date:            p.Date,
		Status:          string(p.Status),
		ProviderPayload: p.ProviderPayload,
	}
}

func FromExcessPayments(items []entities.ExcessPayment) []ExcessPaymentResponse {
	out := make([]ExcessPaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromExcessPayment(p))
	}
	return out
}
