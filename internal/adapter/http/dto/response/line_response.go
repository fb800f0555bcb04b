package response

import (
	"time"

	"vistoria_xpto/internal/domain/entities"
)

type MoneyBreakdownResponse struct {
	PartsNett      float64 `json:"parts_nett"`
	PartsMarkedUp  float64 `json:"parts_marked_up"`
	LabourNett     float64 `json:"labour_nett"`
	LabourMarkedUp float64 `json:"labour_marked_up"`
	PaintNett      float64 `json:"paint_nett"`
	PaintMarkedUp  float64 `json:"paint_marked_up"`
	Total          float64 `json:"total"`
}

func fromMoneyBreakdown(m entities.MoneyBreakdown) MoneyBreakdownResponse {
	return MoneyBreakdownResponse{
		PartsNett:      m.PartsNett,
		PartsMarkedUp:  m.PartsMarkedUp,
		LabourNett:     m.LabourNett,
		LabourMarkedUp: m.LabourMarkedUp,
		PaintNett:      m.PaintNett,
		PaintMarkedUp:  m.PaintMarkedUp,
		Total:          m.Total(),
	}
}

type EstimateLineResponse struct {
	ID           string                 `json:"id"`
	AssessmentID string                 `json:"assessment_id"`
	LineNumber   int                    `json:"line_number"`
	Description  string                 `json:"description"`
	Category     string                 `json:"category"`
	PartType     string                 `json:"part_type,omitempty"`
	Amounts      MoneyBreakdownResponse `json:"amounts"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func FromEstimateLine(l entities.EstimateLine) EstimateLineResponse {
	return EstimateLineResponse{
		ID:           l.ID,
		AssessmentID: l.AssessmentID,
		LineNumber:   l.LineNumber,
		Description:  l.Description,
		Category:     l.Category,
		PartType:     l.PartType,
		Amounts:      fromMoneyBreakdown(l.Amounts),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

type AdditionalLineResponse struct {
	ID            string                 `json:"id"`
	AssessmentID  string                 `json:"assessment_id"`
	Action        string                 `json:"action"`
	Status        string                 `json:"status"`
	RemovesLineID string                 `json:"removes_line_id,omitempty"`
	Description   string                 `json:"description"`
	Category      string                 `json:"category"`
	PartType      string                 `json:"part_type,omitempty"`
	Amounts       MoneyBreakdownResponse `json:"amounts"`
	CreatedAt     time.Time              `json:"created_at"`
	DecidedAt     *time.Time             `json:"decided_at,omitempty"`
}

func FromAdditionalLine(l entities.AdditionalLine) AdditionalLineResponse {
	out := AdditionalLineResponse{
		ID:            l.ID,
		AssessmentID:  l.AssessmentID,
		Action:        string(l.Action),
		Status:        string(l.Status),
		RemovesLineID: l.RemovesLineID,
		Description:   l.Description,
		Category:      l.Category,
		PartType:      l.PartType,
		Amounts:       fromMoneyBreakdown(l.Amounts),
		CreatedAt:     l.CreatedAt,
	}
	if !l.DecidedAt.IsZero() {
		decided := l.DecidedAt
		out.DecidedAt = &decided
	}
	return out
}

// LineItemsResponse lists the working estimate alongside the additionals
// requested against it.
type LineItemsResponse struct {
	Estimates   []EstimateLineResponse   `json:"estimates"`
	Additionals []AdditionalLineResponse `json:"additionals"`
}

func FromLineItems(estimates []entities.EstimateLine, additionals []entities.AdditionalLine) LineItemsResponse {
	out := LineItemsResponse{
		Estimates:   make([]EstimateLineResponse, 0, len(estimates)),
		Additionals: make([]AdditionalLineResponse, 0, len(additionals)),
	}
	for _, l := range estimates {
		out.Estimates = append(out.Estimates, FromEstimateLine(l))
	}
	for _, l := range additionals {
		out.Additionals = append(out.Additionals, FromAdditionalLine(l))
	}
	return out
}
