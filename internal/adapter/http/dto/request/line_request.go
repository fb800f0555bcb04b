package request

import "vistoria_xpto/internal/domain/entities"

// MoneyBreakdownRequest carries the per-bucket amounts of a line item. Nett
// values are what the workshop pays; marked-up values are what the client is
// quoted.
type MoneyBreakdownRequest struct {
	PartsNett      float64 `json:"parts_nett"`
	PartsMarkedUp  float64 `json:"parts_marked_up"`
	LabourNett     float64 `json:"labour_nett"`
	LabourMarkedUp float64 `json:"labour_marked_up"`
	PaintNett      float64 `json:"paint_nett"`
	PaintMarkedUp  float64 `json:"paint_marked_up"`
}

func (m MoneyBreakdownRequest) ToEntity() entities.MoneyBreakdown {
	return entities.MoneyBreakdown{
		PartsNett:      m.PartsNett,
		PartsMarkedUp:  m.PartsMarkedUp,
		LabourNett:     m.LabourNett,
		LabourMarkedUp: m.LabourMarkedUp,
		PaintNett:      m.PaintNett,
		PaintMarkedUp:  m.PaintMarkedUp,
	}
}

// EstimateLineRequest adds a line to the working estimate.
type EstimateLineRequest struct {
	Description string                `json:"description" binding:"required"`
	Category    string                `json:"category" binding:"required"`
	PartType    string                `json:"part_type"`
	Amounts     MoneyBreakdownRequest `json:"amounts"`
}

// AdditionalLineRequest records a client-requested change after the estimate
// was sent. Removals reference the estimate line they cancel and need no
// amounts of their own.
type AdditionalLineRequest struct {
	Action        string                `json:"action" binding:"required"`
	RemovesLineID string                `json:"removes_line_id"`
	Description   string                `json:"description"`
	Category      string                `json:"category"`
	PartType      string                `json:"part_type"`
	Amounts       MoneyBreakdownRequest `json:"amounts"`
}
