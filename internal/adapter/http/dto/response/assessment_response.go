package response

import (
	"time"

	"vistoria_xpto/internal/domain/entities"
)

type AssessmentResponse struct {
	ID           string    `json:"id"`
	CaseNumber   string    `json:"case_number"`
	IntakeID     string    `json:"intake_id"`
	SchedulingID string    `json:"scheduling_id,omitempty"`
	Stage        string    `json:"stage"`
	Version      int64     `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromAssessment(a entities.Assessment) AssessmentResponse {
	return AssessmentResponse{
		ID:           a.ID,
		CaseNumber:   a.CaseNumber,
		IntakeID:     a.IntakeID,
		SchedulingID: a.SchedulingID,
		Stage:        string(a.Stage),
		Version:      a.Version,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func FromAssessments(items []entities.Assessment) []AssessmentResponse {
	out := make([]AssessmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromAssessment(a))
	}
	return out
}

// CountResponse is the dashboard badge payload. It is produced by the same
// query predicate as the matching list endpoint, so the badge number always
// matches what the list shows.
type CountResponse struct {
	Count int `json:"count"`
}
