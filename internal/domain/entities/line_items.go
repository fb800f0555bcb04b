package entities

import "time"

// MoneyBreakdown is the quoted monetary breakdown of a line, split by cost
// type, each carried nett and marked-up. Removal additionals store the same
// breakdown negated so that original + removal nets to zero.
type MoneyBreakdown struct {
	PartsNett      float64 `json:"parts_nett"`
	PartsMarkedUp  float64 `json:"parts_marked_up"`
	LabourNett     float64 `json:"labour_nett"`
	LabourMarkedUp float64 `json:"labour_marked_up"`
	PaintNett      float64 `json:"paint_nett"`
	PaintMarkedUp  float64 `json:"paint_marked_up"`
}

// Total is the client-facing (marked-up) total of the line.
func (m MoneyBreakdown) Total() float64 {
	return m.PartsMarkedUp + m.LabourMarkedUp + m.PaintMarkedUp
}

// Negate returns the breakdown with every amount sign-flipped.
func (m MoneyBreakdown) Negate() MoneyBreakdown {
	return MoneyBreakdown{
		PartsNett:      -m.PartsNett,
		PartsMarkedUp:  -m.PartsMarkedUp,
		LabourNett:     -m.LabourNett,
		LabourMarkedUp: -m.LabourMarkedUp,
		PaintNett:      -m.PaintNett,
		PaintMarkedUp:  -m.PaintMarkedUp,
	}
}

// EstimateLine is an original quoted cost item on an assessment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (assessment_id-index): assessment_id
//
// Lifecycle: created while the assessment is being worked; read-only once
// the estimate has been sent to the client. Removal afterwards only happens
// through an approved removal additional, never by mutating this record.
type EstimateLine struct {
	ID           string         `json:"id"`
	AssessmentID string         `json:"assessment_id"`
	LineNumber   int            `json:"line_number"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	PartType     string         `json:"part_type"`
	Amounts      MoneyBreakdown `json:"amounts"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// AdditionalAction describes what a client-requested change does to the
// estimate.
type AdditionalAction string

const (
	AdditionalActionAdd    AdditionalAction = "add"
	AdditionalActionRemove AdditionalAction = "remove"
	AdditionalActionModify AdditionalAction = "modify"
)

func (a AdditionalAction) IsValid() bool {
	switch a {
	case AdditionalActionAdd, AdditionalActionRemove, AdditionalActionModify:
		return true
	}
	return false
}

// AdditionalStatus is the approval state of an additional. It transitions
// exactly once out of pending; a decided additional is never re-decided.
type AdditionalStatus string

const (
	AdditionalStatusPending  AdditionalStatus = "pending"
	AdditionalStatusApproved AdditionalStatus = "approved"
	AdditionalStatusDeclined AdditionalStatus = "declined"
)

func (s AdditionalStatus) IsDecided() bool {
	return s == AdditionalStatusApproved || s == AdditionalStatusDeclined
}

// AdditionalLine is a proposed change to the estimate, subject to client or
// admin approval.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (assessment_id-index): assessment_id
//
// When Action is "remove", RemovesLineID references the estimate line being
// negated and Amounts carries the negated breakdown of that line, so that
// the pair sums to zero in every aggregate.
type AdditionalLine struct {
	ID            string           `json:"id"`
	AssessmentID  string           `json:"assessment_id"`
	Action        AdditionalAction `json:"action"`
	Status        AdditionalStatus `json:"status"`
	RemovesLineID string           `json:"removes_line_id,omitempty"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	PartType      string           `json:"part_type"`
	Amounts       MoneyBreakdown   `json:"amounts"`
	CreatedAt     time.Time        `json:"created_at"`
	DecidedAt     time.Time        `json:"decided_at,omitempty"`
}
