package entities

import "time"

// AssessmentStage represents the lifecycle stage of an assessment.
//
// Domain notes:
//   - The pipeline is strictly linear; stages are never skipped.
//   - "cancelled" is reachable from any non-terminal stage.
//   - "archived" and "cancelled" are terminal; records are never deleted.
//
//go:generate stringer -type=AssessmentStage

type AssessmentStage string

const (
	StageIntakeSubmitted      AssessmentStage = "intake_submitted"
	StageIntakeReviewed       AssessmentStage = "intake_reviewed"
	StageSchedulingRequested  AssessmentStage = "scheduling_requested"
	StageAppointmentScheduled AssessmentStage = "appointment_scheduled"
	StageWorkInProgress       AssessmentStage = "work_in_progress"
	StageReview               AssessmentStage = "review"
	StageSentToClient         AssessmentStage = "sent_to_client"
	StageFinalized            AssessmentStage = "finalized"
	StageReconciliation       AssessmentStage = "reconciliation_in_progress"
	StageArchived             AssessmentStage = "archived"
	StageCancelled            AssessmentStage = "cancelled"
)

// pipeline is the ordered non-terminal-to-terminal progression.
var pipeline = []AssessmentStage{
	StageIntakeSubmitted,
	StageIntakeReviewed,
	StageSchedulingRequested,
	StageAppointmentScheduled,
	StageWorkInProgress,
	StageReview,
	StageSentToClient,
	StageFinalized,
	StageReconciliation,
	StageArchived,
}

func (s AssessmentStage) IsValid() bool {
	if s == StageCancelled {
		return true
	}
	return s.order() >= 0
}

func (s AssessmentStage) order() int {
	for i, st := range pipeline {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the immediate successor stage, or "" when the stage is
// terminal or unknown.
func (s AssessmentStage) Next() AssessmentStage {
	i := s.order()
	if i < 0 || i == len(pipeline)-1 {
		return ""
	}
	return pipeline[i+1]
}

func (s AssessmentStage) IsTerminal() bool {
	return s == StageArchived || s == StageCancelled
}

// RequiresScheduling reports whether the stage requires a linked scheduling
// record. Everything from appointment_scheduled onward does, except the
// cancelled path which bypasses linked-record invariants.
func (s AssessmentStage) RequiresScheduling() bool {
	i := s.order()
	return i >= StageAppointmentScheduled.order() && s != StageCancelled
}

// AtOrAfter reports whether s is at stage other or later in the pipeline.
// Terminal cancelled never compares as "after" a pipeline stage.
func (s AssessmentStage) AtOrAfter(other AssessmentStage) bool {
	i, j := s.order(), other.order()
	return i >= 0 && j >= 0 && i >= j
}

// Assessment is the workflow record tracked through the stage pipeline.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (stage-index): stage
//
// Concurrency:
//   - Version is a monotonic counter; every write is conditional on the
//     version read by the caller (optimistic concurrency).
//
// Uniqueness:
//   - Exactly one assessment per intake event; enforced by a conditional
//     intake-claim write keyed by intake_id.
type Assessment struct {
	ID           string          `json:"id"`
	CaseNumber   string          `json:"case_number"`
	IntakeID     string          `json:"intake_id"`
	SchedulingID string          `json:"scheduling_id,omitempty"`
	Stage        AssessmentStage `json:"stage"`
	Version      int64           `json:"version"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// HasScheduling reports whether a scheduling record has been linked.
func (a Assessment) HasScheduling() bool {
	return a.SchedulingID != ""
}
