package request

// OpenAssessmentRequest is the payload for opening an assessment from an
// approved intake.
type OpenAssessmentRequest struct {
	IntakeID string `json:"intake_id" binding:"required"`
}

// LinkSchedulingRequest attaches a scheduling record to an assessment.
type LinkSchedulingRequest struct {
	SchedulingID string `json:"scheduling_id" binding:"required"`
}

// StageTransitionRequest moves an assessment to the next pipeline stage.
type StageTransitionRequest struct {
	Target string `json:"target" binding:"required"`
}

// CancelRequest cancels an assessment. Reason is optional but kept in the
// audit trail when present.
type CancelRequest struct {
	Reason string `json:"reason"`
}
