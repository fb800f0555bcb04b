package usecase

import "errors"

// Cross-cutting sentinels shared by several usecases. Operation-specific
// sentinels live next to the usecase that owns them.
var (
	ErrAssessmentNotFound  = errors.New("assessment not found")
	ErrInvalidAssessmentID = errors.New("invalid assessment id")
	ErrConcurrencyConflict = errors.New("concurrent write conflict")
	ErrSnapshotNotFound    = errors.New("frc snapshot not found")
	ErrSnapshotLocked      = errors.New("frc snapshot is finalized")
)
