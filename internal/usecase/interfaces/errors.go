package interfaces

import "errors"

// Sentinel errors shared between repository implementations and usecases.
// Repositories translate storage-specific failures (e.g. DynamoDB
// ConditionalCheckFailedException) into these before returning.
var (
	// ErrVersionConflict means a conditional write lost an optimistic
	// concurrency race: the stored version no longer matches the version the
	// caller read. The caller must reload and recompute, not just rewrite.
	ErrVersionConflict = errors.New("version conflict")

	// ErrIntakeAlreadyClaimed means another assessment already exists for the
	// intake event.
	ErrIntakeAlreadyClaimed = errors.New("intake already claimed")

	// ErrNumberTaken means the candidate case number was claimed by a
	// concurrent writer between count and insert.
	ErrNumberTaken = errors.New("case number already taken")
)
