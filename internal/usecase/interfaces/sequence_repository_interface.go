package interfaces

import "context"

// ISequenceRepository abstracts DynamoDB persistence for issued case
// numbers. Count-then-claim is not atomic; Claim detects the collision and
// the generator retries from a fresh count.

type ISequenceRepository interface {
	// CountIssued returns how many numbers exist for (category, year).
	CountIssued(ctx context.Context, category string, year int) (int, error)
	// Claim durably reserves the number. Returns ErrNumberTaken when a
	// concurrent writer claimed it first.
	Claim(ctx context.Context, category string, year, number int, formatted string) error
}
