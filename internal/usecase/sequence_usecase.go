package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vistoria_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidSequenceCategory = errors.New("invalid sequence category")
	ErrInvalidSequenceYear     = errors.New("invalid sequence year")
	ErrSequenceExhausted       = errors.New("sequence generation retries exhausted")
)

const (
	sequenceMaxAttempts = 3
	sequenceBackoffBase = 100 * time.Millisecond
)

// ISequenceUseCase generates unique, human-readable sequential case numbers
// (e.g. REQ-2025-014) under concurrent creation.

type ISequenceUseCase interface {
	Next(ctx context.Context, category string, year int) (string, error)
}

// SequenceUseCase derives a candidate from the current issued count and
// claims it with a conditional insert. Count-then-claim is not atomic, so a
// lost race re-derives a fresh candidate and retries with capped exponential
// backoff. Numbers may have gaps when a creation rolls back after claiming;
// that is an accepted trade-off of this scheme.
type SequenceUseCase struct {
	repo interfaces.ISequenceRepository

	// sleep is swappable in tests.
	sleep func(time.Duration)
}

var _ ISequenceUseCase = (*SequenceUseCase)(nil)

func NewSequenceUseCase(repo interfaces.ISequenceRepository) *SequenceUseCase {
	return &SequenceUseCase{repo: repo, sleep: time.Sleep}
}

func (u *SequenceUseCase) Next(ctx context.Context, category string, year int) (string, error) {
	category = strings.ToUpper(strings.TrimSpace(category))
	if category == "" {
		return "", ErrInvalidSequenceCategory
	}
	if year < 2000 || year > 9999 {
		return "", ErrInvalidSequenceYear
	}

	backoff := sequenceBackoffBase
	for attempt := 1; attempt <= sequenceMaxAttempts; attempt++ {
		// Every attempt re-counts; a stale candidate is never reused.
		count, err := u.repo.CountIssued(ctx, category, year)
		if err != nil {
			return "", err
		}
		number := count + 1
		formatted := FormatCaseNumber(category, year, number)

		err = u.repo.Claim(ctx, category, year, number, formatted)
		if err == nil {
			log.Printf("[sequence][usecase] claimed case number %s attempt=%d", formatted, attempt)
			return formatted, nil
		}
		if !errors.Is(err, interfaces.ErrNumberTaken) {
			return "", err
		}

		log.Printf("[sequence][usecase] case number %s taken, retrying attempt=%d", formatted, attempt)
		if attempt < sequenceMaxAttempts {
			u.sleep(backoff)
			backoff *= 2
		}
	}
	return "", ErrSequenceExhausted
}

// FormatCaseNumber renders the human-readable case number.
func FormatCaseNumber(category string, year, number int) string {
	return fmt.Sprintf("%s-%d-%03d", category, year, number)
}
