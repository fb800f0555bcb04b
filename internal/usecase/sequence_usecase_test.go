package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vistoria_xpto/internal/usecase/interfaces"
	mock_interfaces "vistoria_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestSequenceUseCase(repo interfaces.ISequenceRepository) (*SequenceUseCase, *[]time.Duration) {
	uc := NewSequenceUseCase(repo)
	slept := &[]time.Duration{}
	uc.sleep = func(d time.Duration) { *slept = append(*slept, d) }
	return uc, slept
}

func TestSequenceUseCase_Next(t *testing.T) {
	t.Run("invalid category", func(t *testing.T) {
		uc, _ := newTestSequenceUseCase(nil)
		_, err := uc.Next(context.Background(), "   ", 2025)
		if !errors.Is(err, ErrInvalidSequenceCategory) {
			t.Fatalf("expected ErrInvalidSequenceCategory, got %v", err)
		}
	})

	t.Run("invalid year", func(t *testing.T) {
		uc, _ := newTestSequenceUseCase(nil)
		_, err := uc.Next(context.Background(), "REQ", 1999)
		if !errors.Is(err, ErrInvalidSequenceYear) {
			t.Fatalf("expected ErrInvalidSequenceYear, got %v", err)
		}
	})

	t.Run("first attempt claims count+1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc, slept := newTestSequenceUseCase(repo)

		repo.EXPECT().CountIssued(gomock.Any(), "REQ", 2025).Return(13, nil)
		repo.EXPECT().Claim(gomock.Any(), "REQ", 2025, 14, "REQ-2025-014").Return(nil)

		got, err := uc.Next(context.Background(), "req", 2025)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "REQ-2025-014" {
			t.Fatalf("expected REQ-2025-014, got %s", got)
		}
		if len(*slept) != 0 {
			t.Fatalf("no backoff expected on first-attempt success")
		}
	})

	t.Run("lost race recounts and backs off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc, slept := newTestSequenceUseCase(repo)

		// Another writer claims 3 between our count and claim; the retry
		// counts again rather than bumping the stale candidate.
		gomock.InOrder(
			repo.EXPECT().CountIssued(gomock.Any(), "REQ", 2025).Return(2, nil),
			repo.EXPECT().Claim(gomock.Any(), "REQ", 2025, 3, "REQ-2025-003").Return(interfaces.ErrNumberTaken),
			repo.EXPECT().CountIssued(gomock.Any(), "REQ", 2025).Return(3, nil),
			repo.EXPECT().Claim(gomock.Any(), "REQ", 2025, 4, "REQ-2025-004").Return(nil),
		)

		got, err := uc.Next(context.Background(), "REQ", 2025)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "REQ-2025-004" {
			t.Fatalf("expected REQ-2025-004, got %s", got)
		}
		if len(*slept) != 1 || (*slept)[0] != 100*time.Millisecond {
			t.Fatalf("expected a single 100ms backoff, got %v", *slept)
		}
	})

	t.Run("exhausts after three lost races", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc, slept := newTestSequenceUseCase(repo)

		repo.EXPECT().CountIssued(gomock.Any(), "REQ", 2025).Return(0, nil).Times(3)
		repo.EXPECT().Claim(gomock.Any(), "REQ", 2025, 1, "REQ-2025-001").Return(interfaces.ErrNumberTaken).Times(3)

		_, err := uc.Next(context.Background(), "REQ", 2025)
		if !errors.Is(err, ErrSequenceExhausted) {
			t.Fatalf("expected ErrSequenceExhausted, got %v", err)
		}
		// Backoff doubles between attempts and is skipped after the last one.
		want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}
		if len(*slept) != len(want) || (*slept)[0] != want[0] || (*slept)[1] != want[1] {
			t.Fatalf("expected backoffs %v, got %v", want, *slept)
		}
	})

	t.Run("storage error propagates without retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc, _ := newTestSequenceUseCase(repo)

		repo.EXPECT().CountIssued(gomock.Any(), "REQ", 2025).Return(0, nil)
		repo.EXPECT().Claim(gomock.Any(), "REQ", 2025, 1, "REQ-2025-001").Return(errors.New("db down"))

		_, err := uc.Next(context.Background(), "REQ", 2025)
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db down, got %v", err)
		}
	})
}

func TestFormatCaseNumber(t *testing.T) {
	if got := FormatCaseNumber("REQ", 2025, 14); got != "REQ-2025-014" {
		t.Fatalf("expected REQ-2025-014, got %s", got)
	}
	if got := FormatCaseNumber("VIST", 2026, 1234); got != "VIST-2026-1234" {
		t.Fatalf("padding must not truncate, got %s", got)
	}
}
