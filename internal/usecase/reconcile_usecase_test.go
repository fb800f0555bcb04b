package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase/interfaces"
	mock_interfaces "vistoria_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func estimateFixture(id string, n int, desc string, total float64) entities.EstimateLine {
	return entities.EstimateLine{
		ID:           id,
		AssessmentID: "a-1",
		LineNumber:   n,
		Description:  desc,
		Category:     "panel",
		PartType:     "OEM",
		Amounts:      entities.MoneyBreakdown{PartsMarkedUp: total},
	}
}

func TestBuildSnapshot(t *testing.T) {
	t.Run("estimates become pending lines in order", func(t *testing.T) {
		estimates := []entities.EstimateLine{
			estimateFixture("e-2", 2, "Rear bumper", 80),
			estimateFixture("e-1", 1, "Front bumper", 100),
		}

		snap, err := buildSnapshot("a-1", estimates, nil, entities.FRCSnapshot{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(snap.Lines))
		}
		if snap.Lines[0].Description != "Front bumper" || snap.Lines[1].Description != "Rear bumper" {
			t.Fatalf("lines must follow the estimate line numbers: %+v", snap.Lines)
		}
		for _, l := range snap.Lines {
			if l.Decision != entities.FRCDecisionPending {
				t.Fatalf("fresh lines must be pending, got %s", l.Decision)
			}
			if l.Source != entities.FRCSourceEstimate {
				t.Fatalf("expected estimate source, got %s", l.Source)
			}
		}
		if snap.Lines[0].QuotedTotal != 100 {
			t.Fatalf("quoted total must come from the marked-up amounts, got %v", snap.Lines[0].QuotedTotal)
		}
	})

	t.Run("re-merge with unchanged inputs reproduces the line set", func(t *testing.T) {
		estimates := []entities.EstimateLine{estimateFixture("e-1", 1, "Front bumper", 100)}

		first, err := buildSnapshot("a-1", estimates, nil, entities.FRCSnapshot{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := buildSnapshot("a-1", estimates, nil, first)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(second.Lines) != len(first.Lines) || second.Lines[0].Fingerprint != first.Lines[0].Fingerprint {
			t.Fatalf("merge must be idempotent on unchanged inputs")
		}
	})

	t.Run("preserves engineer decisions on unchanged fingerprints", func(t *testing.T) {
		estimates := []entities.EstimateLine{estimateFixture("e-1", 1, "Front bumper", 100)}
		fp := entities.FingerprintEstimateLine(estimates[0])
		prev := entities.FRCSnapshot{AssessmentID: "a-1", Version: 2, Lines: []entities.FRCLine{
			{Fingerprint: fp, Decision: entities.FRCDecisionAdjust, ActualTotal: 90, AdjustReason: "negotiated"},
		}}

		snap, err := buildSnapshot("a-1", estimates, nil, prev)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		l := snap.Lines[0]
		if l.Decision != entities.FRCDecisionAdjust || l.ActualTotal != 90 || l.AdjustReason != "negotiated" {
			t.Fatalf("prior decision must survive the merge: %+v", l)
		}
	})

	t.Run("changed estimate gets a new fingerprint and returns to pending", func(t *testing.T) {
		before := estimateFixture("e-1", 1, "Front bumper", 100)
		prev, err := buildSnapshot("a-1", []entities.EstimateLine{before}, nil, entities.FRCSnapshot{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		prev.Lines[0].Decision = entities.FRCDecisionAgree
		prev.Lines[0].ActualTotal = 100

		after := before
		after.Description = "Front bumper respray"
		snap, err := buildSnapshot("a-1", []entities.EstimateLine{after}, nil, prev)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		l := snap.Lines[0]
		if l.Fingerprint == prev.Lines[0].Fingerprint {
			t.Fatalf("a changed description must change the fingerprint")
		}
		if l.Decision != entities.FRCDecisionPending || l.ActualTotal != 0 {
			t.Fatalf("stale decisions must not carry over to a changed line: %+v", l)
		}
	})

	t.Run("undecided additionals are excluded", func(t *testing.T) {
		additionals := []entities.AdditionalLine{{
			ID: "add-1", AssessmentID: "a-1",
			Action: entities.AdditionalActionAdd, Status: entities.AdditionalStatusPending,
			Description: "Fog light", Category: "electrical",
			Amounts: entities.MoneyBreakdown{PartsMarkedUp: 40},
		}}

		snap, err := buildSnapshot("a-1", nil, additionals, entities.FRCSnapshot{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap.Lines) != 0 {
			t.Fatalf("pending additionals must not appear, got %d lines", len(snap.Lines))
		}
	})

	t.Run("declined additional appears as declined", func(t *testing.T) {
		additionals := []entities.AdditionalLine{{
			ID: "add-1", AssessmentID: "a-1",
			Action: entities.AdditionalActionAdd, Status: entities.AdditionalStatusDeclined,
			Description: "Fog light", Category: "electrical",
			Amounts: entities.MoneyBreakdown{PartsMarkedUp: 40},
		}}

		snap, err := buildSnapshot("a-1", nil, additionals, entities.FRCSnapshot{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap.Lines) != 1 || snap.Lines[0].Decision != entities.FRCDecisionDeclined {
			t.Fatalf("declined additional must merge as declined: %+v", snap.Lines)
		}
		if snap.GrandTotal != 0 {
			t.Fatalf("declined lines must not contribute to the total, got %v", snap.GrandTotal)
		}
	})

	t.Run("approved removal nets the pair to zero", func(t *testing.T) {
		est := estimateFixture("e-1", 1, "Front bumper", 100)
		removal := entities.AdditionalLine{
			ID: "add-1", AssessmentID: "a-1",
			Action: entities.AdditionalActionRemove, Status: entities.AdditionalStatusApproved,
			RemovesLineID: "e-1",
			Description:   est.Description, Category: est.Category, PartType: est.PartType,
			Amounts: est.Amounts.Negate(),
		}

		snap, err := buildSnapshot("a-1", []entities.EstimateLine{est}, []entities.AdditionalLine{removal}, entities.FRCSnapshot{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap.Lines) != 2 {
			t.Fatalf("expected the original plus its negation, got %d lines", len(snap.Lines))
		}
		orig, neg := snap.Lines[0], snap.Lines[1]
		if orig.Decision != entities.FRCDecisionRemoved || !orig.RemovedViaAdditionals {
			t.Fatalf("negated original must be removed: %+v", orig)
		}
		if neg.Decision != entities.FRCDecisionRemoved || neg.ActualTotal != -100 {
			t.Fatalf("removal line must be pre-agreed at its negative total: %+v", neg)
		}
		if snap.GrandTotal != 0 {
			t.Fatalf("removed pair must net to zero, got %v", snap.GrandTotal)
		}
		if !FRCComplete(snap) {
			t.Fatalf("a fully removed snapshot has nothing pending")
		}
	})

	t.Run("retracted removal returns the target to pending", func(t *testing.T) {
		est := estimateFixture("e-1", 1, "Front bumper", 100)
		removal := entities.AdditionalLine{
			ID: "add-1", AssessmentID: "a-1",
			Action: entities.AdditionalActionRemove, Status: entities.AdditionalStatusApproved,
			RemovesLineID: "e-1", Description: est.Description, Category: est.Category,
			Amounts: est.Amounts.Negate(),
		}
		withRemoval, err := buildSnapshot("a-1", []entities.EstimateLine{est}, []entities.AdditionalLine{removal}, entities.FRCSnapshot{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// The removal additional is gone from the input; the merge-assigned
		// removed decision must not stick to the original line.
		snap, err := buildSnapshot("a-1", []entities.EstimateLine{est}, nil, withRemoval)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap.Lines) != 1 || snap.Lines[0].Decision != entities.FRCDecisionPending {
			t.Fatalf("target must return to pending after the removal is retracted: %+v", snap.Lines)
		}
	})

	t.Run("removal of a missing estimate line is an integrity violation", func(t *testing.T) {
		removal := entities.AdditionalLine{
			ID: "add-1", AssessmentID: "a-1",
			Action: entities.AdditionalActionRemove, Status: entities.AdditionalStatusApproved,
			RemovesLineID: "ghost",
		}

		_, err := buildSnapshot("a-1", nil, []entities.AdditionalLine{removal}, entities.FRCSnapshot{})
		if !errors.Is(err, ErrIntegrityViolation) {
			t.Fatalf("expected ErrIntegrityViolation, got %v", err)
		}
	})

	t.Run("double removal of the same target is an integrity violation", func(t *testing.T) {
		est := estimateFixture("e-1", 1, "Front bumper", 100)
		mk := func(id string, at time.Time) entities.AdditionalLine {
			return entities.AdditionalLine{
				ID: id, AssessmentID: "a-1",
				Action: entities.AdditionalActionRemove, Status: entities.AdditionalStatusApproved,
				RemovesLineID: "e-1", Description: est.Description, Category: est.Category,
				Amounts: est.Amounts.Negate(), CreatedAt: at,
			}
		}
		now := time.Now()

		_, err := buildSnapshot("a-1", []entities.EstimateLine{est},
			[]entities.AdditionalLine{mk("add-1", now), mk("add-2", now.Add(time.Minute))}, entities.FRCSnapshot{})
		if !errors.Is(err, ErrIntegrityViolation) {
			t.Fatalf("expected ErrIntegrityViolation, got %v", err)
		}
	})

	t.Run("additional line numbers continue after the estimates", func(t *testing.T) {
		estimates := []entities.EstimateLine{
			estimateFixture("e-1", 1, "Front bumper", 100),
			estimateFixture("e-2", 2, "Rear bumper", 80),
		}
		additionals := []entities.AdditionalLine{{
			ID: "add-1", AssessmentID: "a-1",
			Action: entities.AdditionalActionAdd, Status: entities.AdditionalStatusApproved,
			Description: "Fog light", Category: "electrical",
			Amounts: entities.MoneyBreakdown{PartsMarkedUp: 40},
		}}

		snap, err := buildSnapshot("a-1", estimates, additionals, entities.FRCSnapshot{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := snap.Lines[2].LineNumber; got != 3 {
			t.Fatalf("expected additional at line 3, got %d", got)
		}
		if snap.Lines[2].Source != entities.FRCSourceAdditional {
			t.Fatalf("expected additional source, got %s", snap.Lines[2].Source)
		}
	})
}

func TestReconcileUseCase_Merge(t *testing.T) {
	reconciling := entities.Assessment{ID: "a-1", Stage: entities.StageReconciliation, Version: 5}

	t.Run("invalid assessment id", func(t *testing.T) {
		uc := NewReconcileUseCase(nil, nil, nil, nil)
		_, err := uc.Merge(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidAssessmentID) {
			t.Fatalf("expected ErrInvalidAssessmentID, got %v", err)
		}
	})

	t.Run("before finalization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessments := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewReconcileUseCase(assessments, nil, nil, nil)

		a := entities.Assessment{ID: "a-1", Stage: entities.StageWorkInProgress}
		assessments.EXPECT().GetByID(gomock.Any(), "a-1").Return(a, nil)

		_, err := uc.Merge(context.Background(), "a-1")
		if !errors.Is(err, ErrReconciliationNotReached) {
			t.Fatalf("expected ErrReconciliationNotReached, got %v", err)
		}
	})

	t.Run("cancelled assessment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessments := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewReconcileUseCase(assessments, nil, nil, nil)

		a := entities.Assessment{ID: "a-1", Stage: entities.StageCancelled}
		assessments.EXPECT().GetByID(gomock.Any(), "a-1").Return(a, nil)

		_, err := uc.Merge(context.Background(), "a-1")
		if !errors.Is(err, ErrReconciliationNotReached) {
			t.Fatalf("expected ErrReconciliationNotReached, got %v", err)
		}
	})

	t.Run("locked snapshot rejects the merge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessments := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		snapshots := mock_interfaces.NewMockIFRCRepository(ctrl)
		uc := NewReconcileUseCase(assessments, nil, snapshots, nil)

		assessments.EXPECT().GetByID(gomock.Any(), "a-1").Return(reconciling, nil)
		snapshots.EXPECT().Get(gomock.Any(), "a-1").Return(entities.FRCSnapshot{AssessmentID: "a-1", Locked: true, Version: 3}, nil)

		_, err := uc.Merge(context.Background(), "a-1")
		if !errors.Is(err, ErrSnapshotLocked) {
			t.Fatalf("expected ErrSnapshotLocked, got %v", err)
		}
	})

	t.Run("writes against the previous version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessments := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		lines := mock_interfaces.NewMockILineItemRepository(ctrl)
		snapshots := mock_interfaces.NewMockIFRCRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditSink(ctrl)
		uc := NewReconcileUseCase(assessments, lines, snapshots, audit)

		prev := entities.FRCSnapshot{AssessmentID: "a-1", Version: 3}
		assessments.EXPECT().GetByID(gomock.Any(), "a-1").Return(reconciling, nil)
		snapshots.EXPECT().Get(gomock.Any(), "a-1").Return(prev, nil)
		lines.EXPECT().ListEstimateLines(gomock.Any(), "a-1").Return([]entities.EstimateLine{estimateFixture("e-1", 1, "Front bumper", 100)}, nil)
		lines.EXPECT().ListAdditionalLines(gomock.Any(), "a-1").Return(nil, nil)
		snapshots.EXPECT().Write(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, s entities.FRCSnapshot, _ int64) (entities.FRCSnapshot, error) {
				s.Version = 4
				return s, nil
			})
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Merge(context.Background(), "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 4 || len(got.Lines) != 1 {
			t.Fatalf("unexpected snapshot: %+v", got)
		}
	})

	t.Run("lost race re-runs the merge against the fresh base", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessments := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		lines := mock_interfaces.NewMockILineItemRepository(ctrl)
		snapshots := mock_interfaces.NewMockIFRCRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditSink(ctrl)
		uc := NewReconcileUseCase(assessments, lines, snapshots, audit)

		assessments.EXPECT().GetByID(gomock.Any(), "a-1").Return(reconciling, nil)
		lines.EXPECT().ListEstimateLines(gomock.Any(), "a-1").Return(nil, nil).Times(2)
		lines.EXPECT().ListAdditionalLines(gomock.Any(), "a-1").Return(nil, nil).Times(2)
		gomock.InOrder(
			snapshots.EXPECT().Get(gomock.Any(), "a-1").Return(entities.FRCSnapshot{AssessmentID: "a-1", Version: 3}, nil),
			snapshots.EXPECT().Write(gomock.Any(), gomock.Any(), int64(3)).Return(entities.FRCSnapshot{}, interfaces.ErrVersionConflict),
			snapshots.EXPECT().Get(gomock.Any(), "a-1").Return(entities.FRCSnapshot{AssessmentID: "a-1", Version: 4}, nil),
			snapshots.EXPECT().Write(gomock.Any(), gomock.Any(), int64(4)).Return(entities.FRCSnapshot{AssessmentID: "a-1", Version: 5}, nil),
		)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Merge(context.Background(), "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 5 {
			t.Fatalf("expected version 5, got %d", got.Version)
		}
	})
}

func TestReconcileUseCase_Reopen(t *testing.T) {
	t.Run("snapshot not locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		snapshots := mock_interfaces.NewMockIFRCRepository(ctrl)
		uc := NewReconcileUseCase(nil, nil, snapshots, nil)

		snapshots.EXPECT().Get(gomock.Any(), "a-1").Return(entities.FRCSnapshot{AssessmentID: "a-1", Version: 3}, nil)

		_, err := uc.Reopen(context.Background(), "a-1")
		if !errors.Is(err, ErrSnapshotNotLocked) {
			t.Fatalf("expected ErrSnapshotNotLocked, got %v", err)
		}
	})

	t.Run("unlocks and bumps the version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		snapshots := mock_interfaces.NewMockIFRCRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditSink(ctrl)
		uc := NewReconcileUseCase(nil, nil, snapshots, audit)

		snapshots.EXPECT().Get(gomock.Any(), "a-1").Return(entities.FRCSnapshot{AssessmentID: "a-1", Locked: true, Version: 3}, nil)
		snapshots.EXPECT().Write(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, s entities.FRCSnapshot, _ int64) (entities.FRCSnapshot, error) {
				if s.Locked {
					t.Fatalf("reopen must clear the lock")
				}
				s.Version = 4
				return s, nil
			})
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Reopen(context.Background(), "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Locked || got.Version != 4 {
			t.Fatalf("unexpected snapshot: %+v", got)
		}
	})
}
