package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"vistoria_xpto/internal/domain/entities"
	mock_interfaces "vistoria_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestExcessPaymentUseCase_ChargeExcess(t *testing.T) {
	finalized := entities.Assessment{ID: "a-1", CaseNumber: "REQ-2025-001", Stage: entities.StageReconciliation, Version: 7}
	completeSnap := entities.FRCSnapshot{
		AssessmentID: "a-1",
		Version:      4,
		GrandTotal:   250,
		Lines: []entities.FRCLine{
			{Fingerprint: "fp-1", Decision: entities.FRCDecisionAgree, ActualTotal: 250},
		},
	}

	t.Run("invalid assessment id", func(t *testing.T) {
		uc := NewExcessPaymentUseCase(nil, nil, nil, nil, nil)
		_, err := uc.ChargeExcess(context.Background(), " ", nil)
		if !errors.Is(err, ErrInvalidAssessmentID) {
			t.Fatalf("expected ErrInvalidAssessmentID, got %v", err)
		}
	})

	t.Run("malformed provider payload", func(t *testing.T) {
		uc := NewExcessPaymentUseCase(nil, nil, nil, nil, nil)
		_, err := uc.ChargeExcess(context.Background(), "a-1", json.RawMessage("{not json"))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewExcessPaymentUseCase(nil, nil, nil, nil, nil)
		_, err := uc.ChargeExcess(context.Background(), "a-1", nil)
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("assessment not finalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessments := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewExcessPaymentUseCase(nil, assessments, nil, gateway, nil)

		a := entities.Assessment{ID: "a-1", Stage: entities.StageSentToClient}
		assessments.EXPECT().GetByID(gomock.Any(), "a-1").Return(a, nil)

		_, err := uc.ChargeExcess(context.Background(), "a-1", nil)
		if !errors.Is(err, ErrAssessmentNotFinalized) {
			t.Fatalf("expected ErrAssessmentNotFinalized, got %v", err)
		}
	})

	t.Run("reconciliation incomplete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessments := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		snapshots := mock_interfaces.NewMockIFRCRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewExcessPaymentUseCase(nil, assessments, snapshots, gateway, nil)

		snap := completeSnap
		snap.Lines = []entities.FRCLine{{Fingerprint: "fp-1", Decision: entities.FRCDecisionPending}}
		assessments.EXPECT().GetByID(gomock.Any(), "a-1").Return(finalized, nil)
		snapshots.EXPECT().Get(gomock.Any(), "a-1").Return(snap, nil)

		_, err := uc.ChargeExcess(context.Background(), "a-1", nil)
		if !errors.Is(err, ErrReconciliationIncomplete) {
			t.Fatalf("expected ErrReconciliationIncomplete, got %v", err)
		}
	})

	t.Run("zero grand total has nothing to charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessments := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		snapshots := mock_interfaces.NewMockIFRCRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewExcessPaymentUseCase(nil, assessments, snapshots, gateway, nil)

		snap := completeSnap
		snap.GrandTotal = 0
		snap.Lines = []entities.FRCLine{{Fingerprint: "fp-1", Decision: entities.FRCDecisionRemoved}}
		assessments.EXPECT().GetByID(gomock.Any(), "a-1").Return(finalized, nil)
		snapshots.EXPECT().Get(gomock.Any(), "a-1").Return(snap, nil)

		_, err := uc.ChargeExcess(context.Background(), "a-1", nil)
		if !errors.Is(err, ErrNothingToCharge) {
			t.Fatalf("expected ErrNothingToCharge, got %v", err)
		}
	})

	t.Run("amount comes from the snapshot, not the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExcessPaymentRepository(ctrl)
		assessments := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		snapshots := mock_interfaces.NewMockIFRCRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		audit := mock_interfaces.NewMockIAuditSink(ctrl)
		uc := NewExcessPaymentUseCase(repo, assessments, snapshots, gateway, audit)

		assessments.EXPECT().GetByID(gomock.Any(), "a-1").Return(finalized, nil)
		snapshots.EXPECT().Get(gomock.Any(), "a-1").Return(completeSnap, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if m["transaction_amount"] != 250.0 {
					t.Fatalf("caller-supplied amount must be overridden, got %v", m["transaction_amount"])
				}
				if m["payment_method_id"] != "pix" {
					t.Fatalf("provider fields must pass through, got %v", m["payment_method_id"])
				}
				if m["external_reference"] != "a-1" {
					t.Fatalf("external reference must default to the assessment id, got %v", m["external_reference"])
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123","status":"approved"}`), nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ExcessPayment) (entities.ExcessPayment, error) {
				if p.ID != "mp-123" || p.Amount != 250 || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment record: %+v", p)
				}
				return p, nil
			})
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		payload := json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`)
		got, err := uc.ChargeExcess(context.Background(), "a-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AssessmentID != "a-1" {
			t.Fatalf("assessment id not carried: %+v", got)
		}
	})

	t.Run("gateway failure writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assessments := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		snapshots := mock_interfaces.NewMockIFRCRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewExcessPaymentUseCase(nil, assessments, snapshots, gateway, nil)

		assessments.EXPECT().GetByID(gomock.Any(), "a-1").Return(finalized, nil)
		snapshots.EXPECT().Get(gomock.Any(), "a-1").Return(completeSnap, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))

		_, err := uc.ChargeExcess(context.Background(), "a-1", nil)
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider down, got %v", err)
		}
	})
}

func TestExcessPaymentUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExcessPaymentRepository(ctrl)
		uc := NewExcessPaymentUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ExcessPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrExcessPaymentNotFound) {
			t.Fatalf("expected ErrExcessPaymentNotFound, got %v", err)
		}
	})
}

func TestExcessPaymentUseCase_ListByAssessmentID(t *testing.T) {
	t.Run("delegates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExcessPaymentRepository(ctrl)
		uc := NewExcessPaymentUseCase(repo, nil, nil, nil, nil)

		want := []entities.ExcessPayment{{ID: "mp-123", AssessmentID: "a-1"}}
		repo.EXPECT().ListByAssessmentID(gomock.Any(), "a-1").Return(want, nil)

		got, err := uc.ListByAssessmentID(context.Background(), "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "mp-123" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
