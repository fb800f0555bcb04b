package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase/interfaces"
)

var (
	ErrExcessPaymentNotFound     = errors.New("excess payment not found")
	ErrInvalidProviderPayload    = errors.New("invalid payment provider payload")
	ErrAssessmentNotFinalized    = errors.New("assessment not finalized")
	ErrReconciliationIncomplete  = errors.New("reconciliation incomplete")
	ErrNothingToCharge           = errors.New("nothing to charge")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

// IExcessPaymentUseCase charges the client excess after reconciliation and
// persists the approved payment.

type IExcessPaymentUseCase interface {
	ChargeExcess(ctx context.Context, assessmentID string, providerPayload json.RawMessage) (entities.ExcessPayment, error)
	GetByID(ctx context.Context, id string) (entities.ExcessPayment, error)
	ListByAssessmentID(ctx context.Context, assessmentID string) ([]entities.ExcessPayment, error)
}

type ExcessPaymentUseCase struct {
	repo        interfaces.IExcessPaymentRepository
	assessments interfaces.IAssessmentRepository
	snapshots   interfaces.IFRCRepository
	gateway     interfaces.IPaymentGateway
	audit       interfaces.IAuditSink
}

var _ IExcessPaymentUseCase = (*ExcessPaymentUseCase)(nil)

func NewExcessPaymentUseCase(repo interfaces.IExcessPaymentRepository, assessments interfaces.IAssessmentRepository, snapshots interfaces.IFRCRepository, gateway interfaces.IPaymentGateway, audit interfaces.IAuditSink) *ExcessPaymentUseCase {
	return &ExcessPaymentUseCase{repo: repo, assessments: assessments, snapshots: snapshots, gateway: gateway, audit: audit}
}

// ChargeExcess creates and processes the excess charge for a reconciled
// assessment. The amount is always the snapshot's grand total; the caller
// payload only carries provider-specific fields (payment method, payer).
func (u *ExcessPaymentUseCase) ChargeExcess(ctx context.Context, assessmentID string, providerPayload json.RawMessage) (entities.ExcessPayment, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.ExcessPayment{}, ErrInvalidAssessmentID
	}
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		return entities.ExcessPayment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		return entities.ExcessPayment{}, ErrPaymentGatewayUnavailable
	}

	a, err := u.assessments.GetByID(ctx, assessmentID)
	if err != nil {
		return entities.ExcessPayment{}, err
	}
	if a.ID == "" {
		return entities.ExcessPayment{}, ErrAssessmentNotFound
	}
	if a.Stage == entities.StageCancelled || !a.Stage.AtOrAfter(entities.StageFinalized) {
		return entities.ExcessPayment{}, ErrAssessmentNotFinalized
	}

	snap, err := u.snapshots.Get(ctx, assessmentID)
	if err != nil {
		return entities.ExcessPayment{}, err
	}
	if snap.AssessmentID == "" || !FRCComplete(snap) {
		return entities.ExcessPayment{}, ErrReconciliationIncomplete
	}
	if snap.GrandTotal <= 0 {
		return entities.ExcessPayment{}, ErrNothingToCharge
	}

	// The source of truth for the amount is the reconciled snapshot in DB.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		return entities.ExcessPayment{}, ErrInvalidProviderPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = a.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Assessment %s excess", a.CaseNumber)
	}
	reqMap["transaction_amount"] = snap.GrandTotal
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.ExcessPayment{}, err
	}

	log.Printf("[payment][usecase] charging excess assessment_id=%s amount=%.2f", a.ID, snap.GrandTotal)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed assessment_id=%s err=%v", a.ID, err)
		return entities.ExcessPayment{}, err
	}
	log.Printf("[payment][usecase] gateway success assessment_id=%s provider_payment_id=%s provider_status=%s", a.ID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed assessment_id=%s err=%v", a.ID, err)
	}

	p := entities.ExcessPayment{
		ID:                 providerPaymentID,
		AssessmentID:       a.ID,
		Amount:             snap.GrandTotal,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.ExcessPayment{}, err
	}

	if err := appendAudit(ctx, u.audit, entities.AuditEntry{
		EntityType: "excess_payment",
		EntityID:   created.ID,
		Action:     "charged",
		NewValue:   fmt.Sprintf("%.2f", created.Amount),
		Metadata:   map[string]string{"assessment_id": a.ID},
	}); err != nil {
		return entities.ExcessPayment{}, err
	}
	return created, nil
}

func (u *ExcessPaymentUseCase) GetByID(ctx context.Context, id string) (entities.ExcessPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ExcessPayment{}, ErrExcessPaymentNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ExcessPayment{}, err
	}
	if p.ID == "" {
		return entities.ExcessPayment{}, ErrExcessPaymentNotFound
	}
	return p, nil
}

func (u *ExcessPaymentUseCase) ListByAssessmentID(ctx context.Context, assessmentID string) ([]entities.ExcessPayment, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return nil, ErrInvalidAssessmentID
	}
	return u.repo.ListByAssessmentID(ctx, assessmentID)
}
