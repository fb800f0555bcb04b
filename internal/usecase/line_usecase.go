package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidLineInput         = errors.New("invalid line item input")
	ErrEstimateReadOnly         = errors.New("estimate is read-only after being sent to the client")
	ErrInvalidAdditionalAction  = errors.New("invalid additional action")
	ErrEstimateLineNotFound     = errors.New("estimate line not found")
	ErrAdditionalNotFound       = errors.New("additional line not found")
	ErrAdditionalAlreadyDecided = errors.New("additional already decided")
	ErrLineAlreadyRemoved       = errors.New("estimate line already targeted by a removal")
)

// LineInput carries the caller-supplied attributes of a new line item.
type LineInput struct {
	Description string
	Category    string
	PartType    string
	Amounts     entities.MoneyBreakdown
}

// ILineUseCase manages estimate lines and the additional (client change
// request) workflow feeding the reconciliation.

type ILineUseCase interface {
	AddEstimateLine(ctx context.Context, assessmentID string, in LineInput) (entities.EstimateLine, error)
	RequestAdditional(ctx context.Context, assessmentID string, action entities.AdditionalAction, removesLineID string, in LineInput) (entities.AdditionalLine, error)
	ApproveAdditional(ctx context.Context, id string) (entities.AdditionalLine, error)
	DeclineAdditional(ctx context.Context, id string) (entities.AdditionalLine, error)
	ListLineItems(ctx context.Context, assessmentID string) ([]entities.EstimateLine, []entities.AdditionalLine, error)
}

type LineUseCase struct {
	assessments interfaces.IAssessmentRepository
	lines       interfaces.ILineItemRepository
	audit       interfaces.IAuditSink
}

var _ ILineUseCase = (*LineUseCase)(nil)

func NewLineUseCase(assessments interfaces.IAssessmentRepository, lines interfaces.ILineItemRepository, audit interfaces.IAuditSink) *LineUseCase {
	return &LineUseCase{assessments: assessments, lines: lines, audit: audit}
}

func (u *LineUseCase) AddEstimateLine(ctx context.Context, assessmentID string, in LineInput) (entities.EstimateLine, error) {
	a, err := u.loadAssessment(ctx, assessmentID)
	if err != nil {
		return entities.EstimateLine{}, err
	}
	// Once the estimate went out, the original quote is frozen; changes only
	// happen through additionals.
	if a.Stage == entities.StageCancelled || a.Stage.AtOrAfter(entities.StageSentToClient) {
		return entities.EstimateLine{}, ErrEstimateReadOnly
	}
	if err := validateLineInput(in); err != nil {
		return entities.EstimateLine{}, err
	}

	existing, err := u.lines.ListEstimateLines(ctx, a.ID)
	if err != nil {
		return entities.EstimateLine{}, err
	}

	now := time.Now().UTC()
	l := entities.EstimateLine{
		ID:           uuid.NewString(),
		AssessmentID: a.ID,
		LineNumber:   len(existing) + 1,
		Description:  strings.TrimSpace(in.Description),
		Category:     strings.TrimSpace(in.Category),
		PartType:     strings.TrimSpace(in.PartType),
		Amounts:      in.Amounts,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.lines.CreateEstimateLine(ctx, l)
	if err != nil {
		return entities.EstimateLine{}, err
	}

	if err := appendAudit(ctx, u.audit, entities.AuditEntry{
		EntityType: "estimate_line",
		EntityID:   created.ID,
		Action:     "created",
		NewValue:   created.Description,
		Metadata:   map[string]string{"assessment_id": a.ID},
	}); err != nil {
		return entities.EstimateLine{}, err
	}
	return created, nil
}

// RequestAdditional records a proposed change to the estimate. Removals copy
// the negated identity and amounts of the line they negate, so the pair
// always sums to zero in aggregates.
func (u *LineUseCase) RequestAdditional(ctx context.Context, assessmentID string, action entities.AdditionalAction, removesLineID string, in LineInput) (entities.AdditionalLine, error) {
	a, err := u.loadAssessment(ctx, assessmentID)
	if err != nil {
		return entities.AdditionalLine{}, err
	}
	if a.Stage.IsTerminal() {
		return entities.AdditionalLine{}, ErrEstimateReadOnly
	}
	if !action.IsValid() {
		return entities.AdditionalLine{}, ErrInvalidAdditionalAction
	}

	add := entities.AdditionalLine{
		ID:           uuid.NewString(),
		AssessmentID: a.ID,
		Action:       action,
		Status:       entities.AdditionalStatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	if action == entities.AdditionalActionRemove {
		removesLineID = strings.TrimSpace(removesLineID)
		if removesLineID == "" {
			return entities.AdditionalLine{}, ErrInvalidLineInput
		}
		target, err := u.lines.GetEstimateLineByID(ctx, removesLineID)
		if err != nil {
			return entities.AdditionalLine{}, err
		}
		if target.ID == "" || target.AssessmentID != a.ID {
			return entities.AdditionalLine{}, ErrEstimateLineNotFound
		}
		if err := u.checkNotAlreadyRemoved(ctx, a.ID, target.ID); err != nil {
			return entities.AdditionalLine{}, err
		}

		add.RemovesLineID = target.ID
		add.Description = target.Description
		add.Category = target.Category
		add.PartType = target.PartType
		add.Amounts = target.Amounts.Negate()
	} else {
		if err := validateLineInput(in); err != nil {
			return entities.AdditionalLine{}, err
		}
		add.Description = strings.TrimSpace(in.Description)
		add.Category = strings.TrimSpace(in.Category)
		add.PartType = strings.TrimSpace(in.PartType)
		add.Amounts = in.Amounts
	}

	created, err := u.lines.CreateAdditionalLine(ctx, add)
	if err != nil {
		return entities.AdditionalLine{}, err
	}
	log.Printf("[line][usecase] additional requested id=%s assessment_id=%s action=%s", created.ID, a.ID, action)

	if err := appendAudit(ctx, u.audit, entities.AuditEntry{
		EntityType: "additional_line",
		EntityID:   created.ID,
		Action:     "requested",
		NewValue:   string(action),
		Metadata:   map[string]string{"assessment_id": a.ID},
	}); err != nil {
		return entities.AdditionalLine{}, err
	}
	return created, nil
}

func (u *LineUseCase) ApproveAdditional(ctx context.Context, id string) (entities.AdditionalLine, error) {
	return u.decideAdditional(ctx, id, entities.AdditionalStatusApproved)
}

func (u *LineUseCase) DeclineAdditional(ctx context.Context, id string) (entities.AdditionalLine, error) {
	return u.decideAdditional(ctx, id, entities.AdditionalStatusDeclined)
}

// decideAdditional transitions an additional out of pending exactly once.
// The repository write is conditional on the stored status; a concurrent
// decision loses the race and reports the additional as already decided.
func (u *LineUseCase) decideAdditional(ctx context.Context, id string, status entities.AdditionalStatus) (entities.AdditionalLine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AdditionalLine{}, ErrAdditionalNotFound
	}

	add, err := u.lines.GetAdditionalLineByID(ctx, id)
	if err != nil {
		return entities.AdditionalLine{}, err
	}
	if add.ID == "" {
		return entities.AdditionalLine{}, ErrAdditionalNotFound
	}
	if add.Status.IsDecided() {
		return entities.AdditionalLine{}, ErrAdditionalAlreadyDecided
	}

	updated, err := u.lines.UpdateAdditionalStatus(ctx, id, status)
	if err != nil {
		return entities.AdditionalLine{}, err
	}
	if updated.ID == "" {
		return entities.AdditionalLine{}, ErrAdditionalAlreadyDecided
	}

	if err := appendAudit(ctx, u.audit, entities.AuditEntry{
		EntityType: "additional_line",
		EntityID:   updated.ID,
		Action:     "status_changed",
		OldValue:   string(entities.AdditionalStatusPending),
		NewValue:   string(status),
		Metadata:   map[string]string{"assessment_id": updated.AssessmentID},
	}); err != nil {
		return entities.AdditionalLine{}, err
	}
	return updated, nil
}

func (u *LineUseCase) ListLineItems(ctx context.Context, assessmentID string) ([]entities.EstimateLine, []entities.AdditionalLine, error) {
	a, err := u.loadAssessment(ctx, assessmentID)
	if err != nil {
		return nil, nil, err
	}
	estimates, err := u.lines.ListEstimateLines(ctx, a.ID)
	if err != nil {
		return nil, nil, err
	}
	additionals, err := u.lines.ListAdditionalLines(ctx, a.ID)
	if err != nil {
		return nil, nil, err
	}
	return estimates, additionals, nil
}

func (u *LineUseCase) loadAssessment(ctx context.Context, assessmentID string) (entities.Assessment, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.Assessment{}, ErrInvalidAssessmentID
	}
	a, err := u.assessments.GetByID(ctx, assessmentID)
	if err != nil {
		return entities.Assessment{}, err
	}
	if a.ID == "" {
		return entities.Assessment{}, ErrAssessmentNotFound
	}
	return a, nil
}

func (u *LineUseCase) checkNotAlreadyRemoved(ctx context.Context, assessmentID, lineID string) error {
	additionals, err := u.lines.ListAdditionalLines(ctx, assessmentID)
	if err != nil {
		return err
	}
	for _, add := range additionals {
		if add.Action != entities.AdditionalActionRemove || add.RemovesLineID != lineID {
			continue
		}
		if add.Status != entities.AdditionalStatusDeclined {
			return ErrLineAlreadyRemoved
		}
	}
	return nil
}

func validateLineInput(in LineInput) error {
	if strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.Category) == "" {
		return ErrInvalidLineInput
	}
	if in.Amounts.Total() <= 0 {
		return ErrInvalidLineInput
	}
	return nil
}
