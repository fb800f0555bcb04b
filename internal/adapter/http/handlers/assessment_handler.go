package handlers

import (
	"errors"
	"net/http"

	request "vistoria_xpto/internal/adapter/http/dto/request"
	response "vistoria_xpto/internal/adapter/http/dto/response"
	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase"
	"vistoria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAssessmentPayload = pkg.NewDomainErrorSimple("INVALID_ASSESSMENT_INPUT", "Invalid assessment payload", http.StatusBadRequest)
)

// AssessmentHandler handles the assessment lifecycle routes: opening from an
// intake, stage transitions, cancellation and listing.

type AssessmentHandler struct {
	assessments usecase.IAssessmentUseCase
	stages      usecase.IStageUseCase
}

func NewAssessmentHandler(assessments usecase.IAssessmentUseCase, stages usecase.IStageUseCase) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments, stages: stages}
}

// OpenAssessment creates an assessment for an approved intake and issues its
// case number. A second request for the same intake gets a 409.
func (h *AssessmentHandler) OpenAssessment(c *gin.Context) {
	var payload request.OpenAssessmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssessmentPayload.HTTPStatus, errInvalidAssessmentPayload.ToHTTPError())
		return
	}

	a, err := h.assessments.OpenAssessment(c.Request.Context(), payload.IntakeID)
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAssessment(a))
}

func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	a, err := h.assessments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssessment(a))
}

// ListAssessments filters by stage. `scheduled_only=true` narrows the result
// to assessments with a linked scheduling record; the dashboard count route
// applies the exact same predicate.
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	stage := entities.AssessmentStage(c.Query("stage"))
	onlyScheduled := c.Query("scheduled_only") == "true"

	items, err := h.assessments.ListByStage(c.Request.Context(), stage, onlyScheduled)
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssessments(items))
}

func (h *AssessmentHandler) LinkScheduling(c *gin.Context) {
	var payload request.LinkSchedulingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssessmentPayload.HTTPStatus, errInvalidAssessmentPayload.ToHTTPError())
		return
	}

	a, err := h.assessments.LinkScheduling(c.Request.Context(), c.Param("id"), payload.SchedulingID)
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssessment(a))
}

// TransitionStage advances the assessment to the requested stage. Only the
// immediate successor (or cancellation) is accepted.
func (h *AssessmentHandler) TransitionStage(c *gin.Context) {
	var payload request.StageTransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssessmentPayload.HTTPStatus, errInvalidAssessmentPayload.ToHTTPError())
		return
	}

	target := entities.AssessmentStage(payload.Target)
	if !target.IsValid() {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_STAGE", "Unrecognized stage value", http.StatusBadRequest).ToHTTPError())
		return
	}

	a, err := h.stages.Transition(c.Request.Context(), c.Param("id"), target)
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssessment(a))
}

func (h *AssessmentHandler) CancelAssessment(c *gin.Context) {
	// Cancellation accepts an empty body; only malformed JSON is rejected.
	var payload request.CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidAssessmentPayload.HTTPStatus, errInvalidAssessmentPayload.ToHTTPError())
			return
		}
	}

	a, err := h.stages.Cancel(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssessment(a))
}

func mapAssessmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssessmentID),
		errors.Is(err, usecase.ErrInvalidIntakeID),
		errors.Is(err, usecase.ErrInvalidSchedulingID),
		errors.Is(err, usecase.ErrInvalidStage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FOUND", "Assessment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIntakeAlreadyClaimed):
		return pkg.NewDomainErrorSimple("INTAKE_ALREADY_CLAIMED", "An assessment already exists for this intake", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Stage transition not allowed from the current stage", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingPrerequisite):
		return pkg.NewDomainErrorSimple("MISSING_PREREQUISITE", "Stage prerequisites are not satisfied", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrConcurrencyConflict):
		return pkg.NewDomainErrorSimple("CONCURRENCY_CONFLICT", "The assessment changed concurrently, retry the request", http.StatusConflict)
	case errors.Is(err, usecase.ErrSequenceExhausted):
		return pkg.NewDomainErrorSimple("SEQUENCE_EXHAUSTED", "Case number generation is overloaded, retry later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
