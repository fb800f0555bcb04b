package handlers

import (
	"context"
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
	errInvalidLinePayload = pkg.NewDomainErrorSimple("INVALID_LINE_INPUT", "Invalid line item payload", http.StatusBadRequest)
)

// LineHandler handles estimate lines and the additionals (client change
// requests) raised against them.

type LineHandler struct {
	usecase usecase.ILineUseCase
}

func NewLineHandler(uc usecase.ILineUseCase) *LineHandler {
	return &LineHandler{usecase: uc}
}

func (h *LineHandler) AddEstimateLine(c *gin.Context) {
	var payload request.EstimateLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLinePayload.HTTPStatus, errInvalidLinePayload.ToHTTPError())
		return
	}

	line, err := h.usecase.AddEstimateLine(c.Request.Context(), c.Param("id"), usecase.LineInput{
		Description: payload.Description,
		Category:    payload.Category,
		PartType:    payload.PartType,
		Amounts:     payload.Amounts.ToEntity(),
	})
	if err != nil {
		appErr := mapLineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimateLine(line))
}

// RequestAdditional records a pending client change request. Removals only
// name the estimate line they cancel; amounts are derived from the target.
func (h *LineHandler) RequestAdditional(c *gin.Context) {
	var payload request.AdditionalLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLinePayload.HTTPStatus, errInvalidLinePayload.ToHTTPError())
		return
	}

	action := entities.AdditionalAction(payload.Action)
	line, err := h.usecase.RequestAdditional(c.Request.Context(), c.Param("id"), action, payload.RemovesLineID, usecase.LineInput{
		Description: payload.Description,
		Category:    payload.Category,
		PartType:    payload.PartType,
		Amounts:     payload.Amounts.ToEntity(),
	})
	if err != nil {
		appErr := mapLineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAdditionalLine(line))
}

func (h *LineHandler) ApproveAdditional(c *gin.Context) {
	h.patchAdditionalStatus(c, h.usecase.ApproveAdditional)
}

func (h *LineHandler) DeclineAdditional(c *gin.Context) {
	h.patchAdditionalStatus(c, h.usecase.DeclineAdditional)
}

func (h *LineHandler) patchAdditionalStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.AdditionalLine, error),
) {
	line, err := updater(c.Request.Context(), c.Param("additional_id"))
	if err != nil {
		appErr := mapLineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdditionalLine(line))
}

func (h *LineHandler) ListLineItems(c *gin.Context) {
	estimates, additionals, err := h.usecase.ListLineItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItems(estimates, additionals))
}

func mapLineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssessmentID),
		errors.Is(err, usecase.ErrInvalidLineInput),
		errors.Is(err, usecase.ErrInvalidAdditionalAction):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FOUND", "Assessment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateLineNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_LINE_NOT_FOUND", "Estimate line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAdditionalNotFound):
		return pkg.NewDomainErrorSimple("ADDITIONAL_NOT_FOUND", "Additional line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateReadOnly):
		return pkg.NewDomainErrorSimple("ESTIMATE_READ_ONLY", "The estimate can no longer be edited at this stage", http.StatusConflict)
	case errors.Is(err, usecase.ErrAdditionalAlreadyDecided):
		return pkg.NewDomainErrorSimple("ADDITIONAL_ALREADY_DECIDED", "Additional was already approved or declined", http.StatusConflict)
	case errors.Is(err, usecase.ErrLineAlreadyRemoved):
		return pkg.NewDomainErrorSimple("LINE_ALREADY_REMOVED", "Estimate line is already targeted by a removal", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
