package handlers

import (
	"errors"
	"net/http"

	request "vistoria_xpto/internal/adapter/http/dto/request"
	response "vistoria_xpto/internal/adapter/http/dto/response"
	"vistoria_xpto/internal/usecase"
	"vistoria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidExcessPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// ExcessPaymentHandler charges the client excess once reconciliation is
// complete.

type ExcessPaymentHandler struct {
	usecase usecase.IExcessPaymentUseCase
}

func NewExcessPaymentHandler(uc usecase.IExcessPaymentUseCase) *ExcessPaymentHandler {
	return &ExcessPaymentHandler{usecase: uc}
}

func (h *ExcessPaymentHandler) ChargeExcess(c *gin.Context) {
	var payload request.ChargeExcessRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidExcessPaymentPayload.HTTPStatus, errInvalidExcessPaymentPayload.ToHTTPError())
			return
		}
	}

	p, err := h.usecase.ChargeExcess(c.Request.Context(), c.Param("id"), payload.ProviderPayload)
	if err != nil {
		appErr := mapExcessPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromExcessPayment(p))
}

func (h *ExcessPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapExcessPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExcessPayment(p))
}

func (h *ExcessPaymentHandler) ListPayments(c *gin.Context) {
	items, err := h.usecase.ListByAssessmentID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapExcessPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExcessPayments(items))
}

func mapExcessPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssessmentID),
		errors.Is(err, usecase.ErrInvalidProviderPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FOUND", "Assessment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExcessPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssessmentNotFinalized):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FINALIZED", "Assessment has not been finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrReconciliationIncomplete):
		return pkg.NewDomainErrorSimple("RECONCILIATION_INCOMPLETE", "Reconciliation has pending lines", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Reconciled total is not positive", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
