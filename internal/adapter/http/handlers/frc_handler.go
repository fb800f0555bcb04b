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
	errInvalidDecisionPayload = pkg.NewDomainErrorSimple("INVALID_DECISION_INPUT", "Invalid decision payload", http.StatusBadRequest)
)

// FRCHandler serves the final repair costing view: merging line items into
// the snapshot, reading it and recording per-line decisions.

type FRCHandler struct {
	reconcile usecase.IReconcileUseCase
	decisions usecase.IDecisionUseCase
}

func NewFRCHandler(reconcile usecase.IReconcileUseCase, decisions usecase.IDecisionUseCase) *FRCHandler {
	return &FRCHandler{reconcile: reconcile, decisions: decisions}
}

// MergeSnapshot folds the current estimate lines and decided additionals into
// the snapshot. Merging is idempotent: repeating it without new inputs yields
// the same line set under a new version.
func (h *FRCHandler) MergeSnapshot(c *gin.Context) {
	snap, err := h.reconcile.Merge(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFRCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFRCSnapshot(snap, usecase.FRCComplete(snap)))
}

func (h *FRCHandler) GetSnapshot(c *gin.Context) {
	snap, err := h.reconcile.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFRCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFRCSnapshot(snap, usecase.FRCComplete(snap)))
}

// ReopenSnapshot unlocks a finalized snapshot so late corrections can be
// merged and decided again.
func (h *FRCHandler) ReopenSnapshot(c *gin.Context) {
	snap, err := h.reconcile.Reopen(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFRCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFRCSnapshot(snap, usecase.FRCComplete(snap)))
}

// DecideLine records the back-office verdict on one snapshot line, addressed
// by fingerprint.
func (h *FRCHandler) DecideLine(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDecisionPayload.HTTPStatus, errInvalidDecisionPayload.ToHTTPError())
		return
	}

	decision := entities.FRCDecision(payload.Decision)
	snap, err := h.decisions.Decide(c.Request.Context(), c.Param("id"), c.Param("fingerprint"), decision, payload.ActualTotal, payload.Reason)
	if err != nil {
		appErr := mapFRCError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFRCSnapshot(snap, usecase.FRCComplete(snap)))
}

func mapFRCError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssessmentID),
		errors.Is(err, usecase.ErrDecisionNotAllowed),
		errors.Is(err, usecase.ErrAdjustReasonRequired),
		errors.Is(err, usecase.ErrActualTotalRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FOUND", "Assessment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSnapshotNotFound):
		return pkg.NewDomainErrorSimple("SNAPSHOT_NOT_FOUND", "No reconciliation snapshot for this assessment", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFRCLineNotFound):
		return pkg.NewDomainErrorSimple("FRC_LINE_NOT_FOUND", "Reconciliation line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReconciliationNotReached):
		return pkg.NewDomainErrorSimple("RECONCILIATION_NOT_REACHED", "Assessment has not reached the reconciliation stage", http.StatusConflict)
	case errors.Is(err, usecase.ErrSnapshotLocked):
		return pkg.NewDomainErrorSimple("SNAPSHOT_LOCKED", "The snapshot is finalized and read-only", http.StatusConflict)
	case errors.Is(err, usecase.ErrSnapshotNotLocked):
		return pkg.NewDomainErrorSimple("SNAPSHOT_NOT_LOCKED", "Only a finalized snapshot can be reopened", http.StatusConflict)
	case errors.Is(err, usecase.ErrLineAlreadyDecided):
		return pkg.NewDomainErrorSimple("LINE_ALREADY_DECIDED", "Reconciliation line was already decided", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrencyConflict):
		return pkg.NewDomainErrorSimple("CONCURRENCY_CONFLICT", "The snapshot changed concurrently, retry the request", http.StatusConflict)
	case errors.Is(err, usecase.ErrIntegrityViolation):
		return pkg.NewDomainErrorSimple("INTEGRITY_VIOLATION", "Line items reference missing or already removed lines", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
