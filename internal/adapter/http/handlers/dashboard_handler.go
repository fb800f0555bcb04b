package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "vistoria_xpto/internal/adapter/http/dto/response"
	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase"
	"vistoria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the stage badge counts. Counts run through the
// same repository predicate as the list endpoints.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// CountAssessments returns the badge count for one stage (`stage=`) or a
// comma-separated set (`stages=`). `scheduled_only=true` applies the same
// narrowing as the list route.
func (h *DashboardHandler) CountAssessments(c *gin.Context) {
	onlyScheduled := c.Query("scheduled_only") == "true"

	var (
		count int
		err   error
	)
	if raw := c.Query("stages"); raw != "" {
		stages := make([]entities.AssessmentStage, 0)
		for _, s := range strings.Split(raw, ",") {
			stages = append(stages, entities.AssessmentStage(strings.TrimSpace(s)))
		}
		count, err = h.usecase.CountByStageSet(c.Request.Context(), stages, onlyScheduled)
	} else {
		count, err = h.usecase.CountByStage(c.Request.Context(), entities.AssessmentStage(c.Query("stage")), onlyScheduled)
	}
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CountResponse{Count: count})
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStage):
		return pkg.NewDomainErrorSimple("INVALID_STAGE", "Unrecognized stage value", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
