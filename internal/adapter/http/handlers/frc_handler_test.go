package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vistoria_xpto/internal/adapter/http/handlers/mocks"
	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func snapshotFixture() entities.FRCSnapshot {
	return entities.FRCSnapshot{
		AssessmentID: "a-1",
		Version:      3,
		GrandTotal:   150,
		Lines: []entities.FRCLine{
			{Fingerprint: "fp-1", Decision: entities.FRCDecisionAgree, QuotedTotal: 150, ActualTotal: 150},
		},
	}
}

func TestFRCHandler_MergeSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("before reconciliation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconcile := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewFRCHandler(reconcile, nil)

		r := gin.New()
		r.POST("/v1/assessments/:id/frc/merge", h.MergeSnapshot)

		reconcile.EXPECT().Merge(gomock.Any(), "a-1").Return(entities.FRCSnapshot{}, usecase.ErrReconciliationNotReached)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/frc/merge", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("integrity violation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconcile := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewFRCHandler(reconcile, nil)

		r := gin.New()
		r.POST("/v1/assessments/:id/frc/merge", h.MergeSnapshot)

		reconcile.EXPECT().Merge(gomock.Any(), "a-1").Return(entities.FRCSnapshot{}, usecase.ErrIntegrityViolation)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/frc/merge", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success reports completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconcile := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewFRCHandler(reconcile, nil)

		r := gin.New()
		r.POST("/v1/assessments/:id/frc/merge", h.MergeSnapshot)

		reconcile.EXPECT().Merge(gomock.Any(), "a-1").Return(snapshotFixture(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/frc/merge", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["complete"] != true {
			t.Fatalf("fully decided snapshot must report complete: %v", body)
		}
		if body["grand_total"] != 150.0 {
			t.Fatalf("unexpected grand total: %v", body["grand_total"])
		}
	})
}

func TestFRCHandler_GetSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconcile := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewFRCHandler(reconcile, nil)

		r := gin.New()
		r.GET("/v1/assessments/:id/frc", h.GetSnapshot)

		reconcile.EXPECT().Get(gomock.Any(), "a-1").Return(entities.FRCSnapshot{}, usecase.ErrSnapshotNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/assessments/a-1/frc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestFRCHandler_ReopenSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconcile := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewFRCHandler(reconcile, nil)

		r := gin.New()
		r.POST("/v1/assessments/:id/frc/reopen", h.ReopenSnapshot)

		reconcile.EXPECT().Reopen(gomock.Any(), "a-1").Return(entities.FRCSnapshot{}, usecase.ErrSnapshotNotLocked)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/frc/reopen", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestFRCHandler_DecideLine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		decisions := mocks.NewMockIDecisionUseCase(ctrl)
		h := NewFRCHandler(nil, decisions)

		r := gin.New()
		r.PATCH("/v1/assessments/:id/frc/lines/:fingerprint", h.DecideLine)

		req := httptest.NewRequest(http.MethodPatch, "/v1/assessments/a-1/frc/lines/fp-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("locked snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		decisions := mocks.NewMockIDecisionUseCase(ctrl)
		h := NewFRCHandler(nil, decisions)

		r := gin.New()
		r.PATCH("/v1/assessments/:id/frc/lines/:fingerprint", h.DecideLine)

		decisions.EXPECT().Decide(gomock.Any(), "a-1", "fp-1", entities.FRCDecisionAgree, gomock.Nil(), "").Return(entities.FRCSnapshot{}, usecase.ErrSnapshotLocked)

		req := httptest.NewRequest(http.MethodPatch, "/v1/assessments/a-1/frc/lines/fp-1", bytes.NewBufferString(`{"decision":"agree"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("adjust without reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		decisions := mocks.NewMockIDecisionUseCase(ctrl)
		h := NewFRCHandler(nil, decisions)

		r := gin.New()
		r.PATCH("/v1/assessments/:id/frc/lines/:fingerprint", h.DecideLine)

		decisions.EXPECT().Decide(gomock.Any(), "a-1", "fp-1", entities.FRCDecisionAdjust, gomock.Any(), "").Return(entities.FRCSnapshot{}, usecase.ErrAdjustReasonRequired)

		req := httptest.NewRequest(http.MethodPatch, "/v1/assessments/a-1/frc/lines/fp-1", bytes.NewBufferString(`{"decision":"adjust","actual_total":90}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("adjust success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		decisions := mocks.NewMockIDecisionUseCase(ctrl)
		h := NewFRCHandler(nil, decisions)

		r := gin.New()
		r.PATCH("/v1/assessments/:id/frc/lines/:fingerprint", h.DecideLine)

		decisions.EXPECT().Decide(gomock.Any(), "a-1", "fp-1", entities.FRCDecisionAdjust, gomock.Any(), "aftermarket part").DoAndReturn(
			func(_ any, _, _ string, _ entities.FRCDecision, actualTotal *float64, _ string) (entities.FRCSnapshot, error) {
				if actualTotal == nil || *actualTotal != 90 {
					t.Fatalf("actual total not forwarded: %v", actualTotal)
				}
				return snapshotFixture(), nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/assessments/a-1/frc/lines/fp-1", bytes.NewBufferString(`{"decision":"adjust","actual_total":90,"reason":"aftermarket part"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		decisions := mocks.NewMockIDecisionUseCase(ctrl)
		h := NewFRCHandler(nil, decisions)

		r := gin.New()
		r.PATCH("/v1/assessments/:id/frc/lines/:fingerprint", h.DecideLine)

		decisions.EXPECT().Decide(gomock.Any(), "a-1", "fp-1", entities.FRCDecisionAgree, gomock.Nil(), "").Return(entities.FRCSnapshot{}, usecase.ErrLineAlreadyDecided)

		req := httptest.NewRequest(http.MethodPatch, "/v1/assessments/a-1/frc/lines/fp-1", bytes.NewBufferString(`{"decision":"agree"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
