package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vistoria_xpto/internal/adapter/http/handlers/mocks"
	"vistoria_xpto/internal/domain/entities"
	"vistoria_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestExcessPaymentHandler_ChargeExcess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExcessPaymentUseCase(ctrl)
		h := NewExcessPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments/:id/excess-payments", h.ChargeExcess)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/excess-payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExcessPaymentUseCase(ctrl)
		h := NewExcessPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments/:id/excess-payments", h.ChargeExcess)

		p := entities.ExcessPayment{ID: "mp-123", AssessmentID: "a-1", Amount: 250, Date: time.Now().UTC(), Status: entities.PaymentStatusApproved}
		uc.EXPECT().ChargeExcess(gomock.Any(), "a-1", gomock.Nil()).Return(p, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/excess-payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("provider payload passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExcessPaymentUseCase(ctrl)
		h := NewExcessPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments/:id/excess-payments", h.ChargeExcess)

		uc.EXPECT().ChargeExcess(gomock.Any(), "a-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, payload json.RawMessage) (entities.ExcessPayment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload not forwarded as json: %v", err)
				}
				if m["payment_method_id"] != "pix" {
					t.Fatalf("provider fields lost: %v", m)
				}
				return entities.ExcessPayment{ID: "mp-123", AssessmentID: "a-1", Amount: 250, Status: entities.PaymentStatusApproved}, nil
			})

		body := `{"provider_payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/excess-payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("reconciliation incomplete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExcessPaymentUseCase(ctrl)
		h := NewExcessPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments/:id/excess-payments", h.ChargeExcess)

		uc.EXPECT().ChargeExcess(gomock.Any(), "a-1", gomock.Nil()).Return(entities.ExcessPayment{}, usecase.ErrReconciliationIncomplete)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/excess-payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExcessPaymentUseCase(ctrl)
		h := NewExcessPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/assessments/:id/excess-payments", h.ChargeExcess)

		uc.EXPECT().ChargeExcess(gomock.Any(), "a-1", gomock.Nil()).Return(entities.ExcessPayment{}, usecase.ErrPaymentGatewayUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/assessments/a-1/excess-payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestExcessPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExcessPaymentUseCase(ctrl)
		h := NewExcessPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/excess-payments/:payment_id", h.GetPayment)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ExcessPayment{}, usecase.ErrExcessPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/excess-payments/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExcessPaymentUseCase(ctrl)
		h := NewExcessPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/excess-payments/:payment_id", h.GetPayment)

		p := entities.ExcessPayment{ID: "mp-123", AssessmentID: "a-1", Amount: 250, Status: entities.PaymentStatusApproved}
		uc.EXPECT().GetByID(gomock.Any(), "mp-123").Return(p, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/excess-payments/mp-123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["amount"] != 250.0 {
			t.Fatalf("unexpected amount: %v", body["amount"])
		}
	})
}

func TestExcessPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExcessPaymentUseCase(ctrl)
		h := NewExcessPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/assessments/:id/excess-payments", h.ListPayments)

		items := []entities.ExcessPayment{{ID: "mp-123", AssessmentID: "a-1"}}
		uc.EXPECT().ListByAssessmentID(gomock.Any(), "a-1").Return(items, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/assessments/a-1/excess-payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
