package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autoflow/internal/adapter/http/handlers/mocks"
	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestInvoicePaymentHandler_RegisterPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.RegisterPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/prop-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("body read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.RegisterPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/prop-1/payments", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty body", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.RegisterPayment)

		uc.EXPECT().RegisterPayment(gomock.Any(), "prop-1", json.RawMessage("{}")).
			Return(entities.Invoice{ID: "prop-1", Number: "AF-2025-001"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/prop-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invoice already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.RegisterPayment)

		uc.EXPECT().RegisterPayment(gomock.Any(), "prop-1", gomock.Any()).
			Return(entities.Invoice{}, usecase.ErrInvoiceAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/prop-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVOICE_ALREADY_PAID" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.RegisterPayment)

		uc.EXPECT().RegisterPayment(gomock.Any(), "prop-1", gomock.Any()).
			Return(entities.Invoice{}, usecase.ErrPaymentGatewayUnauthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/prop-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:id/payments", h.RegisterPayment)

		paidAt := time.Now().UTC()
		uc.EXPECT().RegisterPayment(gomock.Any(), "prop-1", gomock.Any()).
			Return(entities.Invoice{
				ID:          "prop-1",
				Number:      "AF-2025-001",
				TotalAmount: decimal.NewFromInt(17000),
				PaymentDate: &paidAt,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/prop-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"mario@example.it"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["paid"] != true {
			t.Fatalf("expected a paid invoice, got %s", w.Body.String())
		}
	})
}
