package handlers

import (
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

func TestInvoiceHandler_CreateFromProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("proposal not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/proposal/:proposal_id", h.CreateFromProposal)

		uc.EXPECT().CreateFromProposal(gomock.Any(), "prop-404").Return(entities.Invoice{}, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/proposal/prop-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PROPOSAL_NOT_FOUND" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("proposal not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/proposal/:proposal_id", h.CreateFromProposal)

		uc.EXPECT().CreateFromProposal(gomock.Any(), "prop-1").Return(entities.Invoice{}, usecase.ErrProposalNotConfirmed)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/proposal/prop-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PROPOSAL_NOT_ACCEPTED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invoice already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/proposal/:proposal_id", h.CreateFromProposal)

		uc.EXPECT().CreateFromProposal(gomock.Any(), "prop-1").Return(entities.Invoice{}, usecase.ErrInvoiceAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/proposal/prop-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVOICE_ALREADY_EXISTS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/proposal/:proposal_id", h.CreateFromProposal)

		uc.EXPECT().CreateFromProposal(gomock.Any(), "prop-1").Return(entities.Invoice{
			ID:          "prop-1",
			Number:      "AF-2025-001",
			IssueDate:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			CustomerID:  "cust-1",
			ProposalID:  "prop-1",
			TotalAmount: decimal.NewFromInt(17000),
			DocumentID:  "doc-1",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/proposal/prop-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["number"] != "AF-2025-001" || body["proposal_id"] != "prop-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["paid"] != false {
			t.Fatalf("expected unpaid invoice, got %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_GetByNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/number/:number", h.GetByNumber)

		uc.EXPECT().GetByNumber(gomock.Any(), "AF-2025-404").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/number/AF-2025-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/number/:number", h.GetByNumber)

		uc.EXPECT().GetByNumber(gomock.Any(), "AF-2025-001").Return(entities.Invoice{ID: "prop-1", Number: "AF-2025-001"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/number/AF-2025-001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_DownloadPdf(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("document missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:id/pdf", h.DownloadPdf)

		uc.EXPECT().GetInvoicePdf(gomock.Any(), "prop-1").Return(nil, "", usecase.ErrDocumentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/prop-1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("streams the pdf inline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:id/pdf", h.DownloadPdf)

		uc.EXPECT().GetInvoicePdf(gomock.Any(), "prop-1").Return([]byte("%PDF-1.4"), "AF-2025-001.pdf", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/prop-1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type: %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `inline; filename="AF-2025-001.pdf"` {
			t.Fatalf("unexpected content disposition: %q", cd)
		}
		if w.Body.String() != "%PDF-1.4" {
			t.Fatalf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("rendering failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:id/pdf", h.DownloadPdf)

		uc.EXPECT().GetInvoicePdf(gomock.Any(), "prop-1").
			Return(nil, "", errors.Join(usecase.ErrRenderingFailed, errors.New("boom")))

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/prop-1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
