package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"autoflow/internal/adapter/http/handlers/mocks"
	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestProposalHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(`{"customer_id":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_PROPOSAL_INPUT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("configuration rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.Create)

		uc.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).
			Return(entities.Proposal{}, usecase.ErrInvalidConfiguration)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals",
			bytes.NewBufferString(`{"customer_id":"cust-1","configuration_id":"cfg-9","proposed_price":"18000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_CONFIGURATION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("inactive operator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.Create)

		uc.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).
			Return(entities.Proposal{}, usecase.ErrUnauthorizedOperator)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals",
			bytes.NewBufferString(`{"customer_id":"cust-1","salesperson_id":"sp-9","configuration_id":"cfg-1","proposed_price":"18000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("vehicle unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.Create)

		uc.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).
			Return(entities.Proposal{}, usecase.ErrVehicleUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals",
			bytes.NewBufferString(`{"customer_id":"cust-1","configuration_id":"cfg-1","proposed_price":"18000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success forwards the command", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.Create)

		uc.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateProposalCommand) (entities.Proposal, error) {
				if cmd.CustomerID != "cust-1" || cmd.ConfigurationID != "cfg-1" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if !cmd.ProposedPrice.Equal(decimal.NewFromInt(18000)) {
					t.Fatalf("unexpected price: %s", cmd.ProposedPrice)
				}
				return entities.Proposal{
					ID:              "prop-1",
					CustomerID:      cmd.CustomerID,
					ConfigurationID: cmd.ConfigurationID,
					ProposedPrice:   cmd.ProposedPrice,
					Status:          entities.ProposalStatusSent,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals",
			bytes.NewBufferString(`{"customer_id":"cust-1","configuration_id":"cfg-1","proposed_price":"18000","status":"sent"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "sent" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_StatusTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/accept", h.Accept)

		uc.EXPECT().Accept(gomock.Any(), "prop-1").
			Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusAccepted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/prop-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "accepted" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("reject on terminal proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/reject", h.Reject)

		uc.EXPECT().Reject(gomock.Any(), "prop-1").
			Return(entities.Proposal{}, usecase.ErrProposalTerminal)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/prop-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PROPOSAL_TERMINAL" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("cancel unknown proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/cancel", h.Cancel)

		uc.EXPECT().Cancel(gomock.Any(), "prop-404").
			Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/prop-404/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
