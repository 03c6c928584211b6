package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"autoflow/internal/domain/entities"
	mock_interfaces "autoflow/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestInvoicePaymentUseCase_RegisterPayment(t *testing.T) {
	ctx := context.Background()

	unpaid := entities.Invoice{
		ID:          "prop-1",
		Number:      "AF-2025-003",
		CustomerID:  "cust-1",
		ProposalID:  "prop-1",
		TotalAmount: decimal.RequireFromString("19999.90"),
	}

	t.Run("empty invoice id", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil)
		_, err := uc.RegisterPayment(ctx, "  ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil)
		_, err := uc.RegisterPayment(ctx, "prop-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "prop-404").Return(entities.Invoice{}, nil)

		uc := NewInvoicePaymentUseCase(invoiceRepo, nil)
		_, err := uc.RegisterPayment(ctx, "prop-404", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)

		paidAt := time.Now().UTC()
		paid := unpaid
		paid.PaymentDate = &paidAt
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(paid, nil)

		uc := NewInvoicePaymentUseCase(invoiceRepo, nil)
		_, err := uc.RegisterPayment(ctx, "prop-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvoiceAlreadyPaid) {
			t.Fatalf("expected ErrInvoiceAlreadyPaid, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(unpaid, nil)

		uc := NewInvoicePaymentUseCase(invoiceRepo, nil)
		_, err := uc.RegisterPayment(ctx, "prop-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("the stored invoice flows to the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		invoiceRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(unpaid, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice, payload json.RawMessage) (string, string, json.RawMessage, error) {
				if inv.Number != "AF-2025-003" {
					t.Fatalf("expected the loaded invoice, got %+v", inv)
				}
				if !inv.TotalAmount.Equal(unpaid.TotalAmount) {
					t.Fatalf("unexpected total: %s", inv.TotalAmount)
				}
				if string(payload) != `{"payment_method_id": "pix"}` {
					t.Fatalf("caller payload must pass through untouched, got %s", payload)
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1"}`), nil
			})
		invoiceRepo.EXPECT().SetPaymentDate(gomock.Any(), "prop-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, paidAt time.Time) (entities.Invoice, error) {
				upd := unpaid
				upd.PaymentDate = &paidAt
				return upd, nil
			})

		uc := NewInvoicePaymentUseCase(invoiceRepo, gateway)
		updated, err := uc.RegisterPayment(ctx, "prop-1", json.RawMessage(`{"payment_method_id": "pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.Paid() {
			t.Fatalf("expected a paid invoice, got %+v", updated)
		}
	})

	t.Run("empty payload becomes an empty object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		invoiceRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(unpaid, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), json.RawMessage("{}")).
			Return("mp-1", "approved", json.RawMessage(`{"id":"mp-1"}`), nil)
		invoiceRepo.EXPECT().SetPaymentDate(gomock.Any(), "prop-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, paidAt time.Time) (entities.Invoice, error) {
				upd := unpaid
				upd.PaymentDate = &paidAt
				return upd, nil
			})

		uc := NewInvoicePaymentUseCase(invoiceRepo, gateway)
		if _, err := uc.RegisterPayment(ctx, "prop-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		invoiceRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(unpaid, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		uc := NewInvoicePaymentUseCase(invoiceRepo, gateway)
		_, err := uc.RegisterPayment(ctx, "prop-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("gateway bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		invoiceRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(unpaid, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"bad_request","status":400}`))

		uc := NewInvoicePaymentUseCase(invoiceRepo, gateway)
		_, err := uc.RegisterPayment(ctx, "prop-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})
}
