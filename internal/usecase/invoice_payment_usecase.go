package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"
)

var (
	ErrInvoiceAlreadyPaid         = errors.New("invoice already paid")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway not configured")
)

// IInvoicePaymentUseCase registers a payment against an issued invoice.
//
// The gateway derives the charged amount and the reconciliation
// reference from the invoice itself; the caller payload only carries
// payment method and payer details.
type IInvoicePaymentUseCase interface {
	RegisterPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Invoice, error)
}

type InvoicePaymentUseCase struct {
	invoiceRepo interfaces.IInvoiceRepository
	gateway     interfaces.IPaymentGateway
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(invoiceRepo interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{invoiceRepo: invoiceRepo, gateway: gateway}
}

func (u *InvoicePaymentUseCase) RegisterPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Invoice, error) {
	log.Printf("[payment][usecase] register-payment start raw_invoice_id=%q payload_len=%d", invoiceID, len(payload))
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		log.Printf("[payment][usecase] invalid payload invoice_id=%s", invoiceID)
		return entities.Invoice{}, ErrInvalidPaymentPayload
	}

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading invoice invoice_id=%s err=%v", invoiceID, err)
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.Paid() {
		log.Printf("[payment][usecase] invoice already paid invoice_id=%s paid_at=%s", invoiceID, inv.PaymentDate.Format(time.RFC3339))
		return entities.Invoice{}, ErrInvoiceAlreadyPaid
	}

	if u.gateway == nil {
		return entities.Invoice{}, ErrPaymentGatewayUnavailable
	}
	log.Printf("[payment][usecase] calling payment gateway invoice_id=%s number=%s", invoiceID, inv.Number)
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, inv, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed invoice_id=%s err=%v", invoiceID, err)
		if isGatewayUnauthorized(err) {
			return entities.Invoice{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Invoice{}, ErrPaymentGatewayBadRequest
		}
		return entities.Invoice{}, err
	}
	log.Printf("[payment][usecase] payment gateway success invoice_id=%s provider_payment_id=%s provider_status=%s", invoiceID, providerPaymentID, providerStatus)

	paidAt := time.Now().UTC()
	updated, err := u.invoiceRepo.SetPaymentDate(ctx, invoiceID, paidAt)
	if err != nil {
		log.Printf("[payment][usecase] failed persisting payment date invoice_id=%s err=%v", invoiceID, err)
		return entities.Invoice{}, err
	}
	log.Printf("[payment][usecase] register-payment success invoice_id=%s number=%s", invoiceID, inv.Number)
	return updated, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
