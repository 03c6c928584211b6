package interfaces

import (
	"context"
	"encoding/json"

	"autoflow/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Used when a customer pays an issued invoice online. The invoice is the
// source of truth for the charge: implementations derive the reconciliation
// reference and the charged amount from it, treating the caller payload as
// advisory extras (payment method, payer data). The provider response
// payload is returned for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, inv entities.Invoice, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
