package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges invoices through Mercado Pago.
//
// The invoice drives the charge: external_reference and description
// default to the invoice number, and transaction_amount is always the
// stored invoice total. The caller payload only contributes the payment
// method and payer details.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, inv entities.Invoice, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	enriched, err := buildPaymentRequest(inv, requestPayload)
	if err != nil {
		log.Printf("[payment][gateway] payload rejected invoice_id=%s err=%v", inv.ID, err)
		return "", "", nil, err
	}

	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock create start number=%s", inv.Number)

		resp := map[string]any{}
		_ = json.Unmarshal(enriched, &resp)

		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		resp["id"] = id
		resp["status"] = "approved"
		resp["status_detail"] = "accredited"
		if _, ok := resp["date_created"]; !ok {
			resp["date_created"] = now
		}
		if _, ok := resp["date_approved"]; !ok {
			resp["date_approved"] = now
		}

		b, err := json.Marshal(resp)
		if err != nil {
			log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
			return "", "", nil, err
		}

		log.Printf("[payment][gateway] mock create success number=%s provider_payment_id=%s provider_status=approved", inv.Number, id)
		return id, "approved", b, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start number=%s amount=%s", inv.Number, inv.TotalAmount)

	var req payment.Request
	if err := json.Unmarshal(enriched, &req); err != nil {
		log.Printf("[payment][gateway] request unmarshal failed number=%s err=%v", inv.Number, err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed number=%s err=%v", inv.Number, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] create success number=%s provider_payment_id=%d provider_status=%s", inv.Number, resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// buildPaymentRequest merges the caller payload with the fields derived
// from the invoice. Mercado Pago reconciles events by external_reference,
// so it defaults to the invoice number; the charged amount is always the
// stored invoice total regardless of what the caller sent.
func buildPaymentRequest(inv entities.Invoice, payload json.RawMessage) (json.RawMessage, error) {
	req := map[string]any{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, fmt.Errorf("payment payload for invoice %s: %w", inv.ID, err)
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = inv.Number
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Fattura %s", inv.Number)
	}
	amount, _ := inv.TotalAmount.Float64()
	req["transaction_amount"] = amount
	return json.Marshal(req)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
