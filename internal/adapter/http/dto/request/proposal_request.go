package request

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateProposalRequest struct {
	CustomerID      string          `json:"customer_id" binding:"required"`
	SalespersonID   string          `json:"salesperson_id"`
	ConfigurationID string          `json:"configuration_id" binding:"required"`
	ProposedPrice   decimal.Decimal `json:"proposed_price"`
	Status          string          `json:"status"`
	CustomerNotes   string          `json:"customer_notes"`
	InternalNotes   string          `json:"internal_notes"`
	ExpiresAt       *time.Time      `json:"expires_at"`
}
