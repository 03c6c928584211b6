package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus represents the lifecycle of a sales proposal.
//
// Only accepted proposals may be converted to an invoice; rejected,
// expired, cancelled and completed are terminal.
type ProposalStatus string

const (
	ProposalStatusDraft     ProposalStatus = "draft"
	ProposalStatusSent      ProposalStatus = "sent"
	ProposalStatusAccepted  ProposalStatus = "accepted"
	ProposalStatusRejected  ProposalStatus = "rejected"
	ProposalStatusExpired   ProposalStatus = "expired"
	ProposalStatusCancelled ProposalStatus = "cancelled"
	ProposalStatusCompleted ProposalStatus = "completed"
)

// Terminal reports whether the status admits no further transition.
func (s ProposalStatus) Terminal() bool {
	switch s {
	case ProposalStatusRejected, ProposalStatusExpired, ProposalStatusCancelled, ProposalStatusCompleted:
		return true
	}
	return false
}

// Proposal is a priced offer to a customer for a configured vehicle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//   - GSI2 (salesperson_id-index): salesperson_id
//
// SalespersonID is empty when the proposal was created directly by the
// customer from the showroom.
type Proposal struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	SalespersonID   string          `json:"salesperson_id,omitempty"`
	ConfigurationID string          `json:"configuration_id"`
	ProposedPrice   decimal.Decimal `json:"proposed_price"`
	Status          ProposalStatus  `json:"status"`
	CustomerNotes   string          `json:"customer_notes,omitempty"`
	InternalNotes   string          `json:"internal_notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	ExpiresAt       *time.Time      `json:"expires_at,omitempty"`
}
