package response

import (
	"time"

	"autoflow/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProposalResponse struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	SalespersonID   string          `json:"salesperson_id,omitempty"`
	ConfigurationID string          `json:"configuration_id"`
	ProposedPrice   decimal.Decimal `json:"proposed_price"`
	Status          string          `json:"status"`
	CustomerNotes   string          `json:"customer_notes,omitempty"`
	InternalNotes   string          `json:"internal_notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	ExpiresAt       *time.Time      `json:"expires_at,omitempty"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:              p.ID,
		CustomerID:      p.CustomerID,
		SalespersonID:   p.SalespersonID,
		ConfigurationID: p.ConfigurationID,
		ProposedPrice:   p.ProposedPrice,
		Status:          string(p.Status),
		CustomerNotes:   p.CustomerNotes,
		InternalNotes:   p.InternalNotes,
		CreatedAt:       p.CreatedAt,
		ExpiresAt:       p.ExpiresAt,
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}
