package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is issued exactly once per accepted proposal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (number-index): number
//   - GSI2 (customer_id-index): customer_id
//
// We purposely use the proposal id as PK (invoice ID) to guarantee the
// one-to-one proposal/invoice relationship: a conditional PutItem on the
// key is the uniqueness constraint, and the loser of a concurrent
// issuance race observes a conflict instead of creating a duplicate.
//
// Number format: AF-{year}-{seq:03d}, sequence scoped per calendar year.
// DocumentID is set only after the PDF was rendered and stored; an
// invoice with an empty DocumentID is incomplete and safe to re-render,
// never to re-number.
type Invoice struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	IssueDate   time.Time       `json:"issue_date"`
	CustomerID  string          `json:"customer_id"`
	ProposalID  string          `json:"proposal_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	DocumentID  string          `json:"document_id,omitempty"`
}

// Paid reports whether a payment was registered for the invoice.
func (i Invoice) Paid() bool {
	return i.PaymentDate != nil && !i.PaymentDate.IsZero()
}
