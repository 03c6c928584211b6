package response

import (
	"time"

	"autoflow/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type InvoiceResponse struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	IssueDate   time.Time       `json:"issue_date"`
	CustomerID  string          `json:"customer_id"`
	ProposalID  string          `json:"proposal_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	DocumentID  string          `json:"document_id,omitempty"`
	Paid        bool            `json:"paid"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		IssueDate:   inv.IssueDate,
		CustomerID:  inv.CustomerID,
		ProposalID:  inv.ProposalID,
		TotalAmount: inv.TotalAmount,
		PaymentDate: inv.PaymentDate,
		DocumentID:  inv.DocumentID,
		Paid:        inv.Paid(),
	}
}

func FromInvoices(invs []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, FromInvoice(inv))
	}
	return out
}
