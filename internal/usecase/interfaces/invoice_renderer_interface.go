package interfaces

import (
	"autoflow/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IInvoiceRenderer produces the invoice PDF.
//
// It returns the document bytes together with a total computed
// independently from the rendered line items, so the caller can detect
// drift against the invoice's persisted TotalAmount. Proposal,
// customer, configuration and vehicle are optional: missing data
// degrades to the documented fallback rows, it never fails the render.
type IInvoiceRenderer interface {
	Render(inv entities.Invoice, proposal *entities.Proposal, customer *entities.Customer, cfg *entities.Configuration, vehicle *entities.Vehicle) ([]byte, decimal.Decimal, error)
}
