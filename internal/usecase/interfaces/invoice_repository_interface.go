package interfaces

import (
	"context"
	"errors"
	"time"

	"autoflow/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ErrInvoiceConflict is returned by Create when an invoice row for the
// same proposal already exists.
var ErrInvoiceConflict = errors.New("invoice already exists")

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Create must fail with ErrInvoiceConflict when an invoice for the same
// proposal already exists (invoice PK = proposal id), so two concurrent
// issuance attempts yield exactly one row.
//
// NextSequence linearizes number allocation: it atomically increments the
// per-year counter row and returns the new value. Callers format it as
// AF-{year}-{seq:03d}. A racy read-max-then-increment must never be used.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByNumber(ctx context.Context, number string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Invoice, error)
	SetDocumentID(ctx context.Context, id, documentID string) (entities.Invoice, error)
	SetPaymentDate(ctx context.Context, id string, paid time.Time) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error

	NextSequence(ctx context.Context, year int) (int, error)

	Count(ctx context.Context) (int64, error)
	CountUnpaid(ctx context.Context) (int64, error)
	SumTotals(ctx context.Context) (decimal.Decimal, error)
	SumTotalsByYear(ctx context.Context, year int) (decimal.Decimal, error)
	SumTotalsByYearMonth(ctx context.Context, year int, month time.Month) (decimal.Decimal, error)
}

// IDocumentRepository abstracts DynamoDB persistence for GeneratedDocument.
type IDocumentRepository interface {
	Save(ctx context.Context, d entities.GeneratedDocument) (entities.GeneratedDocument, error)
	GetByID(ctx context.Context, id string) (entities.GeneratedDocument, error)
	Delete(ctx context.Context, id string) error
}
