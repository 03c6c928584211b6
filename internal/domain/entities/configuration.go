package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OptionalAccessory is a catalog item attachable to a configuration.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Code is unique within the catalog.
type OptionalAccessory struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// Configuration is a priced vehicle configuration: a base vehicle plus the
// selected optional accessories, owned by one customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// BasePrice and TotalPrice are snapshotted at creation time; the
// configuration is never mutated once an issued invoice references it.
type Configuration struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	VehicleID  string              `json:"vehicle_id"`
	Optionals  []OptionalAccessory `json:"optionals"`
	BasePrice  decimal.Decimal     `json:"base_price"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	Notes      string              `json:"notes,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// ComputeTotal returns base price plus the sum of all optional prices.
// The stored TotalPrice must always equal this value.
func (c Configuration) ComputeTotal() decimal.Decimal {
	total := c.BasePrice
	for _, opt := range c.Optionals {
		total = total.Add(opt.Price)
	}
	return total
}
