package response

import (
	"time"

	"autoflow/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type OptionalResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

func FromOptional(o entities.OptionalAccessory) OptionalResponse {
	return OptionalResponse{
		ID:          o.ID,
		Code:        o.Code,
		Name:        o.Name,
		Description: o.Description,
		Price:       o.Price,
	}
}

func FromOptionals(os []entities.OptionalAccessory) []OptionalResponse {
	out := make([]OptionalResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromOptional(o))
	}
	return out
}

type ConfigurationResponse struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	VehicleID  string             `json:"vehicle_id"`
	Optionals  []OptionalResponse `json:"optionals"`
	BasePrice  decimal.Decimal    `json:"base_price"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	Notes      string             `json:"notes,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func FromConfiguration(c entities.Configuration) ConfigurationResponse {
	return ConfigurationResponse{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		VehicleID:  c.VehicleID,
		Optionals:  FromOptionals(c.Optionals),
		BasePrice:  c.BasePrice,
		TotalPrice: c.TotalPrice,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func FromConfigurations(cs []entities.Configuration) []ConfigurationResponse {
	out := make([]ConfigurationResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromConfiguration(c))
	}
	return out
}
