package response

import (
	"time"

	"autoflow/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type VehicleResponse struct {
	ID            string          `json:"id"`
	Make          string          `json:"make"`
	Model         string          `json:"model"`
	Year          int             `json:"year,omitempty"`
	Plate         string          `json:"plate,omitempty"`
	VIN           string          `json:"vin,omitempty"`
	BasePrice     decimal.Decimal `json:"base_price"`
	Mileage       int             `json:"mileage,omitempty"`
	Fuel          string          `json:"fuel,omitempty"`
	Transmission  string          `json:"transmission,omitempty"`
	Color         string          `json:"color,omitempty"`
	Status        string          `json:"status"`
	PublicVisible bool            `json:"public_visible"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:            v.ID,
		Make:          v.Make,
		Model:         v.Model,
		Year:          v.Year,
		Plate:         v.Plate,
		VIN:           v.VIN,
		BasePrice:     v.BasePrice,
		Mileage:       v.Mileage,
		Fuel:          v.Fuel,
		Transmission:  v.Transmission,
		Color:         v.Color,
		Status:        string(v.Status),
		PublicVisible: v.PublicVisible,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromVehicles(vs []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVehicle(v))
	}
	return out
}
