package request

import (
	"github.com/shopspring/decimal"

	"autoflow/internal/domain/entities"
)

type VehicleRequest struct {
	Make          string          `json:"make" binding:"required"`
	Model         string          `json:"model" binding:"required"`
	Year          int             `json:"year"`
	Plate         string          `json:"plate"`
	VIN           string          `json:"vin"`
	BasePrice     decimal.Decimal `json:"base_price"`
	Mileage       int             `json:"mileage"`
	Fuel          string          `json:"fuel"`
	Transmission  string          `json:"transmission"`
	Color         string          `json:"color"`
	Status        string          `json:"status"`
	PublicVisible bool            `json:"public_visible"`
}

func (r VehicleRequest) ToEntity() entities.Vehicle {
	return entities.Vehicle{
		Make:          r.Make,
		Model:         r.Model,
		Year:          r.Year,
		Plate:         r.Plate,
		VIN:           r.VIN,
		BasePrice:     r.BasePrice,
		Mileage:       r.Mileage,
		Fuel:          r.Fuel,
		Transmission:  r.Transmission,
		Color:         r.Color,
		Status:        entities.VehicleStatus(r.Status),
		PublicVisible: r.PublicVisible,
	}
}

type UpdateVehicleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
