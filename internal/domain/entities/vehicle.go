package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleStatus represents the sale lifecycle of a vehicle.
type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "available"
	VehicleStatusReserved  VehicleStatus = "reserved"
	VehicleStatusSold      VehicleStatus = "sold"
	VehicleStatusWithdrawn VehicleStatus = "withdrawn"
)

// Vehicle is a showroom vehicle.
//
// Storage model (DynamoDB):
//   - PK: id
//
// A vehicle can be proposed only while Status == available and
// PublicVisible is true.
type Vehicle struct {
	ID            string          `json:"id"`
	Make          string          `json:"make"`
	Model         string          `json:"model"`
	Year          int             `json:"year,omitempty"`
	Plate         string          `json:"plate,omitempty"`
	VIN           string          `json:"vin,omitempty"`
	BasePrice     decimal.Decimal `json:"base_price"`
	Mileage       int             `json:"mileage,omitempty"` // used vehicles
	Fuel          string          `json:"fuel,omitempty"`
	Transmission  string          `json:"transmission,omitempty"`
	Color         string          `json:"color,omitempty"`
	Status        VehicleStatus   `json:"status"`
	PublicVisible bool            `json:"public_visible"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Sellable reports whether the vehicle may appear in the showroom and be
// referenced by a new proposal.
func (v Vehicle) Sellable() bool {
	return v.Status == VehicleStatusAvailable && v.PublicVisible
}
