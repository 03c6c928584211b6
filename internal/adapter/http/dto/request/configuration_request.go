package request

import "github.com/shopspring/decimal"

type CreateConfigurationRequest struct {
	CustomerID  string   `json:"customer_id" binding:"required"`
	VehicleID   string   `json:"vehicle_id" binding:"required"`
	OptionalIDs []string `json:"optional_ids"`
	Notes       string   `json:"notes"`
}

type CreateOptionalRequest struct {
	Code        string          `json:"code" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}
