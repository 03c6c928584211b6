package response

import (
	"time"

	"autoflow/internal/domain/entities"
)

type CustomerResponse struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	Active     bool       `json:"active"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Address    string     `json:"address"`
	FiscalCode string     `json:"fiscal_code"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID,
		Username:   c.Username,
		Active:     c.Active,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		FiscalCode: c.FiscalID,
		BirthDate:  c.BirthDate,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func FromCustomers(cs []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCustomer(c))
	}
	return out
}

type SalespersonResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Active      bool      `json:"active"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	EmployeeRef string    `json:"employee_ref"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromSalesperson(s entities.Salesperson) SalespersonResponse {
	return SalespersonResponse{
		ID:          s.ID,
		Username:    s.Username,
		Active:      s.Active,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		EmployeeRef: s.EmployeeRef,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromSalespeople(ss []entities.Salesperson) []SalespersonResponse {
	out := make([]SalespersonResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSalesperson(s))
	}
	return out
}
