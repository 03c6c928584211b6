package request

import (
	"strings"
	"time"
)

const birthDateLayout = "2006-01-02"

type RegisterCustomerRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	FiscalCode string `json:"fiscal_code"`
	BirthDate  string `json:"birth_date"` // YYYY-MM-DD
}

// ResolveBirthDate parses the optional YYYY-MM-DD birth date. An empty
// field resolves to nil, not an error.
func (r RegisterCustomerRequest) ResolveBirthDate() (*time.Time, error) {
	v := strings.TrimSpace(r.BirthDate)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(birthDateLayout, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type UpdateCustomerRequest struct {
	Active     *bool  `json:"active"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	FiscalCode string `json:"fiscal_code"`
	BirthDate  string `json:"birth_date"`
}

func (r UpdateCustomerRequest) ResolveBirthDate() (*time.Time, error) {
	v := strings.TrimSpace(r.BirthDate)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(birthDateLayout, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
