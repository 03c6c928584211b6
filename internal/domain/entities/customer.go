package entities

import "time"

// Role identifies the account kind behind a login.
type Role string

const (
	RoleCustomer    Role = "customer"
	RoleSalesperson Role = "salesperson"
	RoleAdmin       Role = "admin"
)

// Customer is a registered buyer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (username-index): username
//
// Contact fields are optional; the invoice renderer prints the literal
// string "null" for any missing one, which is observable output and must
// not be changed to blank.
type Customer struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Password  string     `json:"-"` // bcrypt hash
	Active    bool       `json:"active"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	FiscalID  string     `json:"fiscal_id"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Salesperson is a dealership operator allowed to manage proposals.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Only active salespeople may be attached to a proposal.
type Salesperson struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"-"`
	Active      bool      `json:"active"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	EmployeeRef string    `json:"employee_ref"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
