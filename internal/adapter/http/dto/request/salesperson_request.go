package request

type RegisterSalespersonRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	EmployeeRef string `json:"employee_ref"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
