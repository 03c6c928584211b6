package response

import "autoflow/internal/usecase/interfaces"

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func FromSession(s interfaces.Session) LoginResponse {
	return LoginResponse{
		Token:    s.Token,
		UserID:   s.UserID,
		Username: s.Username,
		Role:     s.Role,
	}
}
