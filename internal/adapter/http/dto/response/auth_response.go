package response

import "github.com/The0ne18/jobsbreeze-api/internal/domain/entities"

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromLogin(token string, u entities.User) LoginResponse {
	return LoginResponse{
		Token: token,
		User:  UserResponse{ID: u.ID, Email: u.Email, Name: u.Name},
	}
}
