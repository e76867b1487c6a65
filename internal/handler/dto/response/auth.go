package response

import (
	"bookswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user,omitempty"`
}

type RegisterResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	AccessToken string    `json:"access_token"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	IsActive bool      `json:"is_active"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:       v.ID,
		Email:    v.Email,
		Username: v.Username,
		IsActive: v.IsActive,
	}
}
