package response

import (
	"github.com/google/uuid"

	"washdesk/internal/usecase/queries"
)

type LoginResponse struct {
	UserID      uuid.UUID `json:"userId"`
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

func FromAuthorizedUserView(rm *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:       rm.ID,
		Email:    rm.Email,
		Name:     rm.Name,
		Role:     rm.Role,
		IsActive: rm.IsActive,
	}
}
