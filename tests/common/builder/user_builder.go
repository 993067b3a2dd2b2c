//go:build unit || e2e

package builder

import (
	domuser "washdesk/internal/domain/user"
	reqdto "washdesk/internal/handler/dto/request"
	"washdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
	Name     string
	Role     string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "staff@example.com",
		Password: "password123",
		Name:     "Test Staff",
		Role:     string(domuser.RoleStaff),
		IsActive: true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithRole(role domuser.Role) *UserBuilder {
	b.Role = string(role)
	return b
}

func (b *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       b.ID,
		Email:    b.Email,
		Name:     b.Name,
		Role:     b.Role,
		IsActive: b.IsActive,
	}
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    b.Email,
		Password: b.Password,
		Name:     b.Name,
		Role:     b.Role,
	}
}
