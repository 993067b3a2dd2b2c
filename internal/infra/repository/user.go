package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/domain/user"
	"washdesk/internal/infra"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Name(),
		u.Role().String(),
		u.IsActive(),
	)
	if err != nil {
		return wrapPgErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE users SET last_login = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return wrapPgErr("failed to update user last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
