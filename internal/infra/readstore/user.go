package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/usecase/queries"
)

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, name, role, is_active
		FROM users WHERE id = $1`

	var view queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.Name, &view.Role, &view.IsActive,
	)
	if err != nil {
		return nil, wrapReadErr("user not found", err)
	}
	return &view, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, name, role, is_active, password_hash
		FROM users WHERE email = $1`

	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := s.db.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Email, &view.Name, &view.Role, &view.IsActive, &hash,
	)
	if err != nil {
		return nil, "", wrapReadErr("user not found", err)
	}
	return &view, hash, nil
}
