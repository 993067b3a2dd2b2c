package readstore

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/infra"
	"washdesk/internal/usecase/queries"
)

type CustomerReadStore struct {
	db *pgxpool.Pool
}

func NewCustomerReadStore(db *pgxpool.Pool) *CustomerReadStore {
	return &CustomerReadStore{db: db}
}

func (s *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	const query = `
		SELECT id, name, email, phone, address, created_at
		FROM customers WHERE id = $1`

	var view queries.CustomerView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.Email, &view.Phone, &view.Address, &view.CreatedAt,
	)
	if err != nil {
		return nil, wrapReadErr("customer not found", err)
	}
	return &view, nil
}

// Search matches name, phone or email, case-insensitively.
func (s *CustomerReadStore) Search(ctx context.Context, search *string, limit, offset int32) ([]*queries.CustomerView, error) {
	builder := psql.
		Select("id", "name", "email", "phone", "address", "created_at").
		From("customers").
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"phone": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build customer search", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapReadErr("failed to search customers", err)
	}
	defer rows.Close()

	views := make([]*queries.CustomerView, 0)
	for rows.Next() {
		var view queries.CustomerView
		if err := rows.Scan(&view.ID, &view.Name, &view.Email, &view.Phone, &view.Address, &view.CreatedAt); err != nil {
			return nil, wrapReadErr("failed to scan customer", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate customers", err)
	}
	return views, nil
}
