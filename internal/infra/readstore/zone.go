package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/usecase/queries"
)

type ZoneReadStore struct {
	db *pgxpool.Pool
}

func NewZoneReadStore(db *pgxpool.Pool) *ZoneReadStore {
	return &ZoneReadStore{db: db}
}

func (s *ZoneReadStore) FindAll(ctx context.Context) ([]*queries.ZoneView, error) {
	const query = `
		SELECT id, name, is_active, created_at
		FROM zones ORDER BY created_at, id`

	return s.queryZones(ctx, query)
}

// FindActive preserves stored zone order so availability results are stable.
func (s *ZoneReadStore) FindActive(ctx context.Context) ([]*queries.ZoneView, error) {
	const query = `
		SELECT id, name, is_active, created_at
		FROM zones WHERE is_active ORDER BY created_at, id`

	return s.queryZones(ctx, query)
}

func (s *ZoneReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ZoneView, error) {
	const query = `
		SELECT id, name, is_active, created_at
		FROM zones WHERE id = $1`

	var view queries.ZoneView
	err := s.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Name, &view.IsActive, &view.CreatedAt)
	if err != nil {
		return nil, wrapReadErr("zone not found", err)
	}
	return &view, nil
}

func (s *ZoneReadStore) queryZones(ctx context.Context, query string, args ...any) ([]*queries.ZoneView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapReadErr("failed to list zones", err)
	}
	defer rows.Close()

	return scanZones(rows)
}

func scanZones(rows pgx.Rows) ([]*queries.ZoneView, error) {
	views := make([]*queries.ZoneView, 0)
	for rows.Next() {
		var view queries.ZoneView
		if err := rows.Scan(&view.ID, &view.Name, &view.IsActive, &view.CreatedAt); err != nil {
			return nil, wrapReadErr("failed to scan zone", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate zones", err)
	}
	return views, nil
}
