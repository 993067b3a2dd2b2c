package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/domain/zone"
	"washdesk/internal/infra"
	"washdesk/internal/usecase/commands"
)

type ZoneRepository struct {
	db *pgxpool.Pool
}

func NewZoneRepository(db *pgxpool.Pool) *ZoneRepository {
	return &ZoneRepository{db: db}
}

func (r *ZoneRepository) Create(ctx context.Context, z *zone.Zone) error {
	const query = `
		INSERT INTO zones (id, name, is_active)
		VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, z.ID(), z.Name(), z.IsActive()); err != nil {
		return wrapPgErr("failed to create zone", err)
	}
	return nil
}

func (r *ZoneRepository) Update(ctx context.Context, z *zone.Zone) error {
	const query = `
		UPDATE zones SET name = $2, is_active = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, z.ID(), z.Name(), z.IsActive())
	if err != nil {
		return wrapPgErr("failed to update zone", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("zone not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ZoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM zones WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete zone", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("zone not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ZoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*zone.Zone, error) {
	const query = `
		SELECT id, name, is_active, created_at
		FROM zones WHERE id = $1`

	var (
		zoneID    uuid.UUID
		name      string
		isActive  bool
		createdAt time.Time
	)
	if err := r.db.QueryRow(ctx, query, id).Scan(&zoneID, &name, &isActive, &createdAt); err != nil {
		return nil, wrapPgErr("failed to find zone", err)
	}
	return zone.ReconstructZone(zoneID, name, isActive, createdAt), nil
}

// LockForBooking acquires the per-zone write lock. Every booking writer
// takes this lock first, so conflict checks behind it see a frozen zone.
func (r *ZoneRepository) LockForBooking(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*commands.ZoneSnapshot, error) {
	const query = `
		SELECT id, name, is_active
		FROM zones WHERE id = $1
		FOR UPDATE`

	var snap commands.ZoneSnapshot
	if err := tx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.IsActive); err != nil {
		return nil, wrapPgErr("failed to lock zone", err)
	}
	return &snap, nil
}
