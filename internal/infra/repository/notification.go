package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateJob records an outgoing notification inside the caller's
// transaction. Delivery is a separate concern; a rolled-back booking
// never leaves a stray job behind.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx pgx.Tx, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
		VALUES ($1, $2, $3, $4, $5, 'queued')`

	if _, err := tx.Exec(ctx, query, uuid.New(), kind, topic, payload, runAt); err != nil {
		return wrapPgErr("failed to create notification job", err)
	}
	return nil
}
