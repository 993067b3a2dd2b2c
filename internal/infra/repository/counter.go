package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CounterRepository struct {
	db *pgxpool.Pool
}

func NewCounterRepository(db *pgxpool.Pool) *CounterRepository {
	return &CounterRepository{db: db}
}

// Next bumps the named sequence atomically. The upsert takes a row lock,
// so concurrent callers serialize here and no value is handed out twice.
// A rollback of tx returns the value to the sequence.
func (r *CounterRepository) Next(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	const query = `
		INSERT INTO counters (name, value)
		VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value`

	var value int64
	if err := tx.QueryRow(ctx, query, name).Scan(&value); err != nil {
		return 0, wrapPgErr("failed to advance counter", err)
	}
	return value, nil
}
