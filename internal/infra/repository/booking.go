package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/domain/booking"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, booking_number, customer_id, zone_id, product_ids,
			starts_at, duration_minutes, status, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		b.ID(),
		b.Number(),
		b.CustomerID(),
		b.ZoneID(),
		b.ProductIDs(),
		b.Slot().Start(),
		b.Slot().DurationMinutes(),
		b.Status().String(),
		b.CreatedBy(),
	)
	if err != nil {
		return wrapPgErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, tx pgx.Tx, b *booking.Booking) error {
	const query = `
		UPDATE bookings SET
			customer_id = $2,
			product_ids = $3,
			starts_at = $4,
			duration_minutes = $5,
			status = $6,
			updated_at = now()
		WHERE id = $1`

	_, err := tx.Exec(ctx, query,
		b.ID(),
		b.CustomerID(),
		b.ProductIDs(),
		b.Slot().Start(),
		b.Slot().DurationMinutes(),
		b.Status().String(),
	)
	if err != nil {
		return wrapPgErr("failed to update booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, booking_number, customer_id, zone_id, product_ids,
		       starts_at, duration_minutes, status, created_by, created_at, updated_at
		FROM bookings WHERE id = $1
		FOR UPDATE`

	row := tx.QueryRow(ctx, query, id)
	return scanBooking(row)
}

func (r *BookingRepository) ActiveSlotsByZone(ctx context.Context, tx pgx.Tx, zoneID uuid.UUID) ([]booking.ScheduledSlot, error) {
	const query = `
		SELECT id, starts_at, duration_minutes
		FROM bookings
		WHERE zone_id = $1 AND status <> 'Cancelled'`

	rows, err := tx.Query(ctx, query, zoneID)
	if err != nil {
		return nil, wrapPgErr("failed to load zone slots", err)
	}
	defer rows.Close()

	var slots []booking.ScheduledSlot
	for rows.Next() {
		var (
			id       uuid.UUID
			start    time.Time
			duration int
		)
		if err := rows.Scan(&id, &start, &duration); err != nil {
			return nil, wrapPgErr("failed to scan zone slot", err)
		}
		slot, err := booking.NewTimeSlot(start, duration)
		if err != nil {
			return nil, wrapPgErr("invalid stored slot", err)
		}
		slots = append(slots, booking.ScheduledSlot{BookingID: id, Slot: slot})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate zone slots", err)
	}
	return slots, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id         uuid.UUID
		number     int64
		customerID uuid.UUID
		zoneID     uuid.UUID
		productIDs []uuid.UUID
		startsAt   time.Time
		duration   int
		status     string
		createdBy  uuid.UUID
		createdAt  time.Time
		updatedAt  time.Time
	)
	err := row.Scan(
		&id, &number, &customerID, &zoneID, &productIDs,
		&startsAt, &duration, &status, &createdBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, wrapPgErr("failed to find booking", err)
	}

	slot, err := booking.NewTimeSlot(startsAt, duration)
	if err != nil {
		return nil, wrapPgErr("invalid stored slot", err)
	}
	st, err := booking.NewStatus(status)
	if err != nil {
		return nil, wrapPgErr("invalid stored status", err)
	}

	return booking.ReconstructBooking(
		id, number, customerID, zoneID, productIDs,
		slot, st, createdBy, createdAt, updatedAt,
	), nil
}
