package readstore

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/domain/booking"
	"washdesk/internal/infra"
	"washdesk/internal/usecase/queries"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingViewColumns = `
	b.id, b.booking_number, b.customer_id, c.name, b.zone_id, z.name,
	b.product_ids, b.starts_at, b.duration_minutes, b.status,
	b.created_by, b.created_at, b.updated_at`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN customers c ON c.id = b.customer_id
		JOIN zones z ON z.id = b.zone_id
		WHERE b.id = $1`

	view, err := scanBookingView(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *BookingReadStore) FindFiltered(ctx context.Context, filter queries.BookingFilter, limit, offset int32) ([]*queries.BookingView, error) {
	builder := psql.
		Select(
			"b.id", "b.booking_number", "b.customer_id", "c.name", "b.zone_id", "z.name",
			"b.product_ids", "b.starts_at", "b.duration_minutes", "b.status",
			"b.created_by", "b.created_at", "b.updated_at",
		).
		From("bookings b").
		Join("customers c ON c.id = b.customer_id").
		Join("zones z ON z.id = b.zone_id").
		OrderBy("b.starts_at DESC", "b.id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if filter.ZoneID != nil {
		builder = builder.Where(squirrel.Eq{"b.zone_id": *filter.ZoneID})
	}
	if filter.CustomerID != nil {
		builder = builder.Where(squirrel.Eq{"b.customer_id": *filter.CustomerID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"b.status": *filter.Status})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"b.starts_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"b.starts_at": *filter.To})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapReadErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate bookings", err)
	}
	return views, nil
}

// FindActiveSlotsByZone is the read-side twin of the write-side conflict
// query, used by availability checks outside any transaction.
func (s *BookingReadStore) FindActiveSlotsByZone(ctx context.Context, zoneID uuid.UUID) ([]booking.ScheduledSlot, error) {
	const query = `
		SELECT id, starts_at, duration_minutes
		FROM bookings
		WHERE zone_id = $1 AND status <> 'Cancelled'`

	rows, err := s.db.Query(ctx, query, zoneID)
	if err != nil {
		return nil, wrapReadErr("failed to load zone slots", err)
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
			return nil, wrapReadErr("failed to scan zone slot", err)
		}
		slot, err := booking.NewTimeSlot(start, duration)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored slot", err)
		}
		slots = append(slots, booking.ScheduledSlot{BookingID: id, Slot: slot})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate zone slots", err)
	}
	return slots, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID, &view.Number, &view.CustomerID, &view.CustomerName,
		&view.ZoneID, &view.ZoneName, &view.ProductIDs,
		&view.StartsAt, &view.DurationMinutes, &view.Status,
		&view.CreatedBy, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, wrapReadErr("booking not found", err)
	}
	view.EndsAt = view.StartsAt.Add(time.Duration(view.DurationMinutes) * time.Minute)
	return &view, nil
}
