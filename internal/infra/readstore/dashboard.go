package readstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/usecase/queries"
)

type DashboardReadStore struct {
	db *pgxpool.Pool
}

func NewDashboardReadStore(db *pgxpool.Pool) *DashboardReadStore {
	return &DashboardReadStore{db: db}
}

// CollectStats runs the counters in one round trip.
func (s *DashboardReadStore) CollectStats(ctx context.Context) (*queries.DashboardStatsView, error) {
	const query = `
		SELECT
			(SELECT count(*) FROM customers),
			(SELECT count(*) FROM zones),
			(SELECT count(*) FROM zones WHERE is_active),
			(SELECT count(*) FROM bookings),
			(SELECT count(*) FROM bookings WHERE status = 'Pending'),
			(SELECT count(*) FROM bookings WHERE status = 'Completed'),
			(SELECT count(*) FROM bookings WHERE status = 'Cancelled'),
			(SELECT count(*) FROM invoices)`

	var view queries.DashboardStatsView
	err := s.db.QueryRow(ctx, query).Scan(
		&view.Customers,
		&view.Zones,
		&view.ActiveZones,
		&view.Bookings,
		&view.PendingBookings,
		&view.CompletedBookings,
		&view.CancelledBookings,
		&view.Invoices,
	)
	if err != nil {
		return nil, wrapReadErr("failed to collect dashboard stats", err)
	}
	return &view, nil
}
