package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"washdesk/internal/domain/booking"
	"washdesk/internal/domain/catalog"
	"washdesk/internal/domain/customer"
	"washdesk/internal/domain/invoice"
	"washdesk/internal/domain/user"
	"washdesk/internal/domain/zone"
)

// Counter names handed to CounterRepository.Next.
const (
	CounterBookings = "bookings"
	CounterInvoices = "invoices"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ZoneSnapshot struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
}

type CustomerSnapshot struct {
	ID    uuid.UUID
	Name  string
	Phone string
}

type SettingsSnapshot struct {
	Currency           string
	ShowTaxBifurcation bool
}

type ZoneRepository interface {
	Create(ctx context.Context, z *zone.Zone) error
	Update(ctx context.Context, z *zone.Zone) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*zone.Zone, error)
	// LockForBooking takes the zone row lock that serializes booking
	// writers for that zone. Must run inside tx.
	LockForBooking(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*ZoneSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) error
	Update(ctx context.Context, tx pgx.Tx, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*booking.Booking, error)
	// ActiveSlotsByZone returns the occupied windows of non-cancelled
	// bookings in a zone, for conflict checks under the zone lock.
	ActiveSlotsByZone(ctx context.Context, tx pgx.Tx, zoneID uuid.UUID) ([]booking.ScheduledSlot, error)
}

type CounterRepository interface {
	// Next atomically increments the named sequence and returns the new
	// value. Rolling back tx rolls the increment back with it.
	Next(ctx context.Context, tx pgx.Tx, name string) (int64, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, tx pgx.Tx, inv *invoice.Invoice) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx pgx.Tx, kind, topic string, payload []byte, runAt time.Time) error
}

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}

type CatalogRepository interface {
	CreateCategory(ctx context.Context, c *catalog.Category) error
	CreateTax(ctx context.Context, t *catalog.Tax) error
	CreateProduct(ctx context.Context, p *catalog.Product) error
	UpdateProduct(ctx context.Context, p *catalog.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	FindProductByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Product, error)
	TaxesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Tax, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type SettingsRepository interface {
	Update(ctx context.Context, currency *string, showTaxBifurcation *bool) (*SettingsSnapshot, error)
}
