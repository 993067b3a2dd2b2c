//go:build unit || e2e

package builder

import (
	"time"

	dombooking "washdesk/internal/domain/booking"
	reqdto "washdesk/internal/handler/dto/request"
	"washdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CustomerID      uuid.UUID
	CustomerName    string
	ZoneID          uuid.UUID
	ZoneName        string
	ProductIDs      []uuid.UUID
	StartsAt        time.Time
	DurationMinutes int
	CreatedBy       uuid.UUID
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		CustomerID:      uuid.New(),
		CustomerName:    "Test Customer",
		ZoneID:          uuid.New(),
		ZoneName:        "Bay 1",
		ProductIDs:      []uuid.UUID{uuid.New()},
		StartsAt:        time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		CreatedBy:       uuid.New(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildSlot() (dombooking.TimeSlot, error) {
	return dombooking.NewTimeSlot(b.StartsAt, b.DurationMinutes)
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	slot, err := b.BuildSlot()
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.CustomerID, b.ZoneID, b.ProductIDs, slot, b.CreatedBy)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	duration := b.DurationMinutes
	return reqdto.CreateBookingRequest{
		CustomerID:      b.CustomerID,
		ZoneID:          b.ZoneID,
		ProductIDs:      b.ProductIDs,
		StartsAt:        b.StartsAt,
		DurationMinutes: &duration,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:              uuid.New(),
		Number:          1,
		CustomerID:      b.CustomerID,
		CustomerName:    b.CustomerName,
		ZoneID:          b.ZoneID,
		ZoneName:        b.ZoneName,
		ProductIDs:      b.ProductIDs,
		StartsAt:        b.StartsAt,
		DurationMinutes: int32(b.DurationMinutes),
		EndsAt:          b.StartsAt.Add(time.Duration(b.DurationMinutes) * time.Minute),
		Status:          string(dombooking.StatusPending),
		CreatedBy:       b.CreatedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
