package request

import (
	"time"

	"github.com/google/uuid"

	"washdesk/internal/domain/booking"
)

type CreateBookingRequest struct {
	CustomerID      uuid.UUID   `json:"customer_id" binding:"required"`
	ZoneID          uuid.UUID   `json:"zone_id" binding:"required"`
	ProductIDs      []uuid.UUID `json:"product_ids" binding:"required,min=1"`
	StartsAt        time.Time   `json:"starts_at" binding:"required"`
	DurationMinutes *int        `json:"duration_minutes,omitempty" binding:"omitempty,gt=0"`
}

func (r CreateBookingRequest) Slot() (booking.TimeSlot, error) {
	duration := booking.DefaultDurationMinutes
	if r.DurationMinutes != nil {
		duration = *r.DurationMinutes
	}
	return booking.NewTimeSlot(r.StartsAt, duration)
}

type UpdateBookingRequest struct {
	CustomerID      *uuid.UUID  `json:"customer_id,omitempty"`
	ProductIDs      []uuid.UUID `json:"product_ids,omitempty"`
	StartsAt        *time.Time  `json:"starts_at,omitempty"`
	DurationMinutes *int        `json:"duration_minutes,omitempty" binding:"omitempty,gt=0"`
	Status          *string     `json:"status,omitempty" binding:"omitempty,oneof=Pending Completed Cancelled"`
}

// ChangesSchedule reports whether the update touches the booked time window
// and therefore needs a fresh conflict check.
func (r UpdateBookingRequest) ChangesSchedule() bool {
	return r.StartsAt != nil || r.DurationMinutes != nil
}

type AvailabilityRequest struct {
	StartsAt        time.Time `form:"starts_at" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	DurationMinutes *int      `form:"duration_minutes" binding:"omitempty,gt=0"`
}

func (r AvailabilityRequest) Slot() (booking.TimeSlot, error) {
	duration := booking.DefaultDurationMinutes
	if r.DurationMinutes != nil {
		duration = *r.DurationMinutes
	}
	return booking.NewTimeSlot(r.StartsAt, duration)
}
