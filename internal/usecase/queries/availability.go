package queries

import (
	"context"

	"github.com/google/uuid"

	"washdesk/internal/domain/booking"
	"washdesk/internal/pkg/errs"
)

var ErrInvalidSlot = errs.New("invalid time slot")

// AvailabilityResult lists the active zones free for a candidate slot,
// in stored zone order. Zero active zones is an empty result, not an error.
type AvailabilityResult struct {
	Zones []*ZoneView `json:"zones"`
	Count int         `json:"count"`
}

type AvailabilityQueries interface {
	AvailableZones(ctx context.Context, slot booking.TimeSlot) (*AvailabilityResult, error)
}

type ZoneReadStore interface {
	FindAll(ctx context.Context) ([]*ZoneView, error)
	FindActive(ctx context.Context) ([]*ZoneView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ZoneView, error)
}

// BookingSlotReadStore exposes the occupied slots needed for conflict checks
// on the read side.
type BookingSlotReadStore interface {
	FindActiveSlotsByZone(ctx context.Context, zoneID uuid.UUID) ([]booking.ScheduledSlot, error)
}

type availabilityQueriesImpl struct {
	zones ZoneReadStore
	slots BookingSlotReadStore
}

func NewAvailabilityQueries(zones ZoneReadStore, slots BookingSlotReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		zones: zones,
		slots: slots,
	}
}

func (q *availabilityQueriesImpl) AvailableZones(ctx context.Context, slot booking.TimeSlot) (*AvailabilityResult, error) {
	if slot.IsZero() {
		return nil, ErrInvalidSlot
	}

	active, err := q.zones.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]*ZoneView, 0, len(active))
	for _, zone := range active {
		occupied, err := q.slots.FindActiveSlotsByZone(ctx, zone.ID)
		if err != nil {
			return nil, err
		}
		if booking.FindConflict(slot, occupied, nil) == nil {
			available = append(available, zone)
		}
	}

	return &AvailabilityResult{
		Zones: available,
		Count: len(available),
	}, nil
}
