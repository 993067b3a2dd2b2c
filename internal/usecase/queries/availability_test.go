//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"washdesk/internal/domain/booking"
	"washdesk/internal/usecase/queries"
	queriesmock "washdesk/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mustSlot(t *testing.T, start time.Time, minutes int) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, minutes)
	require.NoError(t, err)
	return slot
}

func TestAvailableZones(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	newFixture := func(t *testing.T) (*queriesmock.MockZoneReadStore, *queriesmock.MockBookingSlotReadStore, queries.AvailabilityQueries) {
		ctrl := gomock.NewController(t)
		zones := queriesmock.NewMockZoneReadStore(ctrl)
		slots := queriesmock.NewMockBookingSlotReadStore(ctrl)
		return zones, slots, queries.NewAvailabilityQueries(zones, slots)
	}

	t.Run("zero active zones is an empty result, not an error", func(t *testing.T) {
		zones, _, q := newFixture(t)
		zones.EXPECT().FindActive(gomock.Any()).Return(nil, nil)

		result, err := q.AvailableZones(context.Background(), mustSlot(t, base, 60))
		require.NoError(t, err)
		assert.Empty(t, result.Zones)
		assert.Zero(t, result.Count)
	})

	t.Run("occupied zones are filtered out", func(t *testing.T) {
		zones, slots, q := newFixture(t)

		freeZone := &queries.ZoneView{ID: uuid.New(), Name: "Bay 1", IsActive: true}
		busyZone := &queries.ZoneView{ID: uuid.New(), Name: "Bay 2", IsActive: true}

		zones.EXPECT().FindActive(gomock.Any()).Return([]*queries.ZoneView{freeZone, busyZone}, nil)
		slots.EXPECT().FindActiveSlotsByZone(gomock.Any(), freeZone.ID).Return(nil, nil)
		slots.EXPECT().FindActiveSlotsByZone(gomock.Any(), busyZone.ID).Return([]booking.ScheduledSlot{
			{BookingID: uuid.New(), Slot: mustSlot(t, base.Add(30*time.Minute), 60)},
		}, nil)

		result, err := q.AvailableZones(context.Background(), mustSlot(t, base, 60))
		require.NoError(t, err)

		require.Len(t, result.Zones, 1)
		assert.Equal(t, freeZone.ID, result.Zones[0].ID)
		assert.Equal(t, 1, result.Count)
	})

	t.Run("a booking ending at the slot start does not block", func(t *testing.T) {
		zones, slots, q := newFixture(t)

		zone := &queries.ZoneView{ID: uuid.New(), Name: "Bay 1", IsActive: true}
		zones.EXPECT().FindActive(gomock.Any()).Return([]*queries.ZoneView{zone}, nil)
		slots.EXPECT().FindActiveSlotsByZone(gomock.Any(), zone.ID).Return([]booking.ScheduledSlot{
			{BookingID: uuid.New(), Slot: mustSlot(t, base.Add(-time.Hour), 60)},
		}, nil)

		result, err := q.AvailableZones(context.Background(), mustSlot(t, base, 60))
		require.NoError(t, err)
		assert.Equal(t, 1, result.Count)
	})

	t.Run("zero slot is rejected", func(t *testing.T) {
		_, _, q := newFixture(t)

		_, err := q.AvailableZones(context.Background(), booking.TimeSlot{})
		assert.ErrorIs(t, err, queries.ErrInvalidSlot)
	})
}
