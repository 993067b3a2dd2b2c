//go:build unit

package booking_test

import (
	"testing"
	"time"

	"washdesk/internal/domain/booking"
	"washdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlot(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			start    time.Time
			duration int
			errIs    error
		}{
			{name: "valid slot", start: base, duration: 60},
			{name: "one minute is enough", start: base, duration: 1},
			{name: "zero start", start: time.Time{}, duration: 60, errIs: booking.ErrZeroStart},
			{name: "zero duration", start: base, duration: 0, errIs: booking.ErrInvalidDuration},
			{name: "negative duration", start: base, duration: -30, errIs: booking.ErrInvalidDuration},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				slot, err := booking.NewTimeSlot(tc.start, tc.duration)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tc.start, slot.Start())
				assert.Equal(t, tc.start.Add(time.Duration(tc.duration)*time.Minute), slot.End())
			})
		}
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		mustSlot := func(start time.Time, minutes int) booking.TimeSlot {
			slot, err := booking.NewTimeSlot(start, minutes)
			require.NoError(t, err)
			return slot
		}

		tenToEleven := mustSlot(base, 60)

		cases := []struct {
			name     string
			other    booking.TimeSlot
			overlaps bool
		}{
			{name: "identical window", other: mustSlot(base, 60), overlaps: true},
			{name: "starts inside", other: mustSlot(base.Add(30*time.Minute), 60), overlaps: true},
			{name: "ends inside", other: mustSlot(base.Add(-30*time.Minute), 60), overlaps: true},
			{name: "fully contains", other: mustSlot(base.Add(-30*time.Minute), 120), overlaps: true},
			{name: "fully contained", other: mustSlot(base.Add(15*time.Minute), 15), overlaps: true},
			{name: "back to back after", other: mustSlot(base.Add(60*time.Minute), 60), overlaps: false},
			{name: "back to back before", other: mustSlot(base.Add(-60*time.Minute), 60), overlaps: false},
			{name: "well clear", other: mustSlot(base.Add(3*time.Hour), 60), overlaps: false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.overlaps, tenToEleven.Overlaps(tc.other))
				assert.Equal(t, tc.overlaps, tc.other.Overlaps(tenToEleven), "overlap must be symmetric")
			})
		}
	})
}

func TestFindConflict(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	mustSlot := func(start time.Time, minutes int) booking.TimeSlot {
		slot, err := booking.NewTimeSlot(start, minutes)
		require.NoError(t, err)
		return slot
	}

	occupied := []booking.ScheduledSlot{
		{BookingID: uuid.New(), Slot: mustSlot(base, 60)},
		{BookingID: uuid.New(), Slot: mustSlot(base.Add(2*time.Hour), 60)},
	}

	t.Run("reports the blocking booking", func(t *testing.T) {
		hit := booking.FindConflict(mustSlot(base.Add(30*time.Minute), 60), occupied, nil)
		require.NotNil(t, hit)
		assert.Equal(t, occupied[0].BookingID, hit.BookingID)
	})

	t.Run("adjacent slot is free", func(t *testing.T) {
		assert.Nil(t, booking.FindConflict(mustSlot(base.Add(time.Hour), 60), occupied, nil))
	})

	t.Run("empty zone is free", func(t *testing.T) {
		assert.Nil(t, booking.FindConflict(mustSlot(base, 60), nil, nil))
	})

	t.Run("excluded booking does not block itself", func(t *testing.T) {
		self := occupied[0].BookingID
		assert.Nil(t, booking.FindConflict(mustSlot(base, 60), occupied, &self))
	})
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, int64(0), actual.Number())
	})

	t.Run("requires at least one product", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.ProductIDs = nil }).
			BuildDomain()
		assert.ErrorIs(t, err, booking.ErrNoProducts)
	})

	t.Run("number is assigned exactly once", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.AssignNumber(7))
		assert.Equal(t, int64(7), b.Number())
		assert.ErrorIs(t, b.AssignNumber(8), booking.ErrNumberAlreadySet)
		assert.Equal(t, int64(7), b.Number())
	})

	t.Run("status transitions", func(t *testing.T) {
		t.Run("pending can complete", func(t *testing.T) {
			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)
			require.NoError(t, b.Complete())
			assert.Equal(t, booking.StatusCompleted, b.Status())
		})

		t.Run("pending can cancel", func(t *testing.T) {
			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)
			require.NoError(t, b.Cancel())
			assert.Equal(t, booking.StatusCancelled, b.Status())
		})

		t.Run("completed is terminal", func(t *testing.T) {
			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)
			require.NoError(t, b.Complete())
			assert.Error(t, b.Complete())
			assert.Error(t, b.Cancel())
		})

		t.Run("cancelled is terminal", func(t *testing.T) {
			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)
			require.NoError(t, b.Cancel())
			assert.Error(t, b.Complete())
			assert.Error(t, b.Cancel())
		})
	})

	t.Run("only pending bookings reschedule", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		newSlot, err := booking.NewTimeSlot(time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC), 90)
		require.NoError(t, err)
		require.NoError(t, b.Reschedule(newSlot))
		assert.Equal(t, newSlot, b.Slot())

		require.NoError(t, b.Cancel())
		assert.ErrorIs(t, b.Reschedule(newSlot), booking.ErrBookingNotReschedule)
	})
}
