package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	ErrZeroStart       = errors.New("start time is required")
)

const DefaultDurationMinutes = 60

// TimeSlot is the half-open interval [start, start+duration).
type TimeSlot struct {
	start           time.Time
	durationMinutes int
}

func NewTimeSlot(start time.Time, durationMinutes int) (TimeSlot, error) {
	if start.IsZero() {
		return TimeSlot{}, ErrZeroStart
	}
	if durationMinutes <= 0 {
		return TimeSlot{}, ErrInvalidDuration
	}
	return TimeSlot{start: start, durationMinutes: durationMinutes}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.start.Add(time.Duration(ts.durationMinutes) * time.Minute)
}

func (ts TimeSlot) DurationMinutes() int {
	return ts.durationMinutes
}

func (ts TimeSlot) IsZero() bool {
	return ts.start.IsZero()
}

// Overlaps is strict on both ends: a slot ending at 11:00 does not
// conflict with one starting at 11:00.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.End()) && other.start.Before(ts.End())
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("%s - %s", ts.start.Format("2006-01-02 15:04"), ts.End().Format("15:04"))
}
