package booking

import "github.com/google/uuid"

// ScheduledSlot is the projection of an active booking a conflict scan
// compares against.
type ScheduledSlot struct {
	BookingID uuid.UUID
	Slot      TimeSlot
}

// FindConflict returns the first scheduled slot overlapping candidate,
// or nil. exclude skips a booking being rescheduled against itself.
// Cancelled bookings must already be filtered out by the caller.
func FindConflict(candidate TimeSlot, existing []ScheduledSlot, exclude *uuid.UUID) *ScheduledSlot {
	for i := range existing {
		if exclude != nil && existing[i].BookingID == *exclude {
			continue
		}
		if candidate.Overlaps(existing[i].Slot) {
			return &existing[i]
		}
	}
	return nil
}
