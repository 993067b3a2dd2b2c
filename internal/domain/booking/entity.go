package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrNoProducts           = errors.New("booking requires at least one product")
	ErrNumberAlreadySet     = errors.New("booking number already assigned")
	ErrBookingTerminal      = errors.New("booking is in a terminal state")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrBookingNotReschedule = errors.New("only pending bookings can be rescheduled")
)

type Booking struct {
	id         uuid.UUID
	number     int64
	customerID uuid.UUID
	zoneID     uuid.UUID
	productIDs []uuid.UUID
	slot       TimeSlot
	status     Status
	createdBy  uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(
	customerID, zoneID uuid.UUID,
	productIDs []uuid.UUID,
	slot TimeSlot,
	createdBy uuid.UUID,
) (*Booking, error) {
	if len(productIDs) == 0 {
		return nil, ErrNoProducts
	}
	if slot.IsZero() {
		return nil, ErrZeroStart
	}

	return &Booking{
		id:         uuid.New(),
		customerID: customerID,
		zoneID:     zoneID,
		productIDs: productIDs,
		slot:       slot,
		status:     StatusPending,
		createdBy:  createdBy,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	number int64,
	customerID, zoneID uuid.UUID,
	productIDs []uuid.UUID,
	slot TimeSlot,
	status Status,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		number:     number,
		customerID: customerID,
		zoneID:     zoneID,
		productIDs: productIDs,
		slot:       slot,
		status:     status,
		createdBy:  createdBy,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// AssignNumber sets the sequential booking number exactly once.
func (b *Booking) AssignNumber(n int64) error {
	if b.number != 0 {
		return ErrNumberAlreadySet
	}
	b.number = n
	return nil
}

func (b *Booking) Reschedule(slot TimeSlot) error {
	if b.status != StatusPending {
		return ErrBookingNotReschedule
	}
	b.slot = slot
	return nil
}

func (b *Booking) ChangeCustomer(customerID uuid.UUID) error {
	if b.status.IsTerminal() {
		return ErrBookingTerminal
	}
	b.customerID = customerID
	return nil
}

func (b *Booking) ChangeProducts(productIDs []uuid.UUID) error {
	if len(productIDs) == 0 {
		return ErrNoProducts
	}
	if b.status == StatusCancelled {
		return ErrBookingTerminal
	}
	b.productIDs = productIDs
	return nil
}

func (b *Booking) Complete() error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusCompleted
	return nil
}

// Cancel is the terminal soft delete; the slot is freed but the record
// and its number are kept.
func (b *Booking) Cancel() error {
	if b.status.IsTerminal() {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status != StatusCancelled
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) Number() int64           { return b.number }
func (b *Booking) CustomerID() uuid.UUID   { return b.customerID }
func (b *Booking) ZoneID() uuid.UUID       { return b.zoneID }
func (b *Booking) ProductIDs() []uuid.UUID { return b.productIDs }
func (b *Booking) Slot() TimeSlot          { return b.slot }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedBy() uuid.UUID    { return b.createdBy }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
