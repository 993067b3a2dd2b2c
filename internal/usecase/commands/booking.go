package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/domain/booking"
	reqdto "washdesk/internal/handler/dto/request"
	"washdesk/internal/infra"
	"washdesk/internal/pkg/clock"
	"washdesk/internal/pkg/errs"
	"washdesk/internal/usecase/queries"
	"washdesk/internal/usecase/shared"
)

var (
	ErrZoneNotFound            = errs.New("zone not found")
	ErrZoneInactive            = errs.New("zone is not active")
	ErrCustomerNotFound        = errs.New("customer not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrInvalidTimeSlot         = errs.New("invalid time slot")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// SlotConflictError carries the window that blocks a requested slot so
// callers can show which booking is in the way.
type SlotConflictError struct {
	ZoneID    uuid.UUID
	BookingID uuid.UUID
	Window    string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("zone %s is already booked for %s", e.ZoneID, e.Window)
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, actorID uuid.UUID) (*queries.BookingView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) (*queries.BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo      BookingRepository
	zoneRepo         ZoneRepository
	counterRepo      CounterRepository
	notificationRepo NotificationRepository
	bookingQueries   queries.BookingQueries
	db               *pgxpool.Pool
	clock            clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	zoneRepo ZoneRepository,
	counterRepo CounterRepository,
	notificationRepo NotificationRepository,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:      bookingRepo,
		zoneRepo:         zoneRepo,
		counterRepo:      counterRepo,
		notificationRepo: notificationRepo,
		bookingQueries:   bookingQueries,
		db:               db,
		clock:            clock,
	}
}

func (c *bookingCommandsImpl) Create(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	actorID uuid.UUID,
) (*queries.BookingView, error) {
	slot, err := req.Slot()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	entity, err := booking.NewBooking(req.CustomerID, req.ZoneID, req.ProductIDs, slot, actorID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	bookingID, err := shared.WithDefaultRetry(ctx, c.db, func(tx pgx.Tx) (uuid.UUID, error) {
		// The zone row lock serializes all booking writers for this zone,
		// so the conflict check and the insert are a single atomic step.
		zoneSnap, err := c.zoneRepo.LockForBooking(ctx, tx, req.ZoneID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, ErrZoneNotFound
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !zoneSnap.IsActive {
			return uuid.Nil, ErrZoneInactive
		}

		occupied, err := c.bookingRepo.ActiveSlotsByZone(ctx, tx, req.ZoneID)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if blocking := booking.FindConflict(slot, occupied, nil); blocking != nil {
			return uuid.Nil, errs.Mark(&SlotConflictError{
				ZoneID:    req.ZoneID,
				BookingID: blocking.BookingID,
				Window:    blocking.Slot.String(),
			}, ErrBookingConflict)
		}

		number, err := c.counterRepo.Next(ctx, tx, CounterBookings)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := entity.AssignNumber(number); err != nil {
			return uuid.Nil, errs.Mark(err, ErrDomainValidation)
		}

		if err := c.bookingRepo.Create(ctx, tx, entity); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return uuid.Nil, ErrCustomerNotFound
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.enqueueConfirmation(ctx, tx, entity); err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return entity.ID(), nil
	})
	if err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByID(ctx, bookingID)
}

func (c *bookingCommandsImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	req reqdto.UpdateBookingRequest,
) (*queries.BookingView, error) {
	_, err := shared.WithDefaultRetry(ctx, c.db, func(tx pgx.Tx) (struct{}, error) {
		var none struct{}

		entity, err := c.bookingRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return none, ErrBookingNotFound
			}
			return none, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if req.ChangesSchedule() {
			if err := c.reschedule(ctx, tx, entity, req); err != nil {
				return none, err
			}
		}

		if req.CustomerID != nil {
			if err := entity.ChangeCustomer(*req.CustomerID); err != nil {
				return none, errs.Mark(err, ErrDomainValidation)
			}
		}
		if len(req.ProductIDs) > 0 {
			if err := entity.ChangeProducts(req.ProductIDs); err != nil {
				return none, errs.Mark(err, ErrDomainValidation)
			}
		}
		if req.Status != nil {
			if err := c.applyStatus(entity, *req.Status); err != nil {
				return none, err
			}
		}

		if err := c.bookingRepo.Update(ctx, tx, entity); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return none, ErrCustomerNotFound
			}
			return none, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return none, nil
	})
	if err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByID(ctx, id)
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	_, err := shared.WithDefaultRetry(ctx, c.db, func(tx pgx.Tx) (struct{}, error) {
		var none struct{}

		entity, err := c.bookingRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return none, ErrBookingNotFound
			}
			return none, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := entity.Cancel(); err != nil {
			return none, errs.Mark(err, ErrDomainValidation)
		}

		if err := c.bookingRepo.Update(ctx, tx, entity); err != nil {
			return none, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return none, nil
	})
	return err
}

// reschedule re-runs the conflict check, excluding the booking itself,
// under the same zone lock that guards creation.
func (c *bookingCommandsImpl) reschedule(
	ctx context.Context,
	tx pgx.Tx,
	entity *booking.Booking,
	req reqdto.UpdateBookingRequest,
) error {
	start := entity.Slot().Start()
	duration := entity.Slot().DurationMinutes()
	if req.StartsAt != nil {
		start = *req.StartsAt
	}
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	slot, err := booking.NewTimeSlot(start, duration)
	if err != nil {
		return errs.Mark(err, ErrInvalidTimeSlot)
	}

	if _, err := c.zoneRepo.LockForBooking(ctx, tx, entity.ZoneID()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrZoneNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	occupied, err := c.bookingRepo.ActiveSlotsByZone(ctx, tx, entity.ZoneID())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	selfID := entity.ID()
	if blocking := booking.FindConflict(slot, occupied, &selfID); blocking != nil {
		return errs.Mark(&SlotConflictError{
			ZoneID:    entity.ZoneID(),
			BookingID: blocking.BookingID,
			Window:    blocking.Slot.String(),
		}, ErrBookingConflict)
	}

	if err := entity.Reschedule(slot); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	return nil
}

func (c *bookingCommandsImpl) applyStatus(entity *booking.Booking, status string) error {
	target, err := booking.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if target == entity.Status() {
		return nil
	}

	switch target {
	case booking.StatusCompleted:
		err = entity.Complete()
	case booking.StatusCancelled:
		err = entity.Cancel()
	default:
		err = booking.ErrInvalidTransition
	}
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	return nil
}

func (c *bookingCommandsImpl) enqueueConfirmation(ctx context.Context, tx pgx.Tx, entity *booking.Booking) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id":     entity.ID(),
		"booking_number": entity.Number(),
		"customer_id":    entity.CustomerID(),
		"slot":           entity.Slot().String(),
	})
	if err != nil {
		return err
	}
	runAt := c.clock.Now().Add(1 * time.Minute)
	return c.notificationRepo.CreateJob(ctx, tx, "email", "booking_confirmed", payload, runAt)
}
