package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"washdesk/internal/infra"
	"washdesk/internal/pkg/errs"
)

var ErrBookingNotFound = errs.New("booking not found")

// BookingFilter narrows the booking list. Nil fields are not applied.
type BookingFilter struct {
	ZoneID     *uuid.UUID
	CustomerID *uuid.UUID
	Status     *string
	From       *time.Time
	To         *time.Time
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, page Page) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindFiltered(ctx context.Context, filter BookingFilter, limit, offset int32) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, page Page) ([]*BookingView, error) {
	page = page.Normalized()
	return q.readStore.FindFiltered(ctx, filter, page.Limit, page.Offset)
}
