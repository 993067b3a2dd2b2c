package queries

import (
	"context"

	"github.com/google/uuid"

	"washdesk/internal/infra"
	"washdesk/internal/pkg/errs"
)

var ErrInvoiceNotFound = errs.New("invoice not found")

// LatestPrefixView reports the most recently used invoice prefix and the
// next number the sequence will hand out.
type LatestPrefixView struct {
	Prefix     string `json:"prefix"`
	NextNumber int64  `json:"next_number"`
}

type InvoiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	List(ctx context.Context, customerID *uuid.UUID, page Page) ([]*InvoiceView, error)
	LatestPrefix(ctx context.Context) (*LatestPrefixView, error)
}

type InvoiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	FindFiltered(ctx context.Context, customerID *uuid.UUID, limit, offset int32) ([]*InvoiceView, error)
	LatestPrefix(ctx context.Context) (*LatestPrefixView, error)
}

type invoiceQueriesImpl struct {
	readStore InvoiceReadStore
}

func NewInvoiceQueries(readStore InvoiceReadStore) InvoiceQueries {
	return &invoiceQueriesImpl{readStore: readStore}
}

func (q *invoiceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *invoiceQueriesImpl) List(ctx context.Context, customerID *uuid.UUID, page Page) ([]*InvoiceView, error) {
	page = page.Normalized()
	return q.readStore.FindFiltered(ctx, customerID, page.Limit, page.Offset)
}

func (q *invoiceQueriesImpl) LatestPrefix(ctx context.Context) (*LatestPrefixView, error) {
	return q.readStore.LatestPrefix(ctx)
}
