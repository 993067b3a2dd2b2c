package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoLineItems      = errors.New("invoice must contain at least one line item")
	ErrNumberAlreadySet = errors.New("invoice number is already assigned")
)

// LineItem is one billed service on an invoice. Price is the unit price
// actually charged (a manager override may differ from the catalog price),
// TaxAmount is the summed tax for this line.
type LineItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Total       decimal.Decimal `json:"total"`
}

// Invoice is an immutable billing record. Amounts are computed once by the
// Calculator and never recomputed from the items afterwards.
type Invoice struct {
	id                 uuid.UUID
	number             int64
	prefix             string
	bookingID          *uuid.UUID
	customerID         uuid.UUID
	items              []LineItem
	subtotal           decimal.Decimal
	taxTotal           decimal.Decimal
	discountPercentage decimal.Decimal
	discountAmount     decimal.Decimal
	grandTotal         decimal.Decimal
	createdBy          uuid.UUID
	createdAt          time.Time
}

func NewInvoice(
	prefix string,
	bookingID *uuid.UUID,
	customerID uuid.UUID,
	totals Totals,
	createdBy uuid.UUID,
) (*Invoice, error) {
	if len(totals.Items) == 0 {
		return nil, ErrNoLineItems
	}
	return &Invoice{
		id:                 uuid.New(),
		prefix:             prefix,
		bookingID:          bookingID,
		customerID:         customerID,
		items:              totals.Items,
		subtotal:           totals.Subtotal,
		taxTotal:           totals.TaxTotal,
		discountPercentage: totals.DiscountPercentage,
		discountAmount:     totals.DiscountAmount,
		grandTotal:         totals.GrandTotal,
		createdBy:          createdBy,
	}, nil
}

func ReconstructInvoice(
	id uuid.UUID,
	number int64,
	prefix string,
	bookingID *uuid.UUID,
	customerID uuid.UUID,
	items []LineItem,
	subtotal, taxTotal, discountPercentage, discountAmount, grandTotal decimal.Decimal,
	createdBy uuid.UUID,
	createdAt time.Time,
) *Invoice {
	return &Invoice{
		id:                 id,
		number:             number,
		prefix:             prefix,
		bookingID:          bookingID,
		customerID:         customerID,
		items:              items,
		subtotal:           subtotal,
		taxTotal:           taxTotal,
		discountPercentage: discountPercentage,
		discountAmount:     discountAmount,
		grandTotal:         grandTotal,
		createdBy:          createdBy,
		createdAt:          createdAt,
	}
}

// AssignNumber sets the sequential invoice number exactly once.
func (i *Invoice) AssignNumber(n int64) error {
	if i.number != 0 {
		return ErrNumberAlreadySet
	}
	i.number = n
	return nil
}

func (i *Invoice) ID() uuid.UUID                       { return i.id }
func (i *Invoice) Number() int64                       { return i.number }
func (i *Invoice) Prefix() string                      { return i.prefix }
func (i *Invoice) BookingID() *uuid.UUID               { return i.bookingID }
func (i *Invoice) CustomerID() uuid.UUID               { return i.customerID }
func (i *Invoice) Items() []LineItem                   { return i.items }
func (i *Invoice) Subtotal() decimal.Decimal           { return i.subtotal }
func (i *Invoice) TaxTotal() decimal.Decimal           { return i.taxTotal }
func (i *Invoice) DiscountPercentage() decimal.Decimal { return i.discountPercentage }
func (i *Invoice) DiscountAmount() decimal.Decimal     { return i.discountAmount }
func (i *Invoice) GrandTotal() decimal.Decimal         { return i.grandTotal }
func (i *Invoice) CreatedBy() uuid.UUID                { return i.createdBy }
func (i *Invoice) CreatedAt() time.Time                { return i.createdAt }
