//go:build unit || e2e

package builder

import (
	"time"

	"washdesk/internal/domain/catalog"
	dominvoice "washdesk/internal/domain/invoice"
	reqdto "washdesk/internal/handler/dto/request"
	"washdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceBuilder assembles a one-product catalog plus a matching charge
// list, so calculator and command tests start from a consistent fixture.
type InvoiceBuilder struct {
	BookingID          uuid.UUID
	CustomerID         uuid.UUID
	ProductID          uuid.UUID
	ProductName        string
	SellPrice          decimal.Decimal
	TaxID              uuid.UUID
	TaxName            string
	TaxPercentage      decimal.Decimal
	DiscountPercentage *decimal.Decimal
	PriceOverride      *decimal.Decimal
	CreatedBy          uuid.UUID
}

func NewInvoiceBuilder() *InvoiceBuilder {
	return &InvoiceBuilder{
		BookingID:     uuid.New(),
		CustomerID:    uuid.New(),
		ProductID:     uuid.New(),
		ProductName:   "Premium Wash",
		SellPrice:     decimal.RequireFromString("25.00"),
		TaxID:         uuid.New(),
		TaxName:       "VAT",
		TaxPercentage: decimal.RequireFromString("18"),
		CreatedBy:     uuid.New(),
	}
}

func (b *InvoiceBuilder) With(mutate func(*InvoiceBuilder)) *InvoiceBuilder {
	mutate(b)
	return b
}

func (b *InvoiceBuilder) WithDiscount(percentage string) *InvoiceBuilder {
	d := decimal.RequireFromString(percentage)
	b.DiscountPercentage = &d
	return b
}

func (b *InvoiceBuilder) WithOverride(price string) *InvoiceBuilder {
	p := decimal.RequireFromString(price)
	b.PriceOverride = &p
	return b
}

func (b *InvoiceBuilder) BuildProducts() map[uuid.UUID]*catalog.Product {
	product := catalog.ReconstructProduct(
		b.ProductID, b.ProductName, "WASH-01", uuid.New(),
		[]uuid.UUID{b.TaxID}, nil, b.SellPrice, time.Now(),
	)
	return map[uuid.UUID]*catalog.Product{b.ProductID: product}
}

func (b *InvoiceBuilder) BuildTaxes() map[uuid.UUID]*catalog.Tax {
	tax := catalog.ReconstructTax(b.TaxID, b.TaxName, b.TaxPercentage, time.Now())
	return map[uuid.UUID]*catalog.Tax{b.TaxID: tax}
}

func (b *InvoiceBuilder) BuildCharges() []dominvoice.ChargeRequest {
	return []dominvoice.ChargeRequest{
		{ProductID: b.ProductID, PriceOverride: b.PriceOverride},
	}
}

func (b *InvoiceBuilder) DiscountOrZero() decimal.Decimal {
	if b.DiscountPercentage != nil {
		return *b.DiscountPercentage
	}
	return decimal.Zero
}

func (b *InvoiceBuilder) BuildCreateRequestDTO() reqdto.CreateInvoiceRequest {
	return reqdto.CreateInvoiceRequest{
		BookingID: b.BookingID,
		Charges: []reqdto.InvoiceChargeRequest{
			{ProductID: b.ProductID, PriceOverride: b.PriceOverride},
		},
		DiscountPercentage: b.DiscountPercentage,
	}
}

// BuildBookingView is the booking the invoice bills, carrying the
// builder's product so the default charge list matches.
func (b *InvoiceBuilder) BuildBookingView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.BookingID,
		Number:          1,
		CustomerID:      b.CustomerID,
		ZoneID:          uuid.New(),
		ProductIDs:      []uuid.UUID{b.ProductID},
		StartsAt:        time.Now().Truncate(time.Hour),
		DurationMinutes: 60,
		Status:          "Pending",
		CreatedBy:       b.CreatedBy,
	}
}
