package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceChargeRequest struct {
	ProductID     uuid.UUID        `json:"product_id" binding:"required"`
	PriceOverride *decimal.Decimal `json:"price_override,omitempty"`
}

// CreateInvoiceRequest bills a booking. Charges default to the booking's
// products when omitted; sending a different set substitutes services.
type CreateInvoiceRequest struct {
	BookingID          uuid.UUID              `json:"booking_id" binding:"required"`
	Prefix             string                 `json:"prefix,omitempty"`
	Charges            []InvoiceChargeRequest `json:"charges,omitempty" binding:"omitempty,dive"`
	DiscountPercentage *decimal.Decimal       `json:"discount_percentage,omitempty"`
}

// HasOverride reports whether any charge replaces the catalog price.
func (r CreateInvoiceRequest) HasOverride() bool {
	for _, c := range r.Charges {
		if c.PriceOverride != nil {
			return true
		}
	}
	return false
}

// HasDiscount reports whether a non-zero discount is requested.
func (r CreateInvoiceRequest) HasDiscount() bool {
	return r.DiscountPercentage != nil && !r.DiscountPercentage.IsZero()
}
