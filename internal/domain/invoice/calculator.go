package invoice

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"washdesk/internal/domain/catalog"
)

var (
	ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")
	ErrUnknownProduct  = errors.New("product not found")
	ErrUnknownTax      = errors.New("tax not found")
)

var hundred = decimal.NewFromInt(100)

// ChargeRequest is one service to bill. PriceOverride, when set, replaces
// the catalog sell price for this line.
type ChargeRequest struct {
	ProductID     uuid.UUID
	PriceOverride *decimal.Decimal
}

// Totals is the outcome of a calculation, ready to be placed on an Invoice.
type Totals struct {
	Items              []LineItem
	Subtotal           decimal.Decimal
	TaxTotal           decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	GrandTotal         decimal.Decimal
}

// Calculate prices a set of charges against the catalog.
//
// Tax rates on a product are summed over the unit price, not compounded.
// The discount applies to the tax-inclusive amount (subtotal + tax), so a
// 100% discount zeroes the whole bill including tax. An unknown product or
// tax id fails the calculation rather than pricing the line at zero.
func Calculate(
	charges []ChargeRequest,
	products map[uuid.UUID]*catalog.Product,
	taxes map[uuid.UUID]*catalog.Tax,
	discountPercentage decimal.Decimal,
) (Totals, error) {
	if len(charges) == 0 {
		return Totals{}, ErrNoLineItems
	}
	if discountPercentage.IsNegative() || discountPercentage.GreaterThan(hundred) {
		return Totals{}, ErrInvalidDiscount
	}

	items := make([]LineItem, 0, len(charges))
	subtotal := decimal.Zero
	taxTotal := decimal.Zero

	for _, charge := range charges {
		product, ok := products[charge.ProductID]
		if !ok {
			return Totals{}, fmt.Errorf("%w: %s", ErrUnknownProduct, charge.ProductID)
		}

		price := product.SellPrice()
		if charge.PriceOverride != nil {
			price = *charge.PriceOverride
		}

		itemTax := decimal.Zero
		for _, taxID := range product.TaxIDs() {
			tax, ok := taxes[taxID]
			if !ok {
				return Totals{}, fmt.Errorf("%w: %s", ErrUnknownTax, taxID)
			}
			itemTax = itemTax.Add(tax.AmountOn(price))
		}

		items = append(items, LineItem{
			ProductID:   product.ID(),
			ProductName: product.Name(),
			Price:       price,
			TaxAmount:   itemTax,
			Total:       price.Add(itemTax),
		})
		subtotal = subtotal.Add(price)
		taxTotal = taxTotal.Add(itemTax)
	}

	discountAmount := subtotal.Add(taxTotal).Mul(discountPercentage).Div(hundred)
	grandTotal := subtotal.Add(taxTotal).Sub(discountAmount)

	return Totals{
		Items:              items,
		Subtotal:           subtotal,
		TaxTotal:           taxTotal,
		DiscountPercentage: discountPercentage,
		DiscountAmount:     discountAmount,
		GrandTotal:         grandTotal,
	}, nil
}
