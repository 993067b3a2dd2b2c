//go:build unit

package invoice_test

import (
	"testing"

	"washdesk/internal/domain/catalog"
	"washdesk/internal/domain/invoice"
	"washdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate(t *testing.T) {
	t.Run("single item with tax and discount", func(t *testing.T) {
		// 25.00 + 18% tax = 29.50; 10% off the tax-inclusive amount = 2.95
		b := builder.NewInvoiceBuilder().WithDiscount("10")

		totals, err := invoice.Calculate(b.BuildCharges(), b.BuildProducts(), b.BuildTaxes(), b.DiscountOrZero())
		require.NoError(t, err)

		assert.True(t, dec("25.00").Equal(totals.Subtotal), "subtotal: %s", totals.Subtotal)
		assert.True(t, dec("4.50").Equal(totals.TaxTotal), "tax: %s", totals.TaxTotal)
		assert.True(t, dec("2.95").Equal(totals.DiscountAmount), "discount: %s", totals.DiscountAmount)
		assert.True(t, dec("26.55").Equal(totals.GrandTotal), "grand total: %s", totals.GrandTotal)

		require.Len(t, totals.Items, 1)
		assert.True(t, dec("29.50").Equal(totals.Items[0].Total))
	})

	t.Run("no discount leaves grand total at subtotal plus tax", func(t *testing.T) {
		b := builder.NewInvoiceBuilder()

		totals, err := invoice.Calculate(b.BuildCharges(), b.BuildProducts(), b.BuildTaxes(), decimal.Zero)
		require.NoError(t, err)

		assert.True(t, totals.DiscountAmount.IsZero())
		assert.True(t, dec("29.50").Equal(totals.GrandTotal))
	})

	t.Run("full discount zeroes the bill including tax", func(t *testing.T) {
		b := builder.NewInvoiceBuilder().WithDiscount("100")

		totals, err := invoice.Calculate(b.BuildCharges(), b.BuildProducts(), b.BuildTaxes(), b.DiscountOrZero())
		require.NoError(t, err)

		assert.True(t, totals.GrandTotal.IsZero(), "grand total: %s", totals.GrandTotal)
		assert.True(t, dec("4.50").Equal(totals.TaxTotal), "tax itself is still reported")
	})

	t.Run("price override replaces the catalog price and re-bases tax", func(t *testing.T) {
		b := builder.NewInvoiceBuilder().WithOverride("20.00")

		totals, err := invoice.Calculate(b.BuildCharges(), b.BuildProducts(), b.BuildTaxes(), decimal.Zero)
		require.NoError(t, err)

		assert.True(t, dec("20.00").Equal(totals.Subtotal))
		assert.True(t, dec("3.60").Equal(totals.TaxTotal))
		assert.True(t, dec("23.60").Equal(totals.GrandTotal))
	})

	t.Run("multiple tax rates sum, not compound", func(t *testing.T) {
		b := builder.NewInvoiceBuilder()
		products := b.BuildProducts()
		taxes := b.BuildTaxes()

		secondTaxID := uuid.New()
		taxes[secondTaxID] = catalog.ReconstructTax(secondTaxID, "Cess", dec("2"), products[b.ProductID].CreatedAt())
		products[b.ProductID] = catalog.ReconstructProduct(
			b.ProductID, b.ProductName, "WASH-01", uuid.New(),
			[]uuid.UUID{b.TaxID, secondTaxID}, nil, b.SellPrice, products[b.ProductID].CreatedAt(),
		)

		totals, err := invoice.Calculate(b.BuildCharges(), products, taxes, decimal.Zero)
		require.NoError(t, err)

		// 18% + 2% of 25.00, each on the base price
		assert.True(t, dec("5.00").Equal(totals.TaxTotal), "tax: %s", totals.TaxTotal)
	})

	t.Run("discount bounds", func(t *testing.T) {
		b := builder.NewInvoiceBuilder()

		_, err := invoice.Calculate(b.BuildCharges(), b.BuildProducts(), b.BuildTaxes(), dec("-1"))
		assert.ErrorIs(t, err, invoice.ErrInvalidDiscount)

		_, err = invoice.Calculate(b.BuildCharges(), b.BuildProducts(), b.BuildTaxes(), dec("100.01"))
		assert.ErrorIs(t, err, invoice.ErrInvalidDiscount)
	})

	t.Run("unknown product fails instead of pricing at zero", func(t *testing.T) {
		b := builder.NewInvoiceBuilder()

		charges := []invoice.ChargeRequest{{ProductID: uuid.New()}}
		_, err := invoice.Calculate(charges, b.BuildProducts(), b.BuildTaxes(), decimal.Zero)
		assert.ErrorIs(t, err, invoice.ErrUnknownProduct)
	})

	t.Run("unknown tax fails instead of pricing at zero", func(t *testing.T) {
		b := builder.NewInvoiceBuilder()

		_, err := invoice.Calculate(b.BuildCharges(), b.BuildProducts(), map[uuid.UUID]*catalog.Tax{}, decimal.Zero)
		assert.ErrorIs(t, err, invoice.ErrUnknownTax)
	})

	t.Run("empty charge list is rejected", func(t *testing.T) {
		b := builder.NewInvoiceBuilder()

		_, err := invoice.Calculate(nil, b.BuildProducts(), b.BuildTaxes(), decimal.Zero)
		assert.ErrorIs(t, err, invoice.ErrNoLineItems)
	})
}
