//go:build unit

package commands_test

import (
	"context"
	"testing"

	"washdesk/internal/domain/user"
	"washdesk/internal/usecase/commands"
	"washdesk/internal/usecase/queries"
	"washdesk/tests/common/builder"
	commandsmock "washdesk/tests/mock/commands"
	queriesmock "washdesk/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// newInvoiceCommands wires the booking lookup and the catalog; the policy
// and pricing paths under test fail before any transaction is opened.
func newInvoiceCommands(
	catalogRepo commands.CatalogRepository,
	bookingQueries *queriesmock.MockBookingQueries,
) commands.InvoiceCommands {
	return commands.NewInvoiceCommands(nil, nil, catalogRepo, nil, nil, nil, bookingQueries, nil, nil)
}

func invoiceMocks(t *testing.T) (*commandsmock.MockCatalogRepository, *queriesmock.MockBookingQueries) {
	ctrl := gomock.NewController(t)
	return commandsmock.NewMockCatalogRepository(ctrl), queriesmock.NewMockBookingQueries(ctrl)
}

func TestInvoiceCreatePolicy(t *testing.T) {
	actorID := uuid.New()

	t.Run("staff cannot apply a discount", func(t *testing.T) {
		catalogRepo, bookingQueries := invoiceMocks(t)
		cmd := newInvoiceCommands(catalogRepo, bookingQueries)

		b := builder.NewInvoiceBuilder().WithDiscount("10")
		bookingQueries.EXPECT().GetByID(gomock.Any(), b.BookingID).Return(b.BuildBookingView(), nil)

		_, err := cmd.Create(context.Background(), b.BuildCreateRequestDTO(), actorID, user.RoleStaff)
		assert.ErrorIs(t, err, commands.ErrPermissionDenied)
	})

	t.Run("staff cannot override a price", func(t *testing.T) {
		catalogRepo, bookingQueries := invoiceMocks(t)
		cmd := newInvoiceCommands(catalogRepo, bookingQueries)

		b := builder.NewInvoiceBuilder().WithOverride("1.00")
		bookingQueries.EXPECT().GetByID(gomock.Any(), b.BookingID).Return(b.BuildBookingView(), nil)

		_, err := cmd.Create(context.Background(), b.BuildCreateRequestDTO(), actorID, user.RoleStaff)
		assert.ErrorIs(t, err, commands.ErrPermissionDenied)
	})

	t.Run("staff cannot bill services the booking does not carry", func(t *testing.T) {
		catalogRepo, bookingQueries := invoiceMocks(t)
		cmd := newInvoiceCommands(catalogRepo, bookingQueries)

		b := builder.NewInvoiceBuilder()
		bookingQueries.EXPECT().GetByID(gomock.Any(), b.BookingID).Return(b.BuildBookingView(), nil)

		req := b.BuildCreateRequestDTO()
		req.Charges[0].ProductID = uuid.New()

		_, err := cmd.Create(context.Background(), req, actorID, user.RoleStaff)
		assert.ErrorIs(t, err, commands.ErrPermissionDenied)
	})

	t.Run("staff billing the booked services passes the gate", func(t *testing.T) {
		catalogRepo, bookingQueries := invoiceMocks(t)
		cmd := newInvoiceCommands(catalogRepo, bookingQueries)

		b := builder.NewInvoiceBuilder()
		bookingQueries.EXPECT().GetByID(gomock.Any(), b.BookingID).Return(b.BuildBookingView(), nil)

		// The request reaches pricing; an unknown product stops it there,
		// which is all this case needs to see.
		catalogRepo.EXPECT().ProductsByIDs(gomock.Any(), []uuid.UUID{b.ProductID}).Return(nil, nil)
		catalogRepo.EXPECT().TaxesByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := cmd.Create(context.Background(), b.BuildCreateRequestDTO(), actorID, user.RoleStaff)
		assert.ErrorIs(t, err, commands.ErrProductNotFound)
	})

	t.Run("a zero discount does not trip the policy", func(t *testing.T) {
		catalogRepo, bookingQueries := invoiceMocks(t)
		cmd := newInvoiceCommands(catalogRepo, bookingQueries)

		b := builder.NewInvoiceBuilder()
		bookingQueries.EXPECT().GetByID(gomock.Any(), b.BookingID).Return(b.BuildBookingView(), nil)

		zero := decimal.Zero
		req := b.BuildCreateRequestDTO()
		req.DiscountPercentage = &zero

		catalogRepo.EXPECT().ProductsByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
		catalogRepo.EXPECT().TaxesByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := cmd.Create(context.Background(), req, actorID, user.RoleStaff)
		assert.ErrorIs(t, err, commands.ErrProductNotFound)
	})
}

func TestInvoiceCreateBookingLookup(t *testing.T) {
	actorID := uuid.New()

	t.Run("unknown booking is rejected before the policy check", func(t *testing.T) {
		catalogRepo, bookingQueries := invoiceMocks(t)
		cmd := newInvoiceCommands(catalogRepo, bookingQueries)

		b := builder.NewInvoiceBuilder().WithDiscount("10")
		bookingQueries.EXPECT().GetByID(gomock.Any(), b.BookingID).Return(nil, queries.ErrBookingNotFound)

		_, err := cmd.Create(context.Background(), b.BuildCreateRequestDTO(), actorID, user.RoleManager)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("omitted charges default to the booked products", func(t *testing.T) {
		catalogRepo, bookingQueries := invoiceMocks(t)
		cmd := newInvoiceCommands(catalogRepo, bookingQueries)

		b := builder.NewInvoiceBuilder()
		bookingQueries.EXPECT().GetByID(gomock.Any(), b.BookingID).Return(b.BuildBookingView(), nil)

		req := b.BuildCreateRequestDTO()
		req.Charges = nil

		// Pricing is asked for exactly the booking's product.
		catalogRepo.EXPECT().ProductsByIDs(gomock.Any(), []uuid.UUID{b.ProductID}).Return(nil, nil)
		catalogRepo.EXPECT().TaxesByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := cmd.Create(context.Background(), req, actorID, user.RoleStaff)
		assert.ErrorIs(t, err, commands.ErrProductNotFound)
	})
}

func TestInvoiceCreatePricing(t *testing.T) {
	actorID := uuid.New()

	t.Run("unknown product is a hard failure", func(t *testing.T) {
		catalogRepo, bookingQueries := invoiceMocks(t)
		cmd := newInvoiceCommands(catalogRepo, bookingQueries)

		b := builder.NewInvoiceBuilder()
		bookingQueries.EXPECT().GetByID(gomock.Any(), b.BookingID).Return(b.BuildBookingView(), nil)
		catalogRepo.EXPECT().ProductsByIDs(gomock.Any(), []uuid.UUID{b.ProductID}).Return(nil, nil)
		catalogRepo.EXPECT().TaxesByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := cmd.Create(context.Background(), b.BuildCreateRequestDTO(), actorID, user.RoleManager)
		assert.ErrorIs(t, err, commands.ErrProductNotFound)
	})

	t.Run("unknown tax is a hard failure", func(t *testing.T) {
		catalogRepo, bookingQueries := invoiceMocks(t)
		cmd := newInvoiceCommands(catalogRepo, bookingQueries)

		b := builder.NewInvoiceBuilder()
		bookingQueries.EXPECT().GetByID(gomock.Any(), b.BookingID).Return(b.BuildBookingView(), nil)
		catalogRepo.EXPECT().ProductsByIDs(gomock.Any(), []uuid.UUID{b.ProductID}).Return(b.BuildProducts(), nil)
		catalogRepo.EXPECT().TaxesByIDs(gomock.Any(), []uuid.UUID{b.TaxID}).Return(nil, nil)

		_, err := cmd.Create(context.Background(), b.BuildCreateRequestDTO(), actorID, user.RoleManager)
		assert.ErrorIs(t, err, commands.ErrTaxNotFound)
	})

	t.Run("out-of-range discount is rejected before any write", func(t *testing.T) {
		catalogRepo, bookingQueries := invoiceMocks(t)
		cmd := newInvoiceCommands(catalogRepo, bookingQueries)

		b := builder.NewInvoiceBuilder().WithDiscount("150")
		bookingQueries.EXPECT().GetByID(gomock.Any(), b.BookingID).Return(b.BuildBookingView(), nil)
		catalogRepo.EXPECT().ProductsByIDs(gomock.Any(), gomock.Any()).Return(b.BuildProducts(), nil)
		catalogRepo.EXPECT().TaxesByIDs(gomock.Any(), gomock.Any()).Return(b.BuildTaxes(), nil)

		_, err := cmd.Create(context.Background(), b.BuildCreateRequestDTO(), actorID, user.RoleManager)
		assert.ErrorIs(t, err, commands.ErrInvalidDiscount)
	})
}
