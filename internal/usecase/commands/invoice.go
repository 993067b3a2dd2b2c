package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"washdesk/internal/domain/booking"
	"washdesk/internal/domain/invoice"
	"washdesk/internal/domain/user"
	reqdto "washdesk/internal/handler/dto/request"
	"washdesk/internal/infra"
	"washdesk/internal/pkg/clock"
	"washdesk/internal/pkg/errs"
	"washdesk/internal/usecase/queries"
	"washdesk/internal/usecase/shared"
)

var (
	ErrProductNotFound  = errs.New("product not found")
	ErrTaxNotFound      = errs.New("tax not found")
	ErrInvalidDiscount  = errs.New("invalid discount percentage")
	ErrPermissionDenied = errs.New("permission denied")
)

type InvoiceCommands interface {
	Create(ctx context.Context, req reqdto.CreateInvoiceRequest, actorID uuid.UUID, actorRole user.Role) (*queries.InvoiceView, error)
}

type invoiceCommandsImpl struct {
	invoiceRepo      InvoiceRepository
	bookingRepo      BookingRepository
	catalogRepo      CatalogRepository
	counterRepo      CounterRepository
	notificationRepo NotificationRepository
	invoiceQueries   queries.InvoiceQueries
	bookingQueries   queries.BookingQueries
	db               *pgxpool.Pool
	clock            clock.Clock
}

func NewInvoiceCommands(
	invoiceRepo InvoiceRepository,
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	counterRepo CounterRepository,
	notificationRepo NotificationRepository,
	invoiceQueries queries.InvoiceQueries,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) InvoiceCommands {
	return &invoiceCommandsImpl{
		invoiceRepo:      invoiceRepo,
		bookingRepo:      bookingRepo,
		catalogRepo:      catalogRepo,
		counterRepo:      counterRepo,
		notificationRepo: notificationRepo,
		invoiceQueries:   invoiceQueries,
		bookingQueries:   bookingQueries,
		db:               db,
		clock:            clock,
	}
}

func (c *invoiceCommandsImpl) Create(
	ctx context.Context,
	req reqdto.CreateInvoiceRequest,
	actorID uuid.UUID,
	actorRole user.Role,
) (*queries.InvoiceView, error) {
	booked, err := c.bookingQueries.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// An omitted charge list bills the booking as booked.
	charges := req.Charges
	if len(charges) == 0 {
		charges = make([]reqdto.InvoiceChargeRequest, 0, len(booked.ProductIDs))
		for _, productID := range booked.ProductIDs {
			charges = append(charges, reqdto.InvoiceChargeRequest{ProductID: productID})
		}
	}

	// Discounts, price overrides and swapping the booked services are
	// manager-level actions. The policy lives here, not in the calculator,
	// so the arithmetic stays pure.
	substituted := len(req.Charges) > 0 && substitutesServices(req.Charges, booked.ProductIDs)
	if (req.HasDiscount() || req.HasOverride() || substituted) && !actorRole.AtLeast(user.RoleManager) {
		return nil, ErrPermissionDenied
	}

	totals, err := c.calculateTotals(ctx, charges, req.DiscountPercentage)
	if err != nil {
		return nil, err
	}

	bookingID := req.BookingID
	entity, err := invoice.NewInvoice(req.Prefix, &bookingID, booked.CustomerID, totals, actorID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	invoiceID, err := shared.WithDefaultRetry(ctx, c.db, func(tx pgx.Tx) (uuid.UUID, error) {
		number, err := c.counterRepo.Next(ctx, tx, CounterInvoices)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := entity.AssignNumber(number); err != nil {
			return uuid.Nil, errs.Mark(err, ErrDomainValidation)
		}

		if err := c.invoiceRepo.Create(ctx, tx, entity); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return uuid.Nil, ErrCustomerNotFound
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.reconcileBooking(ctx, tx, req.BookingID, charges); err != nil {
			return uuid.Nil, err
		}

		if err := c.enqueueDelivery(ctx, tx, entity); err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return entity.ID(), nil
	})
	if err != nil {
		return nil, err
	}

	return c.invoiceQueries.GetByID(ctx, invoiceID)
}

// substitutesServices reports whether the requested charges bill a
// different multiset of products than the booking carries.
func substitutesServices(requested []reqdto.InvoiceChargeRequest, booked []uuid.UUID) bool {
	if len(requested) != len(booked) {
		return true
	}
	remaining := make(map[uuid.UUID]int, len(booked))
	for _, id := range booked {
		remaining[id]++
	}
	for _, charge := range requested {
		remaining[charge.ProductID]--
		if remaining[charge.ProductID] < 0 {
			return true
		}
	}
	return false
}

func (c *invoiceCommandsImpl) calculateTotals(
	ctx context.Context,
	requested []reqdto.InvoiceChargeRequest,
	discountPercentage *decimal.Decimal,
) (invoice.Totals, error) {
	productIDs := make([]uuid.UUID, 0, len(requested))
	charges := make([]invoice.ChargeRequest, 0, len(requested))
	for _, charge := range requested {
		productIDs = append(productIDs, charge.ProductID)
		charges = append(charges, invoice.ChargeRequest{
			ProductID:     charge.ProductID,
			PriceOverride: charge.PriceOverride,
		})
	}

	products, err := c.catalogRepo.ProductsByIDs(ctx, productIDs)
	if err != nil {
		return invoice.Totals{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	taxIDs := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for _, product := range products {
		for _, taxID := range product.TaxIDs() {
			if _, ok := seen[taxID]; !ok {
				seen[taxID] = struct{}{}
				taxIDs = append(taxIDs, taxID)
			}
		}
	}

	taxes, err := c.catalogRepo.TaxesByIDs(ctx, taxIDs)
	if err != nil {
		return invoice.Totals{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	discount := decimal.Zero
	if discountPercentage != nil {
		discount = *discountPercentage
	}

	totals, err := invoice.Calculate(charges, products, taxes, discount)
	if err != nil {
		switch {
		case errors.Is(err, invoice.ErrUnknownProduct):
			return invoice.Totals{}, errs.Mark(err, ErrProductNotFound)
		case errors.Is(err, invoice.ErrUnknownTax):
			return invoice.Totals{}, errs.Mark(err, ErrTaxNotFound)
		case errors.Is(err, invoice.ErrInvalidDiscount):
			return invoice.Totals{}, errs.Mark(err, ErrInvalidDiscount)
		default:
			return invoice.Totals{}, errs.Mark(err, ErrDomainValidation)
		}
	}
	return totals, nil
}

// reconcileBooking aligns the invoiced booking with what was actually
// billed and settles it.
func (c *invoiceCommandsImpl) reconcileBooking(
	ctx context.Context,
	tx pgx.Tx,
	bookingID uuid.UUID,
	charges []reqdto.InvoiceChargeRequest,
) error {
	entity, err := c.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	billed := make([]uuid.UUID, 0, len(charges))
	for _, charge := range charges {
		billed = append(billed, charge.ProductID)
	}
	if err := entity.ChangeProducts(billed); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if entity.Status() == booking.StatusPending {
		if err := entity.Complete(); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
	}

	if err := c.bookingRepo.Update(ctx, tx, entity); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *invoiceCommandsImpl) enqueueDelivery(ctx context.Context, tx pgx.Tx, entity *invoice.Invoice) error {
	payload, err := json.Marshal(map[string]any{
		"invoice_id":     entity.ID(),
		"invoice_number": entity.Number(),
		"customer_id":    entity.CustomerID(),
		"grand_total":    entity.GrandTotal(),
	})
	if err != nil {
		return err
	}
	runAt := c.clock.Now().Add(1 * time.Minute)
	return c.notificationRepo.CreateJob(ctx, tx, "email", "invoice_issued", payload, runAt)
}
