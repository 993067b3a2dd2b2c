package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/domain/invoice"
	"washdesk/internal/infra"
	"washdesk/internal/pkg/pgconv"
)

type InvoiceRepository struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, tx pgx.Tx, inv *invoice.Invoice) error {
	items, err := json.Marshal(inv.Items())
	if err != nil {
		return infra.WrapRepoErr("failed to encode invoice items", err)
	}

	const query = `
		INSERT INTO invoices (
			id, invoice_number, invoice_prefix, booking_id, customer_id, items,
			subtotal, tax_total, discount_percentage, discount_amount, grand_total,
			created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = tx.Exec(ctx, query,
		inv.ID(),
		inv.Number(),
		inv.Prefix(),
		pgconv.UUIDPtrToPgtype(inv.BookingID()),
		inv.CustomerID(),
		items,
		pgconv.NumericFromDecimal(inv.Subtotal()),
		pgconv.NumericFromDecimal(inv.TaxTotal()),
		pgconv.NumericFromDecimal(inv.DiscountPercentage()),
		pgconv.NumericFromDecimal(inv.DiscountAmount()),
		pgconv.NumericFromDecimal(inv.GrandTotal()),
		inv.CreatedBy(),
	)
	if err != nil {
		return wrapPgErr("failed to create invoice", err)
	}
	return nil
}
