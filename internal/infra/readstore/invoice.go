package readstore

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/infra"
	"washdesk/internal/pkg/pgconv"
	"washdesk/internal/usecase/queries"
)

type InvoiceReadStore struct {
	db *pgxpool.Pool
}

func NewInvoiceReadStore(db *pgxpool.Pool) *InvoiceReadStore {
	return &InvoiceReadStore{db: db}
}

func (s *InvoiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InvoiceView, error) {
	const query = `
		SELECT i.id, i.invoice_number, i.invoice_prefix, i.booking_id,
		       i.customer_id, c.name, i.items,
		       i.subtotal, i.tax_total, i.discount_percentage, i.discount_amount,
		       i.grand_total, i.created_by, i.created_at
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE i.id = $1`

	view, err := scanInvoiceView(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *InvoiceReadStore) FindFiltered(ctx context.Context, customerID *uuid.UUID, limit, offset int32) ([]*queries.InvoiceView, error) {
	builder := psql.
		Select(
			"i.id", "i.invoice_number", "i.invoice_prefix", "i.booking_id",
			"i.customer_id", "c.name", "i.items",
			"i.subtotal", "i.tax_total", "i.discount_percentage", "i.discount_amount",
			"i.grand_total", "i.created_by", "i.created_at",
		).
		From("invoices i").
		Join("customers c ON c.id = i.customer_id").
		OrderBy("i.invoice_number DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if customerID != nil {
		builder = builder.Where(squirrel.Eq{"i.customer_id": *customerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build invoice list", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapReadErr("failed to list invoices", err)
	}
	defer rows.Close()

	views := make([]*queries.InvoiceView, 0)
	for rows.Next() {
		view, err := scanInvoiceView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate invoices", err)
	}
	return views, nil
}

// LatestPrefix reports the prefix of the newest invoice together with the
// next sequence value, so clients can preview the upcoming number.
func (s *InvoiceReadStore) LatestPrefix(ctx context.Context) (*queries.LatestPrefixView, error) {
	const query = `
		SELECT
			COALESCE((SELECT invoice_prefix FROM invoices ORDER BY invoice_number DESC LIMIT 1), ''),
			COALESCE((SELECT value FROM counters WHERE name = 'invoices'), 0) + 1`

	var view queries.LatestPrefixView
	if err := s.db.QueryRow(ctx, query).Scan(&view.Prefix, &view.NextNumber); err != nil {
		return nil, wrapReadErr("failed to read latest prefix", err)
	}
	return &view, nil
}

func scanInvoiceView(row pgx.Row) (*queries.InvoiceView, error) {
	var (
		view      queries.InvoiceView
		bookingID pgtype.UUID
		items     []byte
		subtotal  pgtype.Numeric
		taxTotal  pgtype.Numeric
		discPct   pgtype.Numeric
		discAmt   pgtype.Numeric
		grand     pgtype.Numeric
	)
	err := row.Scan(
		&view.ID, &view.Number, &view.Prefix, &bookingID,
		&view.CustomerID, &view.CustomerName, &items,
		&subtotal, &taxTotal, &discPct, &discAmt,
		&grand, &view.CreatedBy, &view.CreatedAt,
	)
	if err != nil {
		return nil, wrapReadErr("invoice not found", err)
	}

	view.BookingID = pgconv.UUIDPtrFromPgtype(bookingID)

	if err := json.Unmarshal(items, &view.Items); err != nil {
		return nil, infra.WrapRepoErr("invalid stored invoice items", err)
	}

	if view.Subtotal, err = pgconv.DecimalFromNumeric(subtotal); err != nil {
		return nil, infra.WrapRepoErr("invalid stored subtotal", err)
	}
	if view.TaxTotal, err = pgconv.DecimalFromNumeric(taxTotal); err != nil {
		return nil, infra.WrapRepoErr("invalid stored tax total", err)
	}
	if view.DiscountPercentage, err = pgconv.DecimalFromNumeric(discPct); err != nil {
		return nil, infra.WrapRepoErr("invalid stored discount percentage", err)
	}
	if view.DiscountAmount, err = pgconv.DecimalFromNumeric(discAmt); err != nil {
		return nil, infra.WrapRepoErr("invalid stored discount amount", err)
	}
	if view.GrandTotal, err = pgconv.DecimalFromNumeric(grand); err != nil {
		return nil, infra.WrapRepoErr("invalid stored grand total", err)
	}

	return &view, nil
}
