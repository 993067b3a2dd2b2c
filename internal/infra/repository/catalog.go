package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/domain/catalog"
	"washdesk/internal/infra"
	"washdesk/internal/pkg/pgconv"
)

type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, c *catalog.Category) error {
	const query = `
		INSERT INTO categories (id, name, description)
		VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, c.ID(), c.Name(), pgconv.StringPtrToPgtype(c.Description()))
	if err != nil {
		return wrapPgErr("failed to create category", err)
	}
	return nil
}

func (r *CatalogRepository) CreateTax(ctx context.Context, t *catalog.Tax) error {
	const query = `
		INSERT INTO taxes (id, name, percentage)
		VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, t.ID(), t.Name(), pgconv.NumericFromDecimal(t.Percentage()))
	if err != nil {
		return wrapPgErr("failed to create tax", err)
	}
	return nil
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, p *catalog.Product) error {
	const query = `
		INSERT INTO products (id, name, code, category_id, tax_ids, buy_price, sell_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		p.ID(),
		p.Name(),
		p.Code(),
		p.CategoryID(),
		p.TaxIDs(),
		pgconv.NumericPtrFromDecimal(p.BuyPrice()),
		pgconv.NumericFromDecimal(p.SellPrice()),
	)
	if err != nil {
		return wrapPgErr("failed to create product", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateProduct(ctx context.Context, p *catalog.Product) error {
	const query = `
		UPDATE products SET
			name = $2, code = $3, category_id = $4, tax_ids = $5,
			buy_price = $6, sell_price = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		p.ID(),
		p.Name(),
		p.Code(),
		p.CategoryID(),
		p.TaxIDs(),
		pgconv.NumericPtrFromDecimal(p.BuyPrice()),
		pgconv.NumericFromDecimal(p.SellPrice()),
	)
	if err != nil {
		return wrapPgErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	const query = `
		SELECT id, name, code, category_id, tax_ids, buy_price, sell_price, created_at
		FROM products WHERE id = $1`

	product, err := r.scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *CatalogRepository) ProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Product, error) {
	const query = `
		SELECT id, name, code, category_id, tax_ids, buy_price, sell_price, created_at
		FROM products WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, wrapPgErr("failed to load products", err)
	}
	defer rows.Close()

	products := make(map[uuid.UUID]*catalog.Product, len(ids))
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products[product.ID()] = product
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate products", err)
	}
	return products, nil
}

func (r *CatalogRepository) TaxesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Tax, error) {
	const query = `
		SELECT id, name, percentage, created_at
		FROM taxes WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, wrapPgErr("failed to load taxes", err)
	}
	defer rows.Close()

	taxes := make(map[uuid.UUID]*catalog.Tax, len(ids))
	for rows.Next() {
		var (
			id         uuid.UUID
			name       string
			percentage pgtype.Numeric
			createdAt  time.Time
		)
		if err := rows.Scan(&id, &name, &percentage, &createdAt); err != nil {
			return nil, wrapPgErr("failed to scan tax", err)
		}
		rate, err := pgconv.DecimalFromNumeric(percentage)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored tax rate", err)
		}
		taxes[id] = catalog.ReconstructTax(id, name, rate, createdAt)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate taxes", err)
	}
	return taxes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *CatalogRepository) scanProduct(row rowScanner) (*catalog.Product, error) {
	var (
		id         uuid.UUID
		name       string
		code       string
		categoryID uuid.UUID
		taxIDs     []uuid.UUID
		buyPrice   pgtype.Numeric
		sellPrice  pgtype.Numeric
		createdAt  time.Time
	)
	err := row.Scan(&id, &name, &code, &categoryID, &taxIDs, &buyPrice, &sellPrice, &createdAt)
	if err != nil {
		return nil, wrapPgErr("failed to find product", err)
	}

	buy, err := pgconv.DecimalPtrFromNumeric(buyPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored buy price", err)
	}
	sell, err := pgconv.DecimalFromNumeric(sellPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored sell price", err)
	}

	return catalog.ReconstructProduct(id, name, code, categoryID, taxIDs, buy, sell, createdAt), nil
}
