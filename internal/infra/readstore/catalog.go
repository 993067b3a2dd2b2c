package readstore

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/infra"
	"washdesk/internal/pkg/pgconv"
	"washdesk/internal/usecase/queries"
)

type CatalogReadStore struct {
	db *pgxpool.Pool
}

func NewCatalogReadStore(db *pgxpool.Pool) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (s *CatalogReadStore) FindAllCategories(ctx context.Context) ([]*queries.CategoryView, error) {
	const query = `
		SELECT id, name, description, created_at
		FROM categories ORDER BY name`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, wrapReadErr("failed to list categories", err)
	}
	defer rows.Close()

	views := make([]*queries.CategoryView, 0)
	for rows.Next() {
		var view queries.CategoryView
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &view.CreatedAt); err != nil {
			return nil, wrapReadErr("failed to scan category", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate categories", err)
	}
	return views, nil
}

func (s *CatalogReadStore) FindAllTaxes(ctx context.Context) ([]*queries.TaxView, error) {
	const query = `
		SELECT id, name, percentage, created_at
		FROM taxes ORDER BY name`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, wrapReadErr("failed to list taxes", err)
	}
	defer rows.Close()

	views := make([]*queries.TaxView, 0)
	for rows.Next() {
		var (
			view       queries.TaxView
			percentage pgtype.Numeric
		)
		if err := rows.Scan(&view.ID, &view.Name, &percentage, &view.CreatedAt); err != nil {
			return nil, wrapReadErr("failed to scan tax", err)
		}
		rate, err := pgconv.DecimalFromNumeric(percentage)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored tax rate", err)
		}
		view.Percentage = rate
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate taxes", err)
	}
	return views, nil
}

func (s *CatalogReadStore) FindProducts(ctx context.Context, categoryID *uuid.UUID) ([]*queries.ProductView, error) {
	builder := psql.
		Select(
			"p.id", "p.name", "p.code", "p.category_id", "cat.name",
			"p.tax_ids", "p.buy_price", "p.sell_price", "p.created_at",
		).
		From("products p").
		Join("categories cat ON cat.id = p.category_id").
		OrderBy("p.name")

	if categoryID != nil {
		builder = builder.Where(squirrel.Eq{"p.category_id": *categoryID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build product list", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapReadErr("failed to list products", err)
	}
	defer rows.Close()

	views := make([]*queries.ProductView, 0)
	for rows.Next() {
		view, err := scanProductView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to iterate products", err)
	}
	return views, nil
}

func (s *CatalogReadStore) FindProductByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	const query = `
		SELECT p.id, p.name, p.code, p.category_id, cat.name,
		       p.tax_ids, p.buy_price, p.sell_price, p.created_at
		FROM products p
		JOIN categories cat ON cat.id = p.category_id
		WHERE p.id = $1`

	view, err := scanProductView(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return view, nil
}

func scanProductView(row pgx.Row) (*queries.ProductView, error) {
	var (
		view      queries.ProductView
		buyPrice  pgtype.Numeric
		sellPrice pgtype.Numeric
	)
	err := row.Scan(
		&view.ID, &view.Name, &view.Code, &view.CategoryID, &view.CategoryName,
		&view.TaxIDs, &buyPrice, &sellPrice, &view.CreatedAt,
	)
	if err != nil {
		return nil, wrapReadErr("product not found", err)
	}

	if view.BuyPrice, err = pgconv.DecimalPtrFromNumeric(buyPrice); err != nil {
		return nil, infra.WrapRepoErr("invalid stored buy price", err)
	}
	if view.SellPrice, err = pgconv.DecimalFromNumeric(sellPrice); err != nil {
		return nil, infra.WrapRepoErr("invalid stored sell price", err)
	}
	return &view, nil
}
