package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/domain/customer"
	"washdesk/internal/infra"
	"washdesk/internal/pkg/pgconv"
)

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	const query = `
		INSERT INTO customers (id, name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		c.ID(),
		c.Name(),
		pgconv.StringPtrToPgtype(c.Email()),
		c.Phone(),
		pgconv.StringPtrToPgtype(c.Address()),
	)
	if err != nil {
		return wrapPgErr("failed to create customer", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	const query = `
		UPDATE customers SET name = $2, email = $3, phone = $4, address = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		c.ID(),
		c.Name(),
		pgconv.StringPtrToPgtype(c.Email()),
		c.Phone(),
		pgconv.StringPtrToPgtype(c.Address()),
	)
	if err != nil {
		return wrapPgErr("failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	const query = `
		SELECT id, name, email, phone, address, created_at
		FROM customers WHERE id = $1`

	var (
		customerID uuid.UUID
		name       string
		email      *string
		phone      string
		address    *string
		createdAt  time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&customerID, &name, &email, &phone, &address, &createdAt)
	if err != nil {
		return nil, wrapPgErr("failed to find customer", err)
	}
	return customer.ReconstructCustomer(customerID, name, phone, email, address, createdAt), nil
}
