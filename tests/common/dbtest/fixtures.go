//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, name, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, "Test "+role, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestZone(t *testing.T, db DBLike, name string, active bool) uuid.UUID {
	t.Helper()

	zoneID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO zones (id, name, is_active) VALUES ($1, $2, $3)", zoneID, name, active)
	require.NoError(t, err)
	return zoneID
}

func CreateTestCustomer(t *testing.T, db DBLike, name, phone string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO customers (id, name, phone) VALUES ($1, $2, $3)", customerID, name, phone)
	require.NoError(t, err)
	return customerID
}

// CreateTestProduct seeds a category, a tax and one product wired to both.
func CreateTestProduct(t *testing.T, db DBLike, name, code, sellPrice, taxPercentage string) (uuid.UUID, uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	categoryID := uuid.New()
	_, err := db.Exec(ctx, "INSERT INTO categories (id, name) VALUES ($1, $2)", categoryID, "Washes")
	require.NoError(t, err)

	taxID := uuid.New()
	_, err = db.Exec(ctx, "INSERT INTO taxes (id, name, percentage) VALUES ($1, $2, $3)", taxID, "VAT", taxPercentage)
	require.NoError(t, err)

	productID := uuid.New()
	_, err = db.Exec(ctx,
		"INSERT INTO products (id, name, code, category_id, tax_ids, sell_price) VALUES ($1, $2, $3, $4, $5, $6)",
		productID, name, code, categoryID, []uuid.UUID{taxID}, sellPrice)
	require.NoError(t, err)

	return productID, taxID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()

		var tables []string
		for rows.Next() {
			var table string
			if err := rows.Scan(&table); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, table)
		}
		if rows.Err() != nil || len(tables) == 0 {
			truncateSQL.Store("")
			return
		}

		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})

	sql, _ := truncateSQL.Load().(string)
	if sql == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}

	_, err := pool.Exec(ctx, sql)
	return err
}
