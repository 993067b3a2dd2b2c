package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/pkg/pgconv"
	"washdesk/internal/usecase/commands"
)

type SettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Update patches the single settings row, creating it on first write.
func (r *SettingsRepository) Update(ctx context.Context, currency *string, showTaxBifurcation *bool) (*commands.SettingsSnapshot, error) {
	const query = `
		INSERT INTO settings (id, currency, show_tax_bifurcation)
		VALUES ('default', COALESCE($1, 'USD'), COALESCE($2, true))
		ON CONFLICT (id) DO UPDATE SET
			currency = COALESCE($1, settings.currency),
			show_tax_bifurcation = COALESCE($2, settings.show_tax_bifurcation),
			updated_at = now()
		RETURNING currency, show_tax_bifurcation`

	var snap commands.SettingsSnapshot
	err := r.db.QueryRow(ctx, query,
		pgconv.StringPtrToPgtype(currency),
		pgconv.BoolPtrToPgtype(showTaxBifurcation),
	).Scan(&snap.Currency, &snap.ShowTaxBifurcation)
	if err != nil {
		return nil, wrapPgErr("failed to update settings", err)
	}
	return &snap, nil
}
