package readstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"washdesk/internal/pkg/pgconv"
	"washdesk/internal/usecase/queries"
)

type SettingsReadStore struct {
	db *pgxpool.Pool
}

func NewSettingsReadStore(db *pgxpool.Pool) *SettingsReadStore {
	return &SettingsReadStore{db: db}
}

// Find returns the single settings row, falling back to defaults before
// the first write.
func (s *SettingsReadStore) Find(ctx context.Context) (*queries.SettingsView, error) {
	const query = `
		SELECT currency, show_tax_bifurcation, updated_at
		FROM settings WHERE id = 'default'`

	var view queries.SettingsView
	err := s.db.QueryRow(ctx, query).Scan(&view.Currency, &view.ShowTaxBifurcation, &view.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return &queries.SettingsView{Currency: "USD", ShowTaxBifurcation: true}, nil
		}
		return nil, wrapReadErr("failed to read settings", err)
	}
	return &view, nil
}
