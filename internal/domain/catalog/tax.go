package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTaxName      = errors.New("tax name cannot be empty")
	ErrInvalidPercentage = errors.New("tax percentage must be between 0 and 100")
)

// Tax is a named percentage rate applied to a product's unit price.
// Rates on the same product are summed, never compounded.
type Tax struct {
	id         uuid.UUID
	name       string
	percentage decimal.Decimal
	createdAt  time.Time
}

func NewTax(name string, percentage decimal.Decimal) (*Tax, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTaxName
	}
	if percentage.IsNegative() || percentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidPercentage
	}
	return &Tax{
		id:         uuid.New(),
		name:       name,
		percentage: percentage,
	}, nil
}

func ReconstructTax(id uuid.UUID, name string, percentage decimal.Decimal, createdAt time.Time) *Tax {
	return &Tax{id: id, name: name, percentage: percentage, createdAt: createdAt}
}

// AmountOn returns the tax amount for a given unit price.
func (t *Tax) AmountOn(price decimal.Decimal) decimal.Decimal {
	return price.Mul(t.percentage).Div(decimal.NewFromInt(100))
}

func (t *Tax) ID() uuid.UUID               { return t.id }
func (t *Tax) Name() string                { return t.name }
func (t *Tax) Percentage() decimal.Decimal { return t.percentage }
func (t *Tax) CreatedAt() time.Time        { return t.createdAt }
