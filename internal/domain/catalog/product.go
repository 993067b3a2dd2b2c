package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrEmptyProductCode = errors.New("product code cannot be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// Product is a billable service offering (wash, polish, detailing...).
type Product struct {
	id         uuid.UUID
	name       string
	code       string
	categoryID uuid.UUID
	taxIDs     []uuid.UUID
	buyPrice   *decimal.Decimal
	sellPrice  decimal.Decimal
	createdAt  time.Time
}

func NewProduct(
	name, code string,
	categoryID uuid.UUID,
	taxIDs []uuid.UUID,
	buyPrice *decimal.Decimal,
	sellPrice decimal.Decimal,
) (*Product, error) {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)
	if name == "" {
		return nil, ErrEmptyProductName
	}
	if code == "" {
		return nil, ErrEmptyProductCode
	}
	if sellPrice.IsNegative() || (buyPrice != nil && buyPrice.IsNegative()) {
		return nil, ErrNegativePrice
	}
	return &Product{
		id:         uuid.New(),
		name:       name,
		code:       code,
		categoryID: categoryID,
		taxIDs:     taxIDs,
		buyPrice:   buyPrice,
		sellPrice:  sellPrice,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	name, code string,
	categoryID uuid.UUID,
	taxIDs []uuid.UUID,
	buyPrice *decimal.Decimal,
	sellPrice decimal.Decimal,
	createdAt time.Time,
) *Product {
	return &Product{
		id:         id,
		name:       name,
		code:       code,
		categoryID: categoryID,
		taxIDs:     taxIDs,
		buyPrice:   buyPrice,
		sellPrice:  sellPrice,
		createdAt:  createdAt,
	}
}

func (p *Product) ID() uuid.UUID              { return p.id }
func (p *Product) Name() string               { return p.name }
func (p *Product) Code() string               { return p.code }
func (p *Product) CategoryID() uuid.UUID      { return p.categoryID }
func (p *Product) TaxIDs() []uuid.UUID        { return p.taxIDs }
func (p *Product) BuyPrice() *decimal.Decimal { return p.buyPrice }
func (p *Product) SellPrice() decimal.Decimal { return p.sellPrice }
func (p *Product) CreatedAt() time.Time       { return p.createdAt }
