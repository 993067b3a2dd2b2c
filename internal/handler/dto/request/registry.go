package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateZoneRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (r CreateZoneRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

type UpdateZoneRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=255"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Address *string `json:"address,omitempty"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Address *string `json:"address,omitempty"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

type CreateTaxRequest struct {
	Name       string          `json:"name" binding:"required"`
	Percentage decimal.Decimal `json:"percentage" binding:"required"`
}

type CreateProductRequest struct {
	Name       string           `json:"name" binding:"required"`
	Code       string           `json:"code" binding:"required"`
	CategoryID uuid.UUID        `json:"category_id" binding:"required"`
	TaxIDs     []uuid.UUID      `json:"tax_ids,omitempty"`
	BuyPrice   *decimal.Decimal `json:"buy_price,omitempty"`
	SellPrice  decimal.Decimal  `json:"sell_price" binding:"required"`
}

type UpdateProductRequest struct {
	Name       *string          `json:"name,omitempty"`
	Code       *string          `json:"code,omitempty"`
	CategoryID *uuid.UUID       `json:"category_id,omitempty"`
	TaxIDs     []uuid.UUID      `json:"tax_ids,omitempty"`
	BuyPrice   *decimal.Decimal `json:"buy_price,omitempty"`
	SellPrice  *decimal.Decimal `json:"sell_price,omitempty"`
}

type UpdateSettingsRequest struct {
	Currency           *string `json:"currency,omitempty"`
	ShowTaxBifurcation *bool   `json:"show_tax_bifurcation,omitempty"`
}
