package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type ZoneView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type TaxView struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ProductView struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Code         string           `json:"code"`
	CategoryID   uuid.UUID        `json:"category_id"`
	CategoryName string           `json:"category_name"`
	TaxIDs       []uuid.UUID      `json:"tax_ids"`
	BuyPrice     *decimal.Decimal `json:"buy_price,omitempty"`
	SellPrice    decimal.Decimal  `json:"sell_price"`
	CreatedAt    time.Time        `json:"created_at"`
}

type BookingView struct {
	ID              uuid.UUID   `json:"id"`
	Number          int64       `json:"booking_number"`
	CustomerID      uuid.UUID   `json:"customer_id"`
	CustomerName    string      `json:"customer_name"`
	ZoneID          uuid.UUID   `json:"zone_id"`
	ZoneName        string      `json:"zone_name"`
	ProductIDs      []uuid.UUID `json:"product_ids"`
	StartsAt        time.Time   `json:"starts_at"`
	DurationMinutes int32       `json:"duration_minutes"`
	EndsAt          time.Time   `json:"ends_at"`
	Status          string      `json:"status"`
	CreatedBy       uuid.UUID   `json:"created_by"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type InvoiceItemView struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Total       decimal.Decimal `json:"total"`
}

type InvoiceView struct {
	ID                 uuid.UUID         `json:"id"`
	Number             int64             `json:"invoice_number"`
	Prefix             string            `json:"invoice_prefix"`
	BookingID          *uuid.UUID        `json:"booking_id,omitempty"`
	CustomerID         uuid.UUID         `json:"customer_id"`
	CustomerName       string            `json:"customer_name"`
	Items              []InvoiceItemView `json:"items"`
	Subtotal           decimal.Decimal   `json:"subtotal"`
	TaxTotal           decimal.Decimal   `json:"tax_total"`
	DiscountPercentage decimal.Decimal   `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal   `json:"discount_amount"`
	GrandTotal         decimal.Decimal   `json:"grand_total"`
	CreatedBy          uuid.UUID         `json:"created_by"`
	CreatedAt          time.Time         `json:"created_at"`
}

type SettingsView struct {
	Currency           string    `json:"currency"`
	ShowTaxBifurcation bool      `json:"show_tax_bifurcation"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type DashboardStatsView struct {
	Customers         int64 `json:"customers"`
	Zones             int64 `json:"zones"`
	ActiveZones       int64 `json:"active_zones"`
	Bookings          int64 `json:"bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
	CancelledBookings int64 `json:"cancelled_bookings"`
	Invoices          int64 `json:"invoices"`
}

// Page is offset pagination shared by the list queries.
type Page struct {
	Limit  int32
	Offset int32
}

func (p Page) Normalized() Page {
	if p.Limit <= 0 || p.Limit > 200 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
