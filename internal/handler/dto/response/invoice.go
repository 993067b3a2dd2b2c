package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"washdesk/internal/usecase/queries"
)

type InvoiceItemResponse struct {
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	Total       decimal.Decimal `json:"total"`
}

type InvoiceResponse struct {
	ID                 uuid.UUID             `json:"id"`
	InvoiceNumber      int64                 `json:"invoiceNumber"`
	InvoicePrefix      string                `json:"invoicePrefix"`
	BookingID          *uuid.UUID            `json:"bookingId,omitempty"`
	CustomerID         uuid.UUID             `json:"customerId"`
	CustomerName       string                `json:"customerName"`
	Items              []InvoiceItemResponse `json:"items"`
	Subtotal           decimal.Decimal       `json:"subtotal"`
	TaxTotal           decimal.Decimal       `json:"taxTotal"`
	DiscountPercentage decimal.Decimal       `json:"discountPercentage"`
	DiscountAmount     decimal.Decimal       `json:"discountAmount"`
	GrandTotal         decimal.Decimal       `json:"grandTotal"`
	CreatedBy          uuid.UUID             `json:"createdBy"`
	CreatedAt          time.Time             `json:"createdAt"`
}

func FromInvoiceView(rm *queries.InvoiceView) *InvoiceResponse {
	items := make([]InvoiceItemResponse, len(rm.Items))
	for i, item := range rm.Items {
		items[i] = InvoiceItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			TaxAmount:   item.TaxAmount,
			Total:       item.Total,
		}
	}
	return &InvoiceResponse{
		ID:                 rm.ID,
		InvoiceNumber:      rm.Number,
		InvoicePrefix:      rm.Prefix,
		BookingID:          rm.BookingID,
		CustomerID:         rm.CustomerID,
		CustomerName:       rm.CustomerName,
		Items:              items,
		Subtotal:           rm.Subtotal,
		TaxTotal:           rm.TaxTotal,
		DiscountPercentage: rm.DiscountPercentage,
		DiscountAmount:     rm.DiscountAmount,
		GrandTotal:         rm.GrandTotal,
		CreatedBy:          rm.CreatedBy,
		CreatedAt:          rm.CreatedAt,
	}
}
