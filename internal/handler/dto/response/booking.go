package response

import (
	"time"

	"github.com/google/uuid"

	"washdesk/internal/usecase/queries"
)

type BookingResponse struct {
	ID              uuid.UUID   `json:"id"`
	BookingNumber   int64       `json:"bookingNumber"`
	CustomerID      uuid.UUID   `json:"customerId"`
	CustomerName    string      `json:"customerName"`
	ZoneID          uuid.UUID   `json:"zoneId"`
	ZoneName        string      `json:"zoneName"`
	ProductIDs      []uuid.UUID `json:"productIds"`
	StartsAt        time.Time   `json:"startsAt"`
	DurationMinutes int32       `json:"durationMinutes"`
	EndsAt          time.Time   `json:"endsAt"`
	Status          string      `json:"status"`
	CreatedBy       uuid.UUID   `json:"createdBy"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type AvailabilityResponse struct {
	Zones []*ZoneResponse `json:"zones"`
	Count int             `json:"count"`
}

type ZoneResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              rm.ID,
		BookingNumber:   rm.Number,
		CustomerID:      rm.CustomerID,
		CustomerName:    rm.CustomerName,
		ZoneID:          rm.ZoneID,
		ZoneName:        rm.ZoneName,
		ProductIDs:      rm.ProductIDs,
		StartsAt:        rm.StartsAt,
		DurationMinutes: rm.DurationMinutes,
		EndsAt:          rm.EndsAt,
		Status:          rm.Status,
		CreatedBy:       rm.CreatedBy,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromZoneView(rm *queries.ZoneView) *ZoneResponse {
	return &ZoneResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		IsActive:  rm.IsActive,
		CreatedAt: rm.CreatedAt,
	}
}

func FromAvailabilityResult(rm *queries.AvailabilityResult) *AvailabilityResponse {
	zones := make([]*ZoneResponse, len(rm.Zones))
	for i, z := range rm.Zones {
		zones[i] = FromZoneView(z)
	}
	return &AvailabilityResponse{
		Zones: zones,
		Count: rm.Count,
	}
}
