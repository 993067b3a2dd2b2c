//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	"washdesk/internal/domain/user"
	"washdesk/internal/handler/dto/request"
	"washdesk/internal/handler/dto/response"
	"washdesk/tests/common/authtest"
	"washdesk/tests/common/dbtest"
	"washdesk/tests/common/httptest"
	"washdesk/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	invoicesURL = "/api/invoices"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) startOfDay() time.Time {
	return time.Now().UTC().AddDate(0, 0, 1).Truncate(24 * time.Hour).Add(9 * time.Hour)
}

func (s *BookingSuite) createBookingReq(customerID, zoneID, productID uuid.UUID, startsAt time.Time, minutes int) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		CustomerID:      customerID,
		ZoneID:          zoneID,
		ProductIDs:      []uuid.UUID{productID},
		StartsAt:        startsAt,
		DurationMinutes: &minutes,
	}
}

// =============================================================================
// TestCreateBooking - booking creation and conflict detection
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking is created with a sequential number", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
		zoneID := dbtest.CreateTestZone(t, s.DB, "Bay 1", true)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Dana Fisher", "+15550001")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, "Premium Wash", "PW-01", "25.00", "18")

		start := s.startOfDay()
		reqBody := s.createBookingReq(customerID, zoneID, productID, start, 60)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, int64(1), created.BookingNumber)
		require.Equal(t, "Pending", created.Status)
		require.Equal(t, start.Add(60*time.Minute), created.EndsAt.UTC())

		// A second booking in another zone keeps the counter moving.
		otherZoneID := dbtest.CreateTestZone(t, s.DB, "Bay 2", true)
		reqBody2 := s.createBookingReq(customerID, otherZoneID, productID, start, 60)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody2, token)
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())

		var second response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &second))
		require.Equal(t, int64(2), second.BookingNumber)
	})

	s.Run("Error case: overlapping booking in the same zone is rejected", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
		zoneID := dbtest.CreateTestZone(t, s.DB, "Bay 1", true)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Dana Fisher", "+15550001")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, "Premium Wash", "PW-01", "25.00", "18")

		start := s.startOfDay()
		first := s.createBookingReq(customerID, zoneID, productID, start, 60)
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, first, token)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		var firstCreated response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &firstCreated))

		// Starts inside the first window.
		overlapping := s.createBookingReq(customerID, zoneID, productID, start.Add(30*time.Minute), 60)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, overlapping, token)
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())
		require.Contains(t, w2.Body.String(), firstCreated.ID.String(),
			"conflict response should name the blocking booking")
	})

	s.Run("Normal case: back-to-back bookings do not conflict", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
		zoneID := dbtest.CreateTestZone(t, s.DB, "Bay 1", true)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Dana Fisher", "+15550001")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, "Premium Wash", "PW-01", "25.00", "18")

		start := s.startOfDay()
		first := s.createBookingReq(customerID, zoneID, productID, start, 60)
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, first, token)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		// Starts exactly when the first one ends.
		adjacent := s.createBookingReq(customerID, zoneID, productID, start.Add(60*time.Minute), 60)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, adjacent, token)
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())
	})

	s.Run("Error case: inactive zone cannot be booked", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
		zoneID := dbtest.CreateTestZone(t, s.DB, "Closed Bay", false)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Dana Fisher", "+15550001")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, "Premium Wash", "PW-01", "25.00", "18")

		reqBody := s.createBookingReq(customerID, zoneID, productID, s.startOfDay(), 60)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Auth test: unauthorized when not logged in", func() {
		t := s.T()

		zoneID := dbtest.CreateTestZone(t, s.DB, "Bay 1", true)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Dana Fisher", "+15550001")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, "Premium Wash", "PW-01", "25.00", "18")

		reqBody := s.createBookingReq(customerID, zoneID, productID, s.startOfDay(), 60)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *BookingSuite) mustCreateBooking(token string, reqBody request.CreateBookingRequest) response.BookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

// =============================================================================
// TestRescheduleBooking - updates re-run the conflict check
// =============================================================================

func (s *BookingSuite) TestRescheduleBooking() {
	s.Run("Error case: rescheduling into another booking's window is rejected", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
		zoneID := dbtest.CreateTestZone(t, s.DB, "Bay 1", true)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Dana Fisher", "+15550001")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, "Premium Wash", "PW-01", "25.00", "18")

		start := s.startOfDay()
		first := s.mustCreateBooking(token, s.createBookingReq(customerID, zoneID, productID, start, 60))
		blocker := s.mustCreateBooking(token, s.createBookingReq(customerID, zoneID, productID, start.Add(60*time.Minute), 60))

		// Move the first booking so it would overlap the second.
		newStart := start.Add(90 * time.Minute)
		updateReq := request.UpdateBookingRequest{StartsAt: &newStart}
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingsURL+"/"+first.ID.String(), updateReq, token)
		require.Equal(t, http.StatusConflict, uw.Code, uw.Body.String())
		require.Contains(t, uw.Body.String(), blocker.ID.String(),
			"conflict response should name the blocking booking")

		// The rejected reschedule must not have moved the booking.
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+first.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, gw.Code)

		var unchanged response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &unchanged))
		require.Equal(t, start, unchanged.StartsAt.UTC())
	})

	s.Run("Normal case: a booking may shift within its own window", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
		zoneID := dbtest.CreateTestZone(t, s.DB, "Bay 1", true)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Dana Fisher", "+15550001")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, "Premium Wash", "PW-01", "25.00", "18")

		start := s.startOfDay()
		created := s.mustCreateBooking(token, s.createBookingReq(customerID, zoneID, productID, start, 60))

		// The new window overlaps only the booking's own old one.
		newStart := start.Add(30 * time.Minute)
		updateReq := request.UpdateBookingRequest{StartsAt: &newStart}
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingsURL+"/"+created.ID.String(), updateReq, token)
		require.Equal(t, http.StatusOK, uw.Code, uw.Body.String())

		var moved response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, uw.Body, &moved))
		require.Equal(t, newStart, moved.StartsAt.UTC())
	})
}

// =============================================================================
// TestCancelBooking - cancellation frees the slot
// =============================================================================

func (s *BookingSuite) TestCancelBooking() {
	s.Run("Normal case: a cancelled booking no longer blocks its window", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
		zoneID := dbtest.CreateTestZone(t, s.DB, "Bay 1", true)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Dana Fisher", "+15550001")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, "Premium Wash", "PW-01", "25.00", "18")

		start := s.startOfDay()
		reqBody := s.createBookingReq(customerID, zoneID, productID, start, 60)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		// The exact same window is bookable again.
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, rw.Code, rw.Body.String())
	})
}

// =============================================================================
// TestCreateInvoice - invoice arithmetic and policy over the full stack
// =============================================================================

func (s *BookingSuite) TestCreateInvoice() {
	s.Run("Normal case: totals match the catalog price, tax and discount", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))
		zoneID := dbtest.CreateTestZone(t, s.DB, "Bay 1", true)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Dana Fisher", "+15550001")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, "Premium Wash", "PW-01", "25.00", "18")

		booked := s.mustCreateBooking(token, s.createBookingReq(customerID, zoneID, productID, s.startOfDay(), 60))

		discount := decimal.RequireFromString("10")
		reqBody := request.CreateInvoiceRequest{
			BookingID:          booked.ID,
			DiscountPercentage: &discount,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.InvoiceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		require.Equal(t, int64(1), created.InvoiceNumber)
		require.Equal(t, customerID, created.CustomerID)
		require.True(t, created.Subtotal.Equal(decimal.RequireFromString("25.00")), "subtotal: %s", created.Subtotal)
		require.True(t, created.TaxTotal.Equal(decimal.RequireFromString("4.50")), "tax total: %s", created.TaxTotal)
		require.True(t, created.DiscountAmount.Equal(decimal.RequireFromString("2.95")), "discount: %s", created.DiscountAmount)
		require.True(t, created.GrandTotal.Equal(decimal.RequireFromString("26.55")), "grand total: %s", created.GrandTotal)
	})

	s.Run("Normal case: invoicing a booking settles it", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))
		zoneID := dbtest.CreateTestZone(t, s.DB, "Bay 1", true)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Dana Fisher", "+15550001")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, "Premium Wash", "PW-01", "25.00", "18")

		booked := s.mustCreateBooking(token, s.createBookingReq(customerID, zoneID, productID, s.startOfDay(), 60))

		// No charge list: the booking is billed as booked.
		invoiceReq := request.CreateInvoiceRequest{BookingID: booked.ID}
		iw := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL, invoiceReq, token)
		require.Equal(t, http.StatusCreated, iw.Code, iw.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+booked.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, gw.Code)

		var settled response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &settled))
		require.Equal(t, "Completed", settled.Status)

		// Settling only flips the status; everything else stays as booked.
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "Status", "UpdatedAt"),
		}
		if diff := cmp.Diff(&booked, &settled, opts...); diff != "" {
			t.Errorf("booking changed beyond settlement (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: staff cannot apply a discount", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
		zoneID := dbtest.CreateTestZone(t, s.DB, "Bay 1", true)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Dana Fisher", "+15550001")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, "Premium Wash", "PW-01", "25.00", "18")

		booked := s.mustCreateBooking(token, s.createBookingReq(customerID, zoneID, productID, s.startOfDay(), 60))

		discount := decimal.RequireFromString("10")
		reqBody := request.CreateInvoiceRequest{
			BookingID:          booked.ID,
			DiscountPercentage: &discount,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL, reqBody, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: staff cannot swap the booked services", func() {
		t := s.T()

		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
		managerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))
		zoneID := dbtest.CreateTestZone(t, s.DB, "Bay 1", true)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Dana Fisher", "+15550001")
		bookedProductID, _ := dbtest.CreateTestProduct(t, s.DB, "Premium Wash", "PW-01", "25.00", "18")
		otherProductID, _ := dbtest.CreateTestProduct(t, s.DB, "Wax Finish", "WX-01", "40.00", "18")

		booked := s.mustCreateBooking(staffToken, s.createBookingReq(customerID, zoneID, bookedProductID, s.startOfDay(), 60))

		reqBody := request.CreateInvoiceRequest{
			BookingID: booked.ID,
			Charges:   []request.InvoiceChargeRequest{{ProductID: otherProductID}},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL, reqBody, staffToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		// A manager may substitute, and the swapped service is what gets billed.
		mw := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL, reqBody, managerToken)
		require.Equal(t, http.StatusCreated, mw.Code, mw.Body.String())

		var created response.InvoiceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &created))
		require.True(t, created.Subtotal.Equal(decimal.RequireFromString("40.00")), "subtotal: %s", created.Subtotal)
	})

	s.Run("Normal case: invoice numbers are sequential", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(user.RoleManager))
		zoneID := dbtest.CreateTestZone(t, s.DB, "Bay 1", true)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Dana Fisher", "+15550001")
		productID, _ := dbtest.CreateTestProduct(t, s.DB, "Premium Wash", "PW-01", "25.00", "18")

		start := s.startOfDay()
		for expected := int64(1); expected <= 3; expected++ {
			booked := s.mustCreateBooking(token, s.createBookingReq(
				customerID, zoneID, productID, start.Add(time.Duration(expected)*time.Hour), 60))

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
				request.CreateInvoiceRequest{BookingID: booked.ID}, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

			var created response.InvoiceResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
			require.Equal(t, expected, created.InvoiceNumber)
		}
	})
}
