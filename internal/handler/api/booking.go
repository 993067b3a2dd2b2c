package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "washdesk/internal/handler/dto/request"
	resdto "washdesk/internal/handler/dto/response"
	"washdesk/internal/handler/middleware"
	"washdesk/internal/usecase/commands"
	"washdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a wash zone for a time slot
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), req, userID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings with optional filters
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param zone_id query string false "Filter by zone"
// @Param customer_id query string false "Filter by customer"
// @Param status query string false "Filter by status"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	filter, page, err := parseBookingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	views, err := h.bookingQueries.List(c.Request.Context(), filter, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromBookingView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking
// @Description Reschedule or modify a booking; schedule changes re-run the conflict check
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Update request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a booking, freeing its slot; the record and number are kept
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingConflict):
		detail := gin.H{}
		var conflict *commands.SlotConflictError
		if errors.As(err, &conflict) {
			detail["blockingWindow"] = conflict.Window
			detail["blockingBookingId"] = conflict.BookingID
		}
		c.JSON(http.StatusConflict, gin.H{"error": "Time slot is already booked", "detail": detail})
	case errors.Is(err, commands.ErrZoneNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
	case errors.Is(err, commands.ErrZoneInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Zone is not active"})
	case errors.Is(err, commands.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, commands.ErrInvalidTimeSlot):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time slot"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func parseBookingFilter(c *gin.Context) (queries.BookingFilter, queries.Page, error) {
	var filter queries.BookingFilter
	var page queries.Page

	if v := c.Query("zone_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, page, errors.New("invalid zone_id")
		}
		filter.ZoneID = &id
	}
	if v := c.Query("customer_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, page, errors.New("invalid customer_id")
		}
		filter.CustomerID = &id
	}
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, page, errors.New("invalid from timestamp")
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, page, errors.New("invalid to timestamp")
		}
		filter.To = &t
	}

	page.Limit = parseInt32(c.Query("limit"))
	page.Offset = parseInt32(c.Query("offset"))
	return filter, page, nil
}
