package api

import (
	"errors"
	"net/http"

	reqdto "washdesk/internal/handler/dto/request"
	resdto "washdesk/internal/handler/dto/response"
	"washdesk/internal/handler/middleware"
	"washdesk/internal/usecase/commands"
	"washdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	invoiceCommands commands.InvoiceCommands
	invoiceQueries  queries.InvoiceQueries
}

func NewInvoiceHandler(invoiceCommands commands.InvoiceCommands, invoiceQueries queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceCommands: invoiceCommands,
		invoiceQueries:  invoiceQueries,
	}
}

// @Summary Create invoice
// @Description Bill a booking and persist an immutable invoice; discount, price override and service substitution need manager role
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateInvoiceRequest true "Invoice request"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.invoiceCommands.Create(c.Request.Context(), req, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Discount, price override or service substitution requires manager role"})
		case errors.Is(err, commands.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, commands.ErrTaxNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Tax not found"})
		case errors.Is(err, commands.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrInvalidDiscount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discount percentage must be between 0 and 100"})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromInvoiceView(view))
}

// @Summary List invoices
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param customer_id query string false "Filter by customer"
// @Success 200 {array} resdto.InvoiceResponse
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	var customerID *uuid.UUID
	if v := c.Query("customer_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id"})
			return
		}
		customerID = &id
	}

	page := queries.Page{
		Limit:  parseInt32(c.Query("limit")),
		Offset: parseInt32(c.Query("offset")),
	}

	views, err := h.invoiceQueries.List(c.Request.Context(), customerID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.InvoiceResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromInvoiceView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 404 {object} map[string]string
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID format"})
		return
	}

	view, err := h.invoiceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary Latest invoice prefix
// @Description Report the most recent prefix and the next invoice number
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.LatestPrefixView
// @Router /invoices/latest-prefix [get]
func (h *InvoiceHandler) LatestPrefix(c *gin.Context) {
	view, err := h.invoiceQueries.LatestPrefix(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}
