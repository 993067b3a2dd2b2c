package api

import (
	"errors"
	"net/http"

	reqdto "washdesk/internal/handler/dto/request"
	"washdesk/internal/usecase/commands"
	"washdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customerCommands commands.CustomerCommands
	customerQueries  queries.CustomerQueries
}

func NewCustomerHandler(customerCommands commands.CustomerCommands, customerQueries queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{
		customerCommands: customerCommands,
		customerQueries:  customerQueries,
	}
}

// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCustomerRequest true "Customer request"
// @Success 201 {object} queries.CustomerView
// @Failure 400 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.customerCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List customers
// @Description List customers, optionally matching name, phone or email
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term"
// @Success 200 {array} queries.CustomerView
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var search *string
	if v := c.Query("search"); v != "" {
		search = &v
	}

	page := queries.Page{
		Limit:  parseInt32(c.Query("limit")),
		Offset: parseInt32(c.Query("offset")),
	}

	views, err := h.customerQueries.List(c.Request.Context(), search, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} queries.CustomerView
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
		return
	}

	view, err := h.customerQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Update customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.UpdateCustomerRequest true "Update request"
// @Success 200 {object} queries.CustomerView
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
		return
	}

	var req reqdto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.customerCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
		return
	}

	if err := h.customerCommands.Delete(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
