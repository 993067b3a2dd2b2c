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

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary Create category
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCategoryRequest true "Category request"
// @Success 201 {object} queries.CategoryView
// @Failure 400 {object} map[string]string
// @Router /categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CategoryView
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	views, err := h.catalogQueries.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create tax
// @Description Register a tax rate; percentage must be between 0 and 100
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTaxRequest true "Tax request"
// @Success 201 {object} queries.TaxView
// @Failure 400 {object} map[string]string
// @Router /taxes [post]
func (h *CatalogHandler) CreateTax(c *gin.Context) {
	var req reqdto.CreateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.CreateTax(c.Request.Context(), req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List taxes
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.TaxView
// @Router /taxes [get]
func (h *CatalogHandler) ListTaxes(c *gin.Context) {
	views, err := h.catalogQueries.ListTaxes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create product
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Product request"
// @Success 201 {object} queries.ProductView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List products
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param category_id query string false "Filter by category"
// @Success 200 {array} queries.ProductView
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var categoryID *uuid.UUID
	if v := c.Query("category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}
		categoryID = &id
	}

	views, err := h.catalogQueries.ListProducts(c.Request.Context(), categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get product
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} queries.ProductView
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	view, err := h.catalogQueries.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Update product
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateProductRequest true "Update request"
// @Success 200 {object} queries.ProductView
// @Failure 404 {object} map[string]string
// @Router /products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	var req reqdto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete product
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	if err := h.catalogCommands.DeleteProduct(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, commands.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
	case errors.Is(err, commands.ErrDuplicateCode):
		c.JSON(http.StatusConflict, gin.H{"error": "Product code already exists"})
	case errors.Is(err, commands.ErrProductInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "Product is referenced and cannot be deleted"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
