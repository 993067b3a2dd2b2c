package api

import (
	"errors"
	"net/http"

	reqdto "washdesk/internal/handler/dto/request"
	resdto "washdesk/internal/handler/dto/response"
	"washdesk/internal/usecase/commands"
	"washdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ZoneHandler struct {
	zoneCommands commands.ZoneCommands
	zoneQueries  queries.ZoneQueries
}

func NewZoneHandler(zoneCommands commands.ZoneCommands, zoneQueries queries.ZoneQueries) *ZoneHandler {
	return &ZoneHandler{
		zoneCommands: zoneCommands,
		zoneQueries:  zoneQueries,
	}
}

// @Summary Create zone
// @Tags zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateZoneRequest true "Zone request"
// @Success 201 {object} resdto.ZoneResponse
// @Failure 400 {object} map[string]string
// @Router /zones [post]
func (h *ZoneHandler) Create(c *gin.Context) {
	var req reqdto.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.zoneCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromZoneView(view))
}

// @Summary List zones
// @Description List all zones in stored order
// @Tags zones
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ZoneResponse
// @Router /zones [get]
func (h *ZoneHandler) List(c *gin.Context) {
	views, err := h.zoneQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.ZoneResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromZoneView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get zone
// @Tags zones
// @Produce json
// @Security BearerAuth
// @Param id path string true "Zone ID"
// @Success 200 {object} resdto.ZoneResponse
// @Failure 404 {object} map[string]string
// @Router /zones/{id} [get]
func (h *ZoneHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zone ID format"})
		return
	}

	view, err := h.zoneQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrZoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromZoneView(view))
}

// @Summary Update zone
// @Description Rename or toggle a zone; deactivating leaves existing bookings untouched
// @Tags zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Zone ID"
// @Param request body reqdto.UpdateZoneRequest true "Update request"
// @Success 200 {object} resdto.ZoneResponse
// @Failure 404 {object} map[string]string
// @Router /zones/{id} [put]
func (h *ZoneHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zone ID format"})
		return
	}

	var req reqdto.UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.zoneCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromZoneView(view))
}

// @Summary Delete zone
// @Tags zones
// @Produce json
// @Security BearerAuth
// @Param id path string true "Zone ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /zones/{id} [delete]
func (h *ZoneHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zone ID format"})
		return
	}

	if err := h.zoneCommands.Delete(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ZoneHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrZoneNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
	case errors.Is(err, commands.ErrZoneInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "Zone has bookings and cannot be deleted"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
