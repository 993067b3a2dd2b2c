package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "washdesk/internal/handler/dto/request"
	resdto "washdesk/internal/handler/dto/response"
	"washdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Available zones
// @Description List active zones free for a candidate slot, in stored order
// @Tags zones
// @Produce json
// @Security BearerAuth
// @Param starts_at query string true "Slot start (RFC3339)"
// @Param duration_minutes query int false "Slot length, default 60"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /zones/available [get]
func (h *AvailabilityHandler) AvailableZones(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability query"})
		return
	}

	slot, err := req.Slot()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time slot"})
		return
	}

	result, err := h.availabilityQueries.AvailableZones(c.Request.Context(), slot)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidSlot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time slot"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityResult(result))
}

func parseInt32(s string) int32 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0
	}
	return int32(v)
}
