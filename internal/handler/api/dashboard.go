package api

import (
	"net/http"

	"washdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{dashboardQueries: dashboardQueries}
}

// @Summary Dashboard statistics
// @Description Aggregate counts and revenue for the operator dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DashboardStatsView
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	view, err := h.dashboardQueries.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}
