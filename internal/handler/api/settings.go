package api

import (
	"net/http"

	reqdto "washdesk/internal/handler/dto/request"
	"washdesk/internal/usecase/commands"
	"washdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsCommands commands.SettingsCommands
	settingsQueries  queries.SettingsQueries
}

func NewSettingsHandler(settingsCommands commands.SettingsCommands, settingsQueries queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{
		settingsCommands: settingsCommands,
		settingsQueries:  settingsQueries,
	}
}

// @Summary Get settings
// @Description Return shop-wide settings; defaults apply when none are stored
// @Tags settings
// @Produce json
// @Success 200 {object} queries.SettingsView
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	view, err := h.settingsQueries.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSettingsRequest true "Settings request"
// @Success 200 {object} queries.SettingsView
// @Failure 400 {object} map[string]string
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.settingsCommands.Update(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, view)
}
