package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scoopdesk/scoopdesk/internal/config"
)

// SettingsHandler serves the user settings file
type SettingsHandler struct {
	settings *config.SettingsStore
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *config.SettingsStore) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// SettingsRequest updates the user preferences
type SettingsRequest struct {
	SearchCommand string `json:"search_command" binding:"required"`
	TurboMode     bool   `json:"turbo_mode"`
}

// Get returns the current settings
func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Load())
}

// Update replaces the stored settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request format"})
		return
	}
	if req.SearchCommand != config.SearchCommandScoop && req.SearchCommand != config.SearchCommandScoopSearch {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "unknown search command: " + req.SearchCommand})
		return
	}

	if err := h.settings.Save(config.Settings{
		SearchCommand: req.SearchCommand,
		TurboMode:     req.TurboMode,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
