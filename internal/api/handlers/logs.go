package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/scoopdesk/scoopdesk/internal/database/queries"
)

// LogsHandler serves the operation history
type LogsHandler struct {
	logs *queries.LogQueries
}

// NewLogsHandler creates a new logs handler
func NewLogsHandler(logs *queries.LogQueries) *LogsHandler {
	return &LogsHandler{logs: logs}
}

// List returns the most recent operation log entries, newest first
func (h *LogsHandler) List(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid limit"})
			return
		}
		limit = parsed
	}

	entries, err := h.logs.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Clear deletes the entire operation history
func (h *LogsHandler) Clear(c *gin.Context) {
	if err := h.logs.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
