package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scoopdesk/scoopdesk/internal/config"
	"github.com/scoopdesk/scoopdesk/internal/models"
	"github.com/scoopdesk/scoopdesk/internal/validate"
)

// SearchHandler serves app search using the configured search tool
type SearchHandler struct {
	runner   CommandRunner
	settings *config.SettingsStore
	cfg      *config.Config
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(runner CommandRunner, settings *config.SettingsStore, cfg *config.Config) *SearchHandler {
	return &SearchHandler{runner: runner, settings: settings, cfg: cfg}
}

// Search finds apps matching the q query parameter
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" || !validate.SearchQuery(query) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid search query"})
		return
	}

	entries, err := runSearch(c, h.runner, h.settings.Load(), query, h.cfg.SearchTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	results := []models.SearchResult{}
	for _, entry := range entries {
		results = append(results, models.SearchResult{
			Name:    entry.Name,
			Version: entry.Version,
			Bucket:  entry.Bucket,
		})
	}
	c.JSON(http.StatusOK, results)
}
