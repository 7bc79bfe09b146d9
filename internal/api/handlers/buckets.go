package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scoopdesk/scoopdesk/internal/config"
	"github.com/scoopdesk/scoopdesk/internal/models"
	"github.com/scoopdesk/scoopdesk/internal/scoop"
	"github.com/scoopdesk/scoopdesk/internal/validate"
)

// BucketsHandler serves bucket queries and management
type BucketsHandler struct {
	runner CommandRunner
	cfg    *config.Config
}

// NewBucketsHandler creates a new buckets handler
func NewBucketsHandler(runner CommandRunner, cfg *config.Config) *BucketsHandler {
	return &BucketsHandler{runner: runner, cfg: cfg}
}

// AddBucketRequest names a bucket to add, with an optional source URL for
// buckets not known to scoop
type AddBucketRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url"`
}

// List returns all configured buckets
func (h *BucketsHandler) List(c *gin.Context) {
	result, err := h.runner.Run(c.Request.Context(), []string{"bucket", "list"}, h.cfg.CommandTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	buckets := []models.BucketInfo{}
	for _, row := range scoop.ParseBuckets(result.Stdout) {
		bucket := models.BucketInfo{
			Name:      row.Name,
			Source:    row.Source,
			Manifests: row.Manifests,
		}
		if row.Updated != "" {
			updated := row.Updated
			bucket.Updated = &updated
		}
		buckets = append(buckets, bucket)
	}
	c.JSON(http.StatusOK, buckets)
}

// Add registers a new bucket
func (h *BucketsHandler) Add(c *gin.Context) {
	var req AddBucketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request format"})
		return
	}
	if !validate.BucketName(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid bucket name: " + req.Name})
		return
	}

	args := []string{"bucket", "add", req.Name}
	if req.URL != "" {
		if !validate.URL(req.URL) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid URL: " + req.URL})
			return
		}
		args = append(args, req.URL)
	}

	result, err := h.runner.Run(c.Request.Context(), args, h.cfg.InstallTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}
	if result.ExitCode != 0 {
		respondCommandFailure(c, result, "Failed to add bucket")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": result.Stdout})
}

// Remove deletes a bucket
func (h *BucketsHandler) Remove(c *gin.Context) {
	name := c.Param("name")
	if !validate.BucketName(name) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid bucket name: " + name})
		return
	}

	result, err := h.runner.Run(c.Request.Context(), []string{"bucket", "rm", name}, h.cfg.CommandTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}
	if result.ExitCode != 0 {
		respondCommandFailure(c, result, "Failed to remove bucket")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": result.Stdout})
}
