package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scoopdesk/scoopdesk/internal/config"
	"github.com/scoopdesk/scoopdesk/internal/models"
	"github.com/scoopdesk/scoopdesk/internal/scoop"
	"github.com/scoopdesk/scoopdesk/internal/validate"
	"golang.org/x/sync/errgroup"
)

// AppsHandler serves installed-app queries and package operations
type AppsHandler struct {
	runner   CommandRunner
	settings *config.SettingsStore
	cfg      *config.Config
}

// NewAppsHandler creates a new apps handler
func NewAppsHandler(runner CommandRunner, settings *config.SettingsStore, cfg *config.Config) *AppsHandler {
	return &AppsHandler{runner: runner, settings: settings, cfg: cfg}
}

// BatchRequest names the apps a batch operation applies to
type BatchRequest struct {
	Apps []string `json:"apps"`
}

// ResetRequest selects a reset target: a specific version of the app, or a
// related app to switch to
type ResetRequest struct {
	Version   string `json:"version"`
	TargetApp string `json:"target_app"`
}

// List returns all installed apps. `scoop list` and `scoop status` run
// concurrently and are merged into one record per app.
func (h *AppsHandler) List(c *gin.Context) {
	var listOut, statusOut string

	group, ctx := errgroup.WithContext(c.Request.Context())
	group.Go(func() error {
		result, err := h.runner.Run(ctx, []string{"list"}, h.cfg.CommandTimeout)
		if err != nil {
			return err
		}
		listOut = result.Stdout
		return nil
	})
	group.Go(func() error {
		result, err := h.runner.Run(ctx, []string{"status"}, h.cfg.CommandTimeout)
		if err != nil {
			return err
		}
		statusOut = result.Stdout
		return nil
	})
	if err := group.Wait(); err != nil {
		respondCommandError(c, err)
		return
	}

	updates := scoop.ParseStatus(statusOut)
	apps := []models.AppInfo{}
	for _, listed := range scoop.ParseList(listOut) {
		app := models.AppInfo{
			Name:    listed.Name,
			Version: listed.Version,
			Bucket:  listed.Bucket,
			Held:    listed.Held,
		}
		if listed.Updated != "" {
			updated := listed.Updated
			app.Updated = &updated
		}
		if latest, ok := updates[listed.Name]; ok {
			app.HasUpdate = true
			latestVersion := latest
			app.LatestVersion = &latestVersion
		}
		apps = append(apps, app)
	}
	c.JSON(http.StatusOK, apps)
}

// Update updates the named apps
func (h *AppsHandler) Update(c *gin.Context) {
	h.batch(c, "update", "Update failed", h.cfg.LongOpTimeout)
}

// Uninstall uninstalls the named apps
func (h *AppsHandler) Uninstall(c *gin.Context) {
	h.batch(c, "uninstall", "Uninstall failed", h.cfg.LongOpTimeout)
}

// Hold excludes the named apps from updates
func (h *AppsHandler) Hold(c *gin.Context) {
	h.batch(c, "hold", "Hold failed", h.cfg.CommandTimeout)
}

// Unhold re-enables updates for the named apps
func (h *AppsHandler) Unhold(c *gin.Context) {
	h.batch(c, "unhold", "Unhold failed", h.cfg.CommandTimeout)
}

func (h *AppsHandler) batch(c *gin.Context, subcommand, fallback string, timeout time.Duration) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request format"})
		return
	}
	if len(req.Apps) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No apps specified"})
		return
	}
	for _, name := range req.Apps {
		if !validate.AppName(name) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid app name: " + name})
			return
		}
	}

	result, err := h.runner.Run(c.Request.Context(), append([]string{subcommand}, req.Apps...), timeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}
	if result.ExitCode != 0 {
		respondCommandFailure(c, result, fallback)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": result.Stdout})
}

// HoldOne holds a single app addressed by path
func (h *AppsHandler) HoldOne(c *gin.Context) {
	h.singleHold(c, "hold", "Failed to hold app")
}

// UnholdOne unholds a single app addressed by path
func (h *AppsHandler) UnholdOne(c *gin.Context) {
	h.singleHold(c, "unhold", "Failed to unhold app")
}

func (h *AppsHandler) singleHold(c *gin.Context, subcommand, fallback string) {
	name := c.Param("name")
	if !validate.AppName(name) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid app name: " + name})
		return
	}

	result, err := h.runner.Run(c.Request.Context(), []string{subcommand, name}, h.cfg.CommandTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}
	if result.ExitCode != 0 {
		respondCommandFailure(c, result, fallback)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": result.Stdout})
}

// Install installs the app named in the query, optionally at a specific
// version from the body
func (h *AppsHandler) Install(c *gin.Context) {
	name := c.Query("name")
	if !validate.AppName(name) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid app name: " + name})
		return
	}

	var req ResetRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request format"})
			return
		}
	}

	target := name
	if req.Version != "" {
		if !validate.Version(req.Version) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid version: " + req.Version})
			return
		}
		target = name + "@" + req.Version
	}

	result, err := h.runner.Run(c.Request.Context(), []string{"install", target}, h.cfg.InstallTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}
	if result.ExitCode != 0 {
		respondCommandFailure(c, result, "Failed to install app")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": result.Stdout})
}

// Reset switches an app to a specific version, or to a related app
func (h *AppsHandler) Reset(c *gin.Context) {
	name := c.Param("name")
	if !validate.AppName(name) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid app name: " + name})
		return
	}

	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request format"})
		return
	}

	var args []string
	switch {
	case req.TargetApp != "":
		if !validate.AppName(req.TargetApp) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid app name: " + req.TargetApp})
			return
		}
		args = []string{"reset", req.TargetApp}
	case req.Version != "":
		if !validate.Version(req.Version) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid version: " + req.Version})
			return
		}
		args = []string{"reset", name + "@" + req.Version}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Either version or target_app is required"})
		return
	}

	result, err := h.runner.Run(c.Request.Context(), args, h.cfg.InstallTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}
	if result.ExitCode != 0 {
		respondCommandFailure(c, result, "Failed to reset app")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": result.Stdout})
}

// Info returns an app's manifest, preferring the installed copy and falling
// back to `scoop cat`
func (h *AppsHandler) Info(c *gin.Context) {
	name := c.Param("name")
	if !validate.AppName(name) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid app name: " + name})
		return
	}

	if manifest, ok := scoop.ReadManifest(h.cfg.ScoopRoot, name); ok {
		c.JSON(http.StatusOK, manifest)
		return
	}

	result, err := h.runner.Run(c.Request.Context(), []string{"cat", name}, h.cfg.CommandTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}
	if result.ExitCode != 0 {
		respondCommandFailure(c, result, "App not found")
		return
	}

	var manifest map[string]any
	if err := json.Unmarshal([]byte(result.Stdout), &manifest); err != nil {
		c.JSON(http.StatusOK, gin.H{"raw": result.Stdout})
		return
	}
	c.JSON(http.StatusOK, manifest)
}

// Related returns installed apps sharing executables with the named app
func (h *AppsHandler) Related(c *gin.Context) {
	name := c.Param("name")
	if !validate.AppName(name) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid app name: " + name})
		return
	}

	related := []models.RelatedApp{}
	if manifest, ok := scoop.ReadManifest(h.cfg.ScoopRoot, name); ok {
		installed := scoop.ScanInstalled(h.cfg.ScoopRoot)
		for _, app := range scoop.FindRelated(h.cfg.ScoopRoot, name, manifest, installed) {
			related = append(related, models.RelatedApp{
				Name:       app.Name,
				Version:    app.Version,
				Bucket:     app.Bucket,
				SharedBins: app.SharedBins,
			})
		}
	}
	c.JSON(http.StatusOK, related)
}

// Versions searches the configured tool for installable versions of an app:
// the app itself plus its pinned-version variants ("name-*")
func (h *AppsHandler) Versions(c *gin.Context) {
	name := c.Param("name")
	if !validate.AppName(name) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid app name: " + name})
		return
	}

	entries, err := runSearch(c, h.runner, h.settings.Load(), name, h.cfg.SearchTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	versions := []models.VersionInfo{}
	for _, entry := range scoop.FilterVersions(entries, name) {
		versions = append(versions, models.VersionInfo{
			Name:    entry.Name,
			Version: entry.Version,
			Bucket:  entry.Bucket,
		})
	}
	c.JSON(http.StatusOK, versions)
}

// runSearch invokes whichever search tool the settings select and parses
// the matching output shape
func runSearch(c *gin.Context, runner CommandRunner, settings config.Settings, query string, timeout time.Duration) ([]scoop.SearchEntry, error) {
	if settings.SearchCommand == config.SearchCommandScoopSearch {
		result, err := runner.RunCommand(c.Request.Context(), "scoop-search "+query, timeout)
		if err != nil {
			return nil, err
		}
		return scoop.ParseSearchGrouped(result.Stdout), nil
	}

	result, err := runner.Run(c.Request.Context(), []string{"search", query}, timeout)
	if err != nil {
		return nil, err
	}
	return scoop.ParseSearchTable(result.Stdout), nil
}
