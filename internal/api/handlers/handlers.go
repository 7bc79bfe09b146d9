// Package handlers implements the HTTP API. Every route responds with
// either a structured success payload or an error payload carrying a
// "detail" message and a status of 400 or higher; the audit middleware
// depends on that contract.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scoopdesk/scoopdesk/internal/scoop"
)

// CommandRunner executes external package manager commands
type CommandRunner interface {
	Run(ctx context.Context, args []string, timeout time.Duration) (*scoop.Result, error)
	RunCommand(ctx context.Context, commandLine string, timeout time.Duration) (*scoop.Result, error)
}

// respondCommandError maps runner-level failures to response statuses:
// timeout to 504, launch failures to 500
func respondCommandError(c *gin.Context, err error) {
	if errors.Is(err, scoop.ErrTimeout) {
		c.JSON(http.StatusGatewayTimeout, gin.H{"detail": "Command timed out"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}

// respondCommandFailure surfaces a non-zero exit as a 400 with the tool's
// own stderr text when it produced any
func respondCommandFailure(c *gin.Context, result *scoop.Result, fallback string) {
	detail := result.Stderr
	if detail == "" {
		detail = fallback
	}
	c.JSON(http.StatusBadRequest, gin.H{"detail": detail})
}
