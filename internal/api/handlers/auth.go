package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scoopdesk/scoopdesk/internal/api/middleware"
)

// AuthHandler exchanges the configured API key for a session token. It is
// only wired up when an API key is set; local setups run without auth.
type AuthHandler struct {
	apiKey    string
	jwtSecret string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(apiKey, jwtSecret string) *AuthHandler {
	return &AuthHandler{apiKey: apiKey, jwtSecret: jwtSecret}
}

// LoginRequest carries the API key
type LoginRequest struct {
	Key string `json:"key" binding:"required"`
}

// Login validates the API key and issues a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request format"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Key), []byte(h.apiKey)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid API key"})
		return
	}

	token, err := middleware.GenerateSessionToken(h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Verify reports whether the caller's session is valid; the auth middleware
// has already rejected invalid ones
func (h *AuthHandler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"valid": true})
}
