package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/scoopdesk/scoopdesk/internal/database"
	"github.com/scoopdesk/scoopdesk/internal/database/queries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auditTestSetup(t *testing.T) (*gin.Engine, *queries.LogQueries) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(filepath.Join(t.TempDir(), "logs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logs := queries.NewLogQueries(db.DB)
	router := gin.New()
	router.Use(Audit(logs))
	return router, logs
}

func TestAuditLogsClassifiedRequest(t *testing.T) {
	router, logs := auditTestSetup(t)
	router.POST("/api/apps/update", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "git updated"})
	})

	req := httptest.NewRequest("POST", "/api/apps/update",
		bytes.NewBufferString(`{"apps":["git"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	entries, err := logs.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Update apps", entries[0].Operation)
	assert.Equal(t, "scoop update git", entries[0].Command)
	assert.True(t, entries[0].Success)
	assert.Equal(t, "git updated", entries[0].Message)
	assert.NotEmpty(t, entries[0].Time)
}

func TestAuditFailureUsesDetail(t *testing.T) {
	router, logs := auditTestSetup(t)
	router.POST("/api/apps/update", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "scoop: app not found"})
	})

	req := httptest.NewRequest("POST", "/api/apps/update",
		bytes.NewBufferString(`{"apps":["nope"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	entries, err := logs.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Success)
	assert.Equal(t, "scoop: app not found", entries[0].Message)
}

func TestAuditUnclassifiedRequestNotLogged(t *testing.T) {
	router, logs := auditTestSetup(t)
	router.GET("/api/logs", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{})
	})
	router.GET("/api/elsewhere", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for _, path := range []string{"/api/logs", "/api/elsewhere"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	entries, err := logs.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAuditPreservesResponseBytes(t *testing.T) {
	router, _ := auditTestSetup(t)
	const payload = `{"success":true,"message":"exact bytes"}`
	router.POST("/api/apps/update", func(c *gin.Context) {
		c.Header("X-Custom", "kept")
		c.Data(http.StatusOK, "application/json", []byte(payload))
	})

	req := httptest.NewRequest("POST", "/api/apps/update",
		bytes.NewBufferString(`{"apps":["git"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payload, rec.Body.String())
	assert.Equal(t, "kept", rec.Header().Get("X-Custom"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestAuditReexposesRequestBodyToHandler(t *testing.T) {
	router, _ := auditTestSetup(t)

	var seen struct {
		Apps []string `json:"apps"`
	}
	router.POST("/api/apps/update", func(c *gin.Context) {
		require.NoError(t, c.ShouldBindJSON(&seen))
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	req := httptest.NewRequest("POST", "/api/apps/update",
		bytes.NewBufferString(`{"apps":["git","7zip"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"git", "7zip"}, seen.Apps)
}

func TestAuditLogsPanicAndRethrows(t *testing.T) {
	router, logs := auditTestSetup(t)
	router.POST("/api/apps/update", func(c *gin.Context) {
		panic("handler exploded")
	})

	req := httptest.NewRequest("POST", "/api/apps/update",
		bytes.NewBufferString(`{"apps":["git"]}`))
	rec := httptest.NewRecorder()

	assert.PanicsWithValue(t, "handler exploded", func() {
		router.ServeHTTP(rec, req)
	})

	entries, err := logs.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Success)
	assert.Equal(t, "handler exploded", entries[0].Message)
}
