package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/scoopdesk/scoopdesk/internal/api/handlers"
	"github.com/scoopdesk/scoopdesk/internal/api/middleware"
	"github.com/scoopdesk/scoopdesk/internal/config"
	"github.com/scoopdesk/scoopdesk/internal/database"
	"github.com/scoopdesk/scoopdesk/internal/database/queries"
	"github.com/scoopdesk/scoopdesk/internal/scoop"
)

func main() {
	var version bool
	flag.BoolVar(&version, "version", false, "Show version information")
	flag.Parse()

	if version {
		fmt.Printf("Scoopdesk Server v0.1.0\n")
		fmt.Printf("Local web control surface for the Scoop package manager\n")
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Connect to the operation log database
	db, err := database.Connect(cfg.LogDBPath())
	if err != nil {
		log.Fatal("Failed to open log database:", err)
	}
	defer db.Close()

	logQueries := queries.NewLogQueries(db.DB)
	settings := config.NewSettingsStore(cfg.SettingsPath())
	runner := scoop.NewRunner()

	// Initialize handlers
	appsHandler := handlers.NewAppsHandler(runner, settings, cfg)
	bucketsHandler := handlers.NewBucketsHandler(runner, cfg)
	searchHandler := handlers.NewSearchHandler(runner, settings, cfg)
	logsHandler := handlers.NewLogsHandler(logQueries)
	settingsHandler := handlers.NewSettingsHandler(settings)
	authHandler := handlers.NewAuthHandler(cfg.APIKey, cfg.JWTSecret)

	// Setup router
	router := gin.Default()
	router.Use(middleware.CORSMiddleware([]string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.Audit(logQueries))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	secured := api.Group("")
	if cfg.APIKey != "" {
		secured.Use(middleware.AuthRequired(cfg.JWTSecret))
		log.Println("API key auth enabled")
	}
	{
		secured.GET("/auth/verify", authHandler.Verify)

		secured.GET("/apps", appsHandler.List)
		secured.POST("/apps/update", appsHandler.Update)
		secured.POST("/apps/uninstall", appsHandler.Uninstall)
		secured.POST("/apps/install", appsHandler.Install)
		secured.POST("/apps/hold", appsHandler.Hold)
		secured.DELETE("/apps/hold", appsHandler.Unhold)
		secured.POST("/apps/:name/hold", appsHandler.HoldOne)
		secured.DELETE("/apps/:name/hold", appsHandler.UnholdOne)
		secured.POST("/apps/:name/reset", appsHandler.Reset)
		secured.GET("/apps/:name/versions", appsHandler.Versions)
		secured.GET("/apps/:name/info", appsHandler.Info)
		secured.GET("/apps/:name/related", appsHandler.Related)

		secured.GET("/buckets", bucketsHandler.List)
		secured.POST("/buckets", bucketsHandler.Add)
		secured.DELETE("/buckets/:name", bucketsHandler.Remove)

		secured.GET("/search", searchHandler.Search)

		secured.GET("/logs", logsHandler.List)
		secured.DELETE("/logs", logsHandler.Clear)

		secured.GET("/settings", settingsHandler.Get)
		secured.POST("/settings", settingsHandler.Update)
	}

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	log.Printf("Scoopdesk server starting on %s (scoop root: %s)", addr, cfg.ScoopRoot)
	if err := router.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
