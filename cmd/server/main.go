package main

import (
	"fmt"
	"log"

	"assetmgr/internal/api/routes"
	"assetmgr/internal/config"
	"assetmgr/internal/models"
	"assetmgr/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	if err := models.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Sessions live in process memory and are lost on restart.
	sessions := services.NewMemorySessionStore(cfg.SessionTTL())

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	r := gin.Default()

	// Setup routes
	routes.SetupRoutes(r, cfg, sessions)

	// Serve uploaded asset documents
	r.Static("/uploads", cfg.Paths.Uploads)

	// Run server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting asset management server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
