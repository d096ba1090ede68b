package routes

import (
	"assetmgr/internal/api/handlers"
	"assetmgr/internal/api/middleware"
	"assetmgr/internal/config"
	"assetmgr/internal/models"
	"assetmgr/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, sessions services.SessionStore) {
	// Initialize services
	authService := services.NewAuthService(cfg, sessions)
	assetService := services.NewAssetService(cfg, services.NewLocalFileStore(cfg.Paths.Uploads))
	assignmentService := services.NewAssignmentService(cfg)
	maintenanceService := services.NewMaintenanceService(cfg)
	inventoryService := services.NewInventoryService(cfg)
	requisitionService := services.NewRequisitionService(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler()
	assetHandler := handlers.NewAssetHandler(assetService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	requisitionHandler := handlers.NewRequisitionHandler(requisitionService)

	// Middleware
	r.Use(middleware.CORSMiddleware())

	// Public routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Asset Management Backend Running"})
	})
	r.GET("/health", healthHandler.GetHealth)

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Read endpoints are open; only mutating endpoints require a session.
	r.GET("/assets", assetHandler.GetAssets)
	r.GET("/assets/:asset_id", assetHandler.GetAsset)
	r.GET("/assignments", assignmentHandler.GetAssignments)
	r.GET("/maintenance", maintenanceHandler.GetMaintenance)
	r.GET("/maintenance/reminders", maintenanceHandler.GetReminders)
	r.GET("/alerts/low-inventory", inventoryHandler.GetLowInventory)
	r.GET("/requisitions", requisitionHandler.GetRequisitions)

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/me", authHandler.GetMe)

		managers := protected.Group("")
		managers.Use(middleware.RequireRole(models.RoleAdmin, models.RoleManager))
		{
			managers.POST("/assets", assetHandler.CreateAsset)
			managers.POST("/assets/:asset_id/documents", assetHandler.UploadDocument)
			managers.POST("/assignments", assignmentHandler.CreateAssignment)
			managers.POST("/assignments/:asset_id/return", assignmentHandler.ReturnAsset)
			managers.POST("/maintenance", maintenanceHandler.CreateMaintenance)
			managers.POST("/inventory-thresholds", inventoryHandler.UpsertThreshold)
		}

		staff := protected.Group("")
		staff.Use(middleware.RequireRole(models.RoleAdmin, models.RoleManager, models.RoleStaff))
		{
			staff.POST("/requisitions", requisitionHandler.CreateRequisition)
		}
	}
}
