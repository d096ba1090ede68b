package handlers

import (
	"errors"
	"strconv"

	"assetmgr/internal/services"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
}

func NewMaintenanceHandler(maintenanceService *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

type CreateMaintenanceRequest struct {
	AssetID         string   `json:"asset_id" binding:"required"`
	ServiceDate     string   `json:"service_date" binding:"required"`
	ServiceType     string   `json:"service_type"`
	Cost            *float64 `json:"cost"`
	Notes           string   `json:"notes"`
	NextServiceDate string   `json:"next_service_date"`
}

// CreateMaintenance records a maintenance event
func (h *MaintenanceHandler) CreateMaintenance(c *gin.Context) {
	var req CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	record, err := h.maintenanceService.CreateMaintenance(&services.CreateMaintenanceData{
		AssetID:         req.AssetID,
		ServiceDate:     req.ServiceDate,
		ServiceType:     req.ServiceType,
		Cost:            req.Cost,
		Notes:           req.Notes,
		NextServiceDate: req.NextServiceDate,
	}, currentUserEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAssetNotFound):
			c.JSON(404, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidServiceType), errors.Is(err, services.ErrInvalidDate):
			c.JSON(400, gin.H{"error": err.Error()})
		default:
			c.JSON(500, gin.H{"error": "Failed to record maintenance", "details": err.Error()})
		}
		return
	}

	c.JSON(201, gin.H{"message": "Maintenance recorded", "record": record})
}

// GetMaintenance returns maintenance records with optional asset filter
func (h *MaintenanceHandler) GetMaintenance(c *gin.Context) {
	records, err := h.maintenanceService.GetMaintenance(c.Query("asset_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to get maintenance records", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"items": records})
}

// GetReminders returns records due for service within the window
func (h *MaintenanceHandler) GetReminders(c *gin.Context) {
	days := 30
	if raw := c.Query("days"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			c.JSON(400, gin.H{"error": "Invalid days parameter"})
			return
		}
		days = value
	}

	records, err := h.maintenanceService.GetReminders(days)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to get reminders", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"items": records})
}
