package handlers

import (
	"assetmgr/internal/services"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

type ThresholdRequest struct {
	ItemName     string `json:"item_name" binding:"required"`
	CurrentLevel int    `json:"current_level"`
	MinLevel     int    `json:"min_level"`
	Unit         string `json:"unit"`
}

// UpsertThreshold creates or replaces an inventory threshold
func (h *InventoryHandler) UpsertThreshold(c *gin.Context) {
	var req ThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	threshold, err := h.inventoryService.UpsertThreshold(&services.ThresholdData{
		ItemName:     req.ItemName,
		CurrentLevel: req.CurrentLevel,
		MinLevel:     req.MinLevel,
		Unit:         req.Unit,
	}, currentUserEmail(c))
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"message": "Threshold saved", "threshold": threshold})
}

// GetLowInventory returns items below their minimum stock level
func (h *InventoryHandler) GetLowInventory(c *gin.Context) {
	items, err := h.inventoryService.GetLowInventory()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to get low inventory items", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"items": items})
}
