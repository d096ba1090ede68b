package handlers

import (
	"errors"

	"assetmgr/internal/services"

	"github.com/gin-gonic/gin"
)

type RequisitionHandler struct {
	requisitionService *services.RequisitionService
}

func NewRequisitionHandler(requisitionService *services.RequisitionService) *RequisitionHandler {
	return &RequisitionHandler{
		requisitionService: requisitionService,
	}
}

type CreateRequisitionRequest struct {
	ItemName    string `json:"item_name" binding:"required"`
	RequestedBy string `json:"requested_by" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	Reason      string `json:"reason"`
}

// CreateRequisition opens a replenishment request
func (h *RequisitionHandler) CreateRequisition(c *gin.Context) {
	var req CreateRequisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	requisition, err := h.requisitionService.CreateRequisition(&services.CreateRequisitionData{
		ItemName:    req.ItemName,
		RequestedBy: req.RequestedBy,
		Quantity:    req.Quantity,
		Reason:      req.Reason,
	}, currentUserEmail(c))
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	c.JSON(201, gin.H{"message": "Requisition created", "requisition": requisition})
}

// GetRequisitions returns requisitions with optional status filter
func (h *RequisitionHandler) GetRequisitions(c *gin.Context) {
	items, err := h.requisitionService.GetRequisitions(c.Query("status"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequisitionStatus) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to get requisitions", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"items": items})
}
