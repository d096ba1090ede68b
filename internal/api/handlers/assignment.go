package handlers

import (
	"errors"
	"strconv"

	"assetmgr/internal/services"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	assignmentService *services.AssignmentService
}

func NewAssignmentHandler(assignmentService *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

type CreateAssignmentRequest struct {
	AssetID           string `json:"asset_id" binding:"required"`
	AssigneeType      string `json:"assignee_type" binding:"required"`
	AssigneeName      string `json:"assignee_name" binding:"required"`
	IssueDate         string `json:"issue_date" binding:"required"`
	ResponsiblePerson string `json:"responsible_person"`
	Designation       string `json:"designation"`
	Notes             string `json:"notes"`
}

// CreateAssignment assigns an asset to a department, customer or office
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(&services.CreateAssignmentData{
		AssetID:           req.AssetID,
		AssigneeType:      req.AssigneeType,
		AssigneeName:      req.AssigneeName,
		IssueDate:         req.IssueDate,
		ResponsiblePerson: req.ResponsiblePerson,
		Designation:       req.Designation,
		Notes:             req.Notes,
	}, currentUserEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAssetNotFound):
			c.JSON(404, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidAssigneeType), errors.Is(err, services.ErrInvalidDate):
			c.JSON(400, gin.H{"error": err.Error()})
		default:
			c.JSON(500, gin.H{"error": "Failed to create assignment", "details": err.Error()})
		}
		return
	}

	c.JSON(201, gin.H{"message": "Asset assigned", "assignment": assignment})
}

// ReturnAsset deactivates the active assignment for an asset
func (h *AssignmentHandler) ReturnAsset(c *gin.Context) {
	if err := h.assignmentService.ReturnAsset(c.Param("asset_id")); err != nil {
		if errors.Is(err, services.ErrNoActiveAssignment) {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to return asset", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"message": "Asset returned"})
}

// GetAssignments returns assignments with optional filters
func (h *AssignmentHandler) GetAssignments(c *gin.Context) {
	var active *bool
	if raw := c.Query("active"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid active filter"})
			return
		}
		active = &value
	}

	assignments, err := h.assignmentService.GetAssignments(c.Query("asset_id"), active)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to get assignments", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"items": assignments})
}
