package handlers

import (
	"errors"
	"io"

	"assetmgr/internal/models"
	"assetmgr/internal/services"

	"github.com/gin-gonic/gin"
)

// currentUserEmail returns the authenticated user's email, or "" on public
// routes.
func currentUserEmail(c *gin.Context) string {
	user, exists := c.Get("user")
	if !exists {
		return ""
	}
	return user.(*models.User).Email
}

type AssetHandler struct {
	assetService *services.AssetService
}

func NewAssetHandler(assetService *services.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

type CreateAssetRequest struct {
	AssetID              string `json:"asset_id" binding:"required"`
	Name                 string `json:"name" binding:"required"`
	Type                 string `json:"type" binding:"required"`
	SerialNumber         string `json:"serial_number"`
	PurchaseDate         string `json:"purchase_date"`
	SupplierName         string `json:"supplier_name"`
	WarrantyPeriodMonths *int   `json:"warranty_period_months"`
}

// CreateAsset creates a new asset
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	asset, err := h.assetService.CreateAsset(&services.CreateAssetData{
		AssetID:              req.AssetID,
		Name:                 req.Name,
		Type:                 req.Type,
		SerialNumber:         req.SerialNumber,
		PurchaseDate:         req.PurchaseDate,
		SupplierName:         req.SupplierName,
		WarrantyPeriodMonths: req.WarrantyPeriodMonths,
	}, currentUserEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAssetExists):
			c.JSON(409, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidDate):
			c.JSON(400, gin.H{"error": err.Error()})
		default:
			c.JSON(500, gin.H{"error": "Failed to create asset", "details": err.Error()})
		}
		return
	}

	c.JSON(201, gin.H{"message": "Asset created", "asset": asset})
}

// GetAssets returns all assets, with optional text search
func (h *AssetHandler) GetAssets(c *gin.Context) {
	assets, err := h.assetService.GetAssets(c.Query("q"))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to get assets", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"items": assets})
}

// GetAsset returns a specific asset
func (h *AssetHandler) GetAsset(c *gin.Context) {
	asset, err := h.assetService.GetAsset(c.Param("asset_id"))
	if err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to get asset", "details": err.Error()})
		return
	}

	c.JSON(200, asset)
}

// UploadDocument attaches an uploaded file to an asset
func (h *AssetHandler) UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "File is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(400, gin.H{"error": "Failed to read file", "details": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(400, gin.H{"error": "Failed to read file", "details": err.Error()})
		return
	}

	category := c.PostForm("category")

	doc, err := h.assetService.AttachDocument(c.Param("asset_id"), fileHeader.Filename, category, data)
	if err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to upload document", "details": err.Error()})
		return
	}

	c.JSON(200, gin.H{"message": "Uploaded", "document": doc})
}
