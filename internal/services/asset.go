package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"assetmgr/internal/config"
	"assetmgr/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAssetExists   = errors.New("asset ID already exists")
	ErrAssetNotFound = errors.New("asset not found")
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
)

// validateDate checks the YYYY-MM-DD wire format used for all date-only
// fields. Empty is allowed; callers enforce required fields.
func validateDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return ErrInvalidDate
	}
	return nil
}

type AssetService struct {
	cfg   *config.Config
	files FileStore
}

func NewAssetService(cfg *config.Config, files FileStore) *AssetService {
	return &AssetService{cfg: cfg, files: files}
}

type CreateAssetData struct {
	AssetID              string
	Name                 string
	Type                 string
	SerialNumber         string
	PurchaseDate         string
	SupplierName         string
	WarrantyPeriodMonths *int
}

// CreateAsset registers a new asset. The business identifier must be unique;
// status always starts as "available" with an empty document list.
func (s *AssetService) CreateAsset(data *CreateAssetData, createdBy string) (*models.Asset, error) {
	if err := validateDate(data.PurchaseDate); err != nil {
		return nil, err
	}
	if data.WarrantyPeriodMonths != nil && *data.WarrantyPeriodMonths < 0 {
		return nil, errors.New("warranty period must not be negative")
	}

	var existing models.Asset
	if err := models.DB.Where("asset_id = ?", data.AssetID).First(&existing).Error; err == nil {
		return nil, ErrAssetExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	asset := &models.Asset{
		AssetID:              data.AssetID,
		Name:                 data.Name,
		Type:                 data.Type,
		SerialNumber:         data.SerialNumber,
		PurchaseDate:         data.PurchaseDate,
		SupplierName:         data.SupplierName,
		WarrantyPeriodMonths: data.WarrantyPeriodMonths,
		Status:               models.AssetStatusAvailable,
		Documents:            models.DocumentList{},
		CreatedBy:            createdBy,
	}

	if err := models.DB.Create(asset).Error; err != nil {
		return nil, err
	}

	return asset, nil
}

// GetAssets returns all assets, optionally filtered by a case-insensitive
// substring match over asset_id, name and type.
func (s *AssetService) GetAssets(q string) ([]models.Asset, error) {
	db := models.DB
	if q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		db = db.Where(
			"LOWER(asset_id) LIKE ? OR LOWER(name) LIKE ? OR LOWER(type) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var assets []models.Asset
	if err := db.Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// GetAsset returns a specific asset by its business identifier
func (s *AssetService) GetAsset(assetID string) (*models.Asset, error) {
	var asset models.Asset
	if err := models.DB.Where("asset_id = ?", assetID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return &asset, nil
}

// AttachDocument stores an uploaded file and appends its reference to the
// asset's document list. The stored name combines asset ID, upload time and
// the original filename to avoid collisions.
func (s *AssetService) AttachDocument(assetID, filename, category string, data []byte) (*models.AssetDocument, error) {
	asset, err := s.GetAsset(assetID)
	if err != nil {
		return nil, err
	}

	if category == "" {
		category = "other"
	}

	safeName := fmt.Sprintf("%s_%d_%s", assetID, time.Now().Unix(), filepath.Base(filename))
	url, err := s.files.Put(safeName, data)
	if err != nil {
		return nil, err
	}

	doc := models.AssetDocument{
		Filename:   filename,
		URL:        url,
		Category:   category,
		UploadedAt: time.Now().UTC(),
	}

	asset.Documents = append(asset.Documents, doc)
	if err := models.DB.Model(asset).Updates(map[string]interface{}{
		"documents": asset.Documents,
	}).Error; err != nil {
		return nil, err
	}

	return &doc, nil
}
