package services

import (
	"errors"

	"assetmgr/internal/config"
	"assetmgr/internal/models"

	"gorm.io/gorm"
)

type InventoryService struct {
	cfg *config.Config
}

func NewInventoryService(cfg *config.Config) *InventoryService {
	return &InventoryService{cfg: cfg}
}

type ThresholdData struct {
	ItemName     string
	CurrentLevel int
	MinLevel     int
	Unit         string
}

// UpsertThreshold creates or replaces the threshold keyed by item name.
func (s *InventoryService) UpsertThreshold(data *ThresholdData, updatedBy string) (*models.InventoryThreshold, error) {
	if data.CurrentLevel < 0 || data.MinLevel < 0 {
		return nil, errors.New("stock levels must not be negative")
	}
	if data.Unit == "" {
		data.Unit = "units"
	}

	var threshold models.InventoryThreshold
	err := models.DB.Where("item_name = ?", data.ItemName).First(&threshold).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		threshold = models.InventoryThreshold{ItemName: data.ItemName}
	}

	threshold.CurrentLevel = data.CurrentLevel
	threshold.MinLevel = data.MinLevel
	threshold.Unit = data.Unit
	threshold.UpdatedBy = updatedBy

	if err := models.DB.Save(&threshold).Error; err != nil {
		return nil, err
	}

	return &threshold, nil
}

// GetLowInventory returns thresholds whose current level is below the
// configured minimum.
func (s *InventoryService) GetLowInventory() ([]models.InventoryThreshold, error) {
	var items []models.InventoryThreshold
	if err := models.DB.Where("current_level < min_level").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
