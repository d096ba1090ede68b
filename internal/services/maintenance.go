package services

import (
	"errors"
	"time"

	"assetmgr/internal/config"
	"assetmgr/internal/models"

	"gorm.io/gorm"
)

var ErrInvalidServiceType = errors.New("invalid service type")

var serviceTypes = map[string]bool{
	"scheduled":  true,
	"repair":     true,
	"inspection": true,
}

type MaintenanceService struct {
	cfg *config.Config
}

func NewMaintenanceService(cfg *config.Config) *MaintenanceService {
	return &MaintenanceService{cfg: cfg}
}

type CreateMaintenanceData struct {
	AssetID         string
	ServiceDate     string
	ServiceType     string
	Cost            *float64
	Notes           string
	NextServiceDate string
}

// CreateMaintenance records a maintenance event for an existing asset. The
// asset status is set to "maintenance" unconditionally, even for past-dated
// or inspection-only records.
func (s *MaintenanceService) CreateMaintenance(data *CreateMaintenanceData, createdBy string) (*models.Maintenance, error) {
	if data.ServiceType == "" {
		data.ServiceType = "scheduled"
	}
	if !serviceTypes[data.ServiceType] {
		return nil, ErrInvalidServiceType
	}
	if err := validateDate(data.ServiceDate); err != nil {
		return nil, err
	}
	if err := validateDate(data.NextServiceDate); err != nil {
		return nil, err
	}
	if data.Cost != nil && *data.Cost < 0 {
		return nil, errors.New("cost must not be negative")
	}

	record := &models.Maintenance{
		AssetID:         data.AssetID,
		ServiceDate:     data.ServiceDate,
		ServiceType:     data.ServiceType,
		Cost:            data.Cost,
		Notes:           data.Notes,
		NextServiceDate: data.NextServiceDate,
		CreatedBy:       createdBy,
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var asset models.Asset
		if err := tx.Where("asset_id = ?", data.AssetID).First(&asset).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssetNotFound
			}
			return err
		}

		if err := tx.Create(record).Error; err != nil {
			return err
		}

		return tx.Model(&models.Asset{}).
			Where("asset_id = ?", data.AssetID).
			Update("status", models.AssetStatusMaintenance).Error
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// GetMaintenance returns maintenance records, optionally filtered by asset.
func (s *MaintenanceService) GetMaintenance(assetID string) ([]models.Maintenance, error) {
	db := models.DB
	if assetID != "" {
		db = db.Where("asset_id = ?", assetID)
	}

	var records []models.Maintenance
	if err := db.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetReminders returns records whose next service date falls within
// [today, today+days]. Dates are YYYY-MM-DD strings, so lexicographic range
// comparison matches chronological order.
func (s *MaintenanceService) GetReminders(days int) ([]models.Maintenance, error) {
	if days <= 0 {
		days = 30
	}

	today := time.Now().Format("2006-01-02")
	upcoming := time.Now().AddDate(0, 0, days).Format("2006-01-02")

	var records []models.Maintenance
	if err := models.DB.
		Where("next_service_date >= ? AND next_service_date <= ?", today, upcoming).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
