package services

import (
	"errors"

	"assetmgr/internal/config"
	"assetmgr/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNoActiveAssignment  = errors.New("no active assignment found")
	ErrInvalidAssigneeType = errors.New("invalid assignee type")
)

var assigneeTypes = map[string]bool{
	"department": true,
	"customer":   true,
	"office":     true,
}

type AssignmentService struct {
	cfg *config.Config
}

func NewAssignmentService(cfg *config.Config) *AssignmentService {
	return &AssignmentService{cfg: cfg}
}

type CreateAssignmentData struct {
	AssetID           string
	AssigneeType      string
	AssigneeName      string
	IssueDate         string
	ResponsiblePerson string
	Designation       string
	Notes             string
}

// CreateAssignment issues an asset to an assignee. Any previously active
// assignment for the asset is deactivated first (last-writer-wins
// reallocation) and the asset status becomes "assigned". The whole sequence
// runs in one transaction so a concurrent reallocation cannot leave two
// active assignments.
func (s *AssignmentService) CreateAssignment(data *CreateAssignmentData, createdBy string) (*models.Assignment, error) {
	if !assigneeTypes[data.AssigneeType] {
		return nil, ErrInvalidAssigneeType
	}
	if err := validateDate(data.IssueDate); err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		AssetID:           data.AssetID,
		AssigneeType:      data.AssigneeType,
		AssigneeName:      data.AssigneeName,
		IssueDate:         data.IssueDate,
		ResponsiblePerson: data.ResponsiblePerson,
		Designation:       data.Designation,
		Notes:             data.Notes,
		Active:            true,
		CreatedBy:         createdBy,
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		var asset models.Asset
		if err := tx.Where("asset_id = ?", data.AssetID).First(&asset).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssetNotFound
			}
			return err
		}

		if err := tx.Model(&models.Assignment{}).
			Where("asset_id = ? AND active = ?", data.AssetID, true).
			Update("active", false).Error; err != nil {
			return err
		}

		if err := tx.Create(assignment).Error; err != nil {
			return err
		}

		return tx.Model(&models.Asset{}).
			Where("asset_id = ?", data.AssetID).
			Update("status", models.AssetStatusAssigned).Error
	})
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

// ReturnAsset deactivates the asset's active assignment and sets the asset
// back to "available". Fails if no active assignment exists.
func (s *AssignmentService) ReturnAsset(assetID string) error {
	return models.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Assignment{}).
			Where("asset_id = ? AND active = ?", assetID, true).
			Update("active", false)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoActiveAssignment
		}

		return tx.Model(&models.Asset{}).
			Where("asset_id = ?", assetID).
			Update("status", models.AssetStatusAvailable).Error
	})
}

// GetAssignments returns assignments, optionally filtered by asset and/or
// active state.
func (s *AssignmentService) GetAssignments(assetID string, active *bool) ([]models.Assignment, error) {
	db := models.DB
	if assetID != "" {
		db = db.Where("asset_id = ?", assetID)
	}
	if active != nil {
		db = db.Where("active = ?", *active)
	}

	var assignments []models.Assignment
	if err := db.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}
