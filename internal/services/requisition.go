package services

import (
	"errors"
	"time"

	"assetmgr/internal/config"
	"assetmgr/internal/models"
)

var ErrInvalidRequisitionStatus = errors.New("invalid requisition status")

var requisitionStatuses = map[string]bool{
	models.RequisitionOpen:     true,
	models.RequisitionApproved: true,
	models.RequisitionRejected: true,
	models.RequisitionOrdered:  true,
}

type RequisitionService struct {
	cfg *config.Config
}

func NewRequisitionService(cfg *config.Config) *RequisitionService {
	return &RequisitionService{cfg: cfg}
}

type CreateRequisitionData struct {
	ItemName    string
	RequestedBy string
	Quantity    int
	Reason      string
}

// CreateRequisition opens a replenishment request. Requester, quantity and
// reason have no update path once created.
func (s *RequisitionService) CreateRequisition(data *CreateRequisitionData, requestedByUser string) (*models.Requisition, error) {
	if data.Quantity < 1 {
		return nil, errors.New("quantity must be at least 1")
	}

	req := &models.Requisition{
		ItemName:        data.ItemName,
		RequestedBy:     data.RequestedBy,
		Quantity:        data.Quantity,
		Reason:          data.Reason,
		Status:          models.RequisitionOpen,
		RequestedByUser: requestedByUser,
		RequestedAt:     time.Now().UTC(),
	}

	if err := models.DB.Create(req).Error; err != nil {
		return nil, err
	}

	return req, nil
}

// GetRequisitions returns requisitions, optionally filtered by status.
func (s *RequisitionService) GetRequisitions(status string) ([]models.Requisition, error) {
	db := models.DB
	if status != "" {
		if !requisitionStatuses[status] {
			return nil, ErrInvalidRequisitionStatus
		}
		db = db.Where("status = ?", status)
	}

	var items []models.Requisition
	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
