package models

import (
	"time"
)

// InventoryThreshold tracks stock levels for a consumable item. An item is
// in a low-inventory condition when current_level < min_level.
type InventoryThreshold struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ItemName     string    `json:"item_name" gorm:"type:varchar(255);uniqueIndex;not null"`
	CurrentLevel int       `json:"current_level" gorm:"default:0"`
	MinLevel     int       `json:"min_level" gorm:"default:0"`
	Unit         string    `json:"unit" gorm:"type:varchar(50);default:'units'"`
	UpdatedBy    string    `json:"updated_by" gorm:"type:varchar(255)"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Requisition statuses.
const (
	RequisitionOpen     = "open"
	RequisitionApproved = "approved"
	RequisitionRejected = "rejected"
	RequisitionOrdered  = "ordered"
)

// Requisition is a request to replenish an item. Requester, quantity and
// reason are immutable once created.
type Requisition struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	ItemName        string    `json:"item_name" gorm:"type:varchar(255);not null"`
	RequestedBy     string    `json:"requested_by" gorm:"type:varchar(255);not null"`
	Quantity        int       `json:"quantity" gorm:"not null"`
	Reason          string    `json:"reason,omitempty" gorm:"type:text"`
	Status          string    `json:"status" gorm:"type:varchar(20);index;default:'open'"`
	RequestedByUser string    `json:"requested_by_user" gorm:"type:varchar(255)"`
	RequestedAt     time.Time `json:"requested_at"`
}
