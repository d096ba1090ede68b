package models

import (
	"time"
)

type Maintenance struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	AssetID         string    `json:"asset_id" gorm:"type:varchar(100);index;not null"`
	ServiceDate     string    `json:"service_date" gorm:"type:varchar(10);not null"` // YYYY-MM-DD
	ServiceType     string    `json:"service_type" gorm:"type:varchar(50);default:'scheduled'"` // scheduled, repair, inspection
	Cost            *float64  `json:"cost,omitempty"`
	Notes           string    `json:"notes,omitempty" gorm:"type:text"`
	NextServiceDate string    `json:"next_service_date,omitempty" gorm:"type:varchar(10);index"` // YYYY-MM-DD, empty if none
	CreatedBy       string    `json:"created_by" gorm:"type:varchar(255)"`
	CreatedAt       time.Time `json:"created_at"`
}
