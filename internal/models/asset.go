package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Asset statuses. Status is denormalized: assignment and maintenance
// operations update it as a side effect.
const (
	AssetStatusAvailable   = "available"
	AssetStatusAssigned    = "assigned"
	AssetStatusMaintenance = "maintenance"
	AssetStatusRetired     = "retired"
)

type Asset struct {
	ID                   uint         `json:"id" gorm:"primaryKey"`
	AssetID              string       `json:"asset_id" gorm:"type:varchar(100);uniqueIndex;not null"`
	Name                 string       `json:"name" gorm:"type:varchar(255);not null"`
	Type                 string       `json:"type" gorm:"type:varchar(100);not null"`
	SerialNumber         string       `json:"serial_number,omitempty" gorm:"type:varchar(255)"`
	PurchaseDate         string       `json:"purchase_date,omitempty" gorm:"type:varchar(10)"` // YYYY-MM-DD
	SupplierName         string       `json:"supplier_name,omitempty" gorm:"type:varchar(255)"`
	WarrantyPeriodMonths *int         `json:"warranty_period_months,omitempty"`
	Status               string       `json:"status" gorm:"type:varchar(20);default:'available'"`
	Documents            DocumentList `json:"documents" gorm:"type:json"`
	CreatedBy            string       `json:"created_by" gorm:"type:varchar(255)"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// AssetDocument is a reference to an uploaded file attached to an asset.
type AssetDocument struct {
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	Category   string    `json:"category"` // purchase, warranty, other
	UploadedAt time.Time `json:"uploaded_at"`
}

// DocumentList is a custom type for JSON array storage
type DocumentList []AssetDocument

// Value implements the driver.Valuer interface
func (d DocumentList) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "[]", nil
	}
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface
func (d *DocumentList) Scan(value interface{}) error {
	if value == nil {
		*d = []AssetDocument{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, d)
}
