package models

import (
	"time"
)

// Assignment records custody of an asset. At most one assignment is active
// per asset; creating a new one deactivates the previous holders.
type Assignment struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	AssetID           string    `json:"asset_id" gorm:"type:varchar(100);index;not null"`
	AssigneeType      string    `json:"assignee_type" gorm:"type:varchar(50);not null"` // department, customer, office
	AssigneeName      string    `json:"assignee_name" gorm:"type:varchar(255);not null"`
	IssueDate         string    `json:"issue_date" gorm:"type:varchar(10);not null"` // YYYY-MM-DD
	ResponsiblePerson string    `json:"responsible_person,omitempty" gorm:"type:varchar(255)"`
	Designation       string    `json:"designation,omitempty" gorm:"type:varchar(255)"`
	Notes             string    `json:"notes,omitempty" gorm:"type:text"`
	Active            bool      `json:"active" gorm:"index;default:true"`
	CreatedBy         string    `json:"created_by" gorm:"type:varchar(255)"`
	CreatedAt         time.Time `json:"created_at"`
}
