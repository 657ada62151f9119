package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a peer review left on an admission case.
type Review struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	CaseID     uint   `gorm:"not null;index" json:"case_id"`
	ReviewerID uint   `gorm:"not null;index" json:"reviewer_id"`
	Rating     int    `gorm:"not null;default:0" json:"rating"`
	Content    string `json:"content"`

	Case     AdmissionCase `gorm:"foreignKey:CaseID" json:"case,omitempty"`
	Reviewer User          `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}
