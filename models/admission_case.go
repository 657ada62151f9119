package models

import (
	"time"

	"gorm.io/gorm"
)

type AdmissionCase struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	UserID   uint   `gorm:"not null;index" json:"user_id"`
	SchoolID uint   `gorm:"not null;index" json:"school_id"`
	Round    string `json:"round"` // EA, ED, RD, REA
	Status   string `gorm:"not null;default:'DRAFT'" json:"status"`
	Title    string `json:"title"`

	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	School School `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
}
