package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReportStatusPending   = "PENDING"
	ReportStatusReviewed  = "REVIEWED"
	ReportStatusResolved  = "RESOLVED"
	ReportStatusDismissed = "DISMISSED"
)

const (
	ReportTargetUser    = "user"
	ReportTargetMessage = "message"
	ReportTargetCase    = "case"
	ReportTargetReview  = "review"
)

type Report struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	ReporterID  uint   `gorm:"not null;index" json:"reporter_id"`
	TargetType  string `gorm:"not null;type:varchar(20)" json:"target_type"`
	TargetID    uint   `gorm:"not null" json:"target_id"`
	Reason      string `gorm:"not null" json:"reason"`
	Description string `json:"description"`
	Status      string `gorm:"not null;default:'PENDING'" json:"status"`
	Resolution  string `json:"resolution"`

	ReviewedBy *uint      `json:"reviewed_by"`
	ResolvedAt *time.Time `json:"resolved_at"`

	Reporter User `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
}

func ValidReportStatus(status string) bool {
	switch status {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusResolved, ReportStatusDismissed:
		return true
	}
	return false
}

func ValidReportTarget(targetType string) bool {
	switch targetType {
	case ReportTargetUser, ReportTargetMessage, ReportTargetCase, ReportTargetReview:
		return true
	}
	return false
}
