package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	EventCategoryTest        = "TEST"
	EventCategoryCompetition = "COMPETITION"
	EventCategoryDeadline    = "DEADLINE"
	EventCategoryOther       = "OTHER"
)

// GlobalEvent is a shared calendar entry (standardized tests, competitions,
// application milestones) visible to every user.
type GlobalEvent struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Category    string         `gorm:"not null;type:varchar(20);default:'OTHER'" json:"category"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	StartsAt    time.Time      `gorm:"not null;index" json:"starts_at"`
	EndsAt      *time.Time     `json:"ends_at"`
	Recurring   bool           `gorm:"not null;default:false" json:"recurring"`
	Active      bool           `gorm:"not null;default:true" json:"active"`
}
