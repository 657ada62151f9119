package models

import (
	"time"
)

// SchoolDeadline holds one application deadline fact. At most one row may
// exist per (school, year, round); the composite unique index backs that up.
type SchoolDeadline struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SchoolID uint      `gorm:"not null;uniqueIndex:idx_school_year_round" json:"school_id"`
	Year     int       `gorm:"not null;uniqueIndex:idx_school_year_round" json:"year"`
	Round    string    `gorm:"not null;type:varchar(10);uniqueIndex:idx_school_year_round" json:"round"` // EA, ED, ED2, RD, REA
	DueAt    time.Time `gorm:"not null" json:"due_at"`
	Notes    string    `json:"notes"`

	School School `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
}
