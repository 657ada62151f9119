package models

import (
	"time"

	"gorm.io/gorm"
)

type School struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	Name    string `gorm:"unique;not null" json:"name"`
	Country string `json:"country"`
	Website string `json:"website"`

	Deadlines []SchoolDeadline `json:"deadlines,omitempty" gorm:"foreignKey:SchoolID"`
}
