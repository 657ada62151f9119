package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser     = "USER"
	RoleVerified = "VERIFIED"
	RoleAdmin    = "ADMIN"
)

type User struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"deleted_at"`
	Email         string          `gorm:"unique;not null" json:"email"`
	Password      string          `gorm:"not null" json:"-"` // Don't expose password in JSON
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Role          string          `gorm:"not null;default:'USER'" json:"role"`
	EmailVerified bool            `json:"email_verified"`
	GoogleID      *string         `gorm:"uniqueIndex" json:"-"`
	Cases         []AdmissionCase `json:"cases,omitempty" gorm:"foreignKey:UserID"`
	Reviews       []Review        `json:"reviews,omitempty" gorm:"foreignKey:ReviewerID"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleVerified, RoleAdmin:
		return true
	}
	return false
}
