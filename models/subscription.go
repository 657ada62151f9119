package models

import (
	"time"
)

const (
	SubscriptionStatusActive   = "ACTIVE"
	SubscriptionStatusCanceled = "CANCELED"
	SubscriptionStatusExpired  = "EXPIRED"
)

type Subscription struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    uint       `gorm:"not null;index" json:"user_id"`
	Plan      string     `gorm:"not null;type:varchar(20)" json:"plan"` // FREE, PRO, PREMIUM
	Status    string     `gorm:"not null;type:varchar(20);default:'ACTIVE'" json:"status"`
	ExpiresAt *time.Time `json:"expires_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
