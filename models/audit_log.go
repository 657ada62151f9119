package models

import (
	"time"
)

// AuditLog is an append-only record of an admin action. Rows are written once
// and never updated or deleted through the API.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	EventID    string `gorm:"type:varchar(36);not null;uniqueIndex" json:"event_id"`
	ActorID    uint   `gorm:"not null;index" json:"actor_id"`
	Action     string `gorm:"not null;type:varchar(50);index" json:"action"`
	Resource   string `gorm:"not null;type:varchar(50);index" json:"resource"`
	ResourceID uint   `json:"resource_id"`
	Metadata   string `gorm:"type:jsonb;not null;default:'{}'" json:"metadata"`

	Actor User `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
}
