package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel maps the 'device_tokens' table. The token column carries a
// unique constraint; registration upserts on it so a token moving to another
// account is reassigned rather than duplicated.
type DeviceTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Token      string    `gorm:"type:text;not null;uniqueIndex"`
	Platform   string    `gorm:"type:varchar(16);not null"`
	LastUsedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
