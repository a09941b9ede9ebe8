// Package model contains the GORM-specific structs for the managed Postgres
// schema. The tables are owned by the CRUD API; migrations live there.
package model

import (
	"time"

	"github.com/google/uuid"
)

// MedicationModel maps the 'user_medications' table.
type MedicationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:text;not null"`
	Dosage       string    `gorm:"type:text"`
	Instructions string    `gorm:"type:text"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MedicationModel) TableName() string {
	return "user_medications"
}
