package model

import (
	"time"

	"github.com/google/uuid"
)

// DoseEventModel maps the 'medication_history' table, the append-only dose
// ledger. A partial unique index on (user_medication_id, scheduled_at) where
// status in ('taken','skipped') backs the at-most-one-actioned invariant.
type DoseEventModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;index"`
	UserMedicationID     uuid.UUID `gorm:"type:uuid;not null;index"`
	MedicationScheduleID uuid.UUID `gorm:"type:uuid;not null;index"`
	ScheduledAt          time.Time `gorm:"not null;index"`
	TakenAt              *time.Time
	Status               string `gorm:"type:varchar(16);not null;default:'pending'"`
	Note                 string `gorm:"type:text"`
	CreatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (DoseEventModel) TableName() string {
	return "medication_history"
}
