package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ScheduleModel maps the 'medication_schedules' table. ScheduledTime holds the
// time of day as "HH:MM"; DaysOfWeek is a JSON array of weekday indices
// (0=Sunday..6=Saturday).
type ScheduleModel struct {
	ID               uuid.UUID                 `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID                 `gorm:"type:uuid;not null;index"`
	UserMedicationID uuid.UUID                 `gorm:"type:uuid;not null;index"`
	ScheduledTime    string                    `gorm:"type:varchar(8);not null"`
	DaysOfWeek       datatypes.JSONSlice[int]  `gorm:"not null"`
	IsEnabled        bool                      `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduleModel) TableName() string {
	return "medication_schedules"
}
