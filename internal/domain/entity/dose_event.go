package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoseStatus is the lifecycle state of a single scheduled dose.
type DoseStatus string

const (
	DoseStatusPending DoseStatus = "pending"
	DoseStatusTaken   DoseStatus = "taken"
	DoseStatusSkipped DoseStatus = "skipped"
	DoseStatusMissed  DoseStatus = "missed"
)

// Actioned reports whether the user acted on the dose. Only actioned events
// suppress further reminders for their (medication, scheduled instant) key.
func (s DoseStatus) Actioned() bool {
	return s == DoseStatusTaken || s == DoseStatusSkipped
}

// DoseEvent is one instance of a scheduled dose becoming due, recorded in the
// history ledger when the user acts on it.
type DoseEvent struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	MedicationID uuid.UUID  `json:"medication_id"`
	ScheduleID   uuid.UUID  `json:"schedule_id"`
	ScheduledAt  time.Time  `json:"scheduled_at"` // The due instant this event refers to.
	TakenAt      *time.Time `json:"taken_at,omitempty"`
	Status       DoseStatus `json:"status"`
	Note         string     `json:"note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
