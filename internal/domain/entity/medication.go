// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medication represents one medication a user is taking.
type Medication struct {
	ID           uuid.UUID `json:"id"`           // The unique identifier of the medication record.
	UserID       uuid.UUID `json:"user_id"`      // The ID of the user who owns this medication.
	Name         string    `json:"name"`         // Display name, e.g. "Metformin".
	Dosage       string    `json:"dosage"`       // Free-text dosage, e.g. "500mg".
	Instructions string    `json:"instructions"` // Optional intake instructions.
	IsActive     bool      `json:"is_active"`    // Inactive medications are never reminded.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReminderBody builds the notification body line for this medication.
func (m *Medication) ReminderBody() string {
	if m.Dosage == "" {
		return m.Name
	}

	return m.Name + " - " + m.Dosage
}
