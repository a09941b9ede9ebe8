package entity

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// MedicationSchedule represents one recurring dose slot for a medication.
// The time of day is interpreted in the server's configured timezone.
type MedicationSchedule struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	MedicationID uuid.UUID      `json:"medication_id"`
	Hour         int            `json:"hour"`         // 0-23
	Minute       int            `json:"minute"`       // 0-59
	DaysOfWeek   []time.Weekday `json:"days_of_week"` // Active weekdays, 0=Sunday..6=Saturday.
	IsEnabled    bool           `json:"is_enabled"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Validate checks the schedule invariants: a valid 24-hour clock value and a
// non-empty weekday set for enabled schedules.
func (s *MedicationSchedule) Validate() error {
	if s.Hour < 0 || s.Hour > 23 || s.Minute < 0 || s.Minute > 59 {
		return fmt.Errorf("invalid time of day %02d:%02d", s.Hour, s.Minute)
	}

	if s.IsEnabled && len(s.DaysOfWeek) == 0 {
		return fmt.Errorf("enabled schedule %s has empty weekday set", s.ID)
	}

	for _, day := range s.DaysOfWeek {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("invalid weekday %d", day)
		}
	}

	return nil
}

// ActiveOn reports whether the schedule fires on the given weekday.
func (s *MedicationSchedule) ActiveOn(day time.Weekday) bool {
	return slices.Contains(s.DaysOfWeek, day)
}

// OccurrenceOn returns the dose instant this schedule produces on the date of
// the given day, in that day's location.
func (s *MedicationSchedule) OccurrenceOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), s.Hour, s.Minute, 0, 0, day.Location())
}
