// Package usecase defines the application use case interfaces.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrStoreUnavailable is returned when the schedule store or the dose ledger
// cannot be read. The scheduler aborts the current tick and retries on the
// next one.
var ErrStoreUnavailable = errors.New("reminder store unavailable")

// DueReminder is one candidate notification: a schedule slot that became due
// within the lookback window and has not been actioned. Never persisted;
// recomputed on every tick.
type DueReminder struct {
	UserID       uuid.UUID `json:"user_id"`
	MedicationID uuid.UUID `json:"medication_id"`
	ScheduleID   uuid.UUID `json:"schedule_id"`
	ScheduledAt  time.Time `json:"scheduled_at"`
}

// ReminderEvaluator computes due reminders. Pure store reads, no side effects.
type ReminderEvaluator interface {
	// FindDue returns every (user, medication, schedule) slot due within
	// [now - lookback, now] that has no actioned dose event recorded at its
	// (medication, scheduled instant) key.
	FindDue(ctx context.Context, now time.Time) ([]*DueReminder, error)
}
