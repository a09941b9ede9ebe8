package usecase

import (
	"context"
	"time"

	"medremind/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchResult reports the outcome of one multicast to a user's devices.
type DispatchResult struct {
	SuccessCount  int      `json:"success_count"`
	FailureCount  int      `json:"failure_count"`
	InvalidTokens []string `json:"invalid_tokens,omitempty"` // Tokens the gateway rejected as permanently invalid.
}

// NotificationUsecase composes and delivers push notifications to all of a
// user's registered devices. It never mutates the device registry: pruning
// invalid tokens is the caller's decision.
type NotificationUsecase interface {
	// SendMedicationReminder pushes a dose reminder for the given medication
	// and schedule slot. A user with no registered devices yields a zero
	// result and no error.
	SendMedicationReminder(ctx context.Context, userID uuid.UUID, medication *entity.Medication, scheduleID uuid.UUID, scheduledAt time.Time) (*DispatchResult, error)

	// SendTestNotification pushes a test message to the user's devices.
	SendTestNotification(ctx context.Context, userID uuid.UUID) (*DispatchResult, error)
}
