package usecase

import (
	"context"
	"time"

	"medremind/internal/domain/entity"

	"github.com/google/uuid"
)

// DoseLogInput carries one user action on a scheduled dose.
type DoseLogInput struct {
	MedicationID uuid.UUID         `json:"medication_id"`
	ScheduleID   uuid.UUID         `json:"schedule_id"`
	ScheduledAt  time.Time         `json:"scheduled_at"`
	Status       entity.DoseStatus `json:"status"`
	Note         string            `json:"note"`
}

// DoseLogUsecase writes and reads the dose history ledger.
type DoseLogUsecase interface {
	// LogDose records a taken or skipped dose. At most one actioned event may
	// exist per (medication, scheduled instant) key; a second attempt fails
	// with ErrDoseAlreadyLogged.
	LogDose(ctx context.Context, userID uuid.UUID, input *DoseLogInput) (*entity.DoseEvent, error)

	// GetHistory retrieves the user's dose history, newest first.
	GetHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DoseEvent, error)
}
