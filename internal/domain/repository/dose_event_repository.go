package repository

import (
	"context"
	"time"

	"medremind/internal/domain/entity"

	"github.com/google/uuid"
)

// DoseEventRepository persists the append-only dose history ledger.
type DoseEventRepository interface {
	// HasActionedEvent reports whether a taken or skipped event exists for the
	// exact (medication, scheduled instant) key. This is the reminder dedup
	// check.
	HasActionedEvent(ctx context.Context, medicationID uuid.UUID, scheduledAt time.Time) (bool, error)

	// CreateDoseEvent appends one event to the ledger.
	CreateDoseEvent(ctx context.Context, event *entity.DoseEvent) error

	// FindEventsByUser retrieves a user's dose history, newest first.
	FindEventsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DoseEvent, error)
}
