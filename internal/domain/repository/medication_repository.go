// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"medremind/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMedicationNotFound is returned when a medication record does not exist.
var ErrMedicationNotFound = errors.New("medication not found")

// MedicationRepository reads medication records owned by the external CRUD API.
type MedicationRepository interface {
	// FindMedicationByID retrieves a medication by its unique ID.
	FindMedicationByID(ctx context.Context, id uuid.UUID) (*entity.Medication, error)
}
