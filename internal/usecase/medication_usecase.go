package usecase

import (
	"context"

	"github.com/google/uuid"
)

// MedicationUsecase exposes read-side medication operations this service owns.
// Medication CRUD itself lives in the external API.
type MedicationUsecase interface {
	// GetMedicationShareQR renders a PNG QR code for sharing the medication,
	// after verifying the caller owns it.
	GetMedicationShareQR(ctx context.Context, userID, medicationID uuid.UUID) ([]byte, error)
}
