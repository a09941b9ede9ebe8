package impl

import (
	"context"

	domainerrors "medremind/internal/domain/errors"
	"medremind/internal/domain/repository"
	"medremind/internal/domain/service"
	"medremind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type medicationService struct {
	medicationRepo repository.MedicationRepository
	qrcodeSvc      service.QRCodeService
}

// NewMedicationService creates a new medication service instance
func NewMedicationService(
	medicationRepo repository.MedicationRepository,
	qrcodeSvc service.QRCodeService,
) usecase.MedicationUsecase {
	return &medicationService{
		medicationRepo: medicationRepo,
		qrcodeSvc:      qrcodeSvc,
	}
}

// GetMedicationShareQR renders a share QR code for a medication the caller owns.
func (s *medicationService) GetMedicationShareQR(ctx context.Context, userID, medicationID uuid.UUID) ([]byte, error) {
	medication, err := s.medicationRepo.FindMedicationByID(ctx, medicationID)
	if err != nil {
		if errors.Is(err, repository.ErrMedicationNotFound) {
			return nil, domainerrors.ErrMedicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find medication")
	}

	if medication.UserID != userID {
		return nil, domainerrors.ErrMedicationForbidden
	}

	png, err := s.qrcodeSvc.GenerateMedicationQR(medication)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate medication QR")
	}

	return png, nil
}
