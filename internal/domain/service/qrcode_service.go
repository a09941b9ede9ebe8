package service

import (
	"medremind/internal/domain/entity"
)

// QRCodeService generates QR codes for sharing a medication between devices.
type QRCodeService interface {
	// GenerateMedicationQR renders a PNG QR code encoding the medication
	// summary (id, name, dosage) for the companion app's scanner.
	GenerateMedicationQR(medication *entity.Medication) ([]byte, error)
}
