// Package qrcode renders medication share codes as PNG QR images.
package qrcode

import (
	"encoding/json"

	"medremind/internal/domain/entity"
	"medremind/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// medicationPayload is the JSON structure the mobile scanner expects.
type medicationPayload struct {
	Type         string `json:"type"`
	MedicationID string `json:"medication_id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
}

// NewQRCodeService creates a QR code service instance.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateMedicationQR renders a PNG QR code encoding the medication summary.
func (s *qrcodeService) GenerateMedicationQR(medication *entity.Medication) ([]byte, error) {
	payload := medicationPayload{
		Type:         "medication",
		MedicationID: medication.ID.String(),
		Name:         medication.Name,
		Dosage:       medication.Dosage,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR payload")
	}

	code, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render PNG")
	}

	return pngBytes, nil
}
