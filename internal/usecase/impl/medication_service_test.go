package impl

import (
	"context"
	"testing"

	domainerrors "medremind/internal/domain/errors"
	"medremind/internal/domain/repository"
	mockRepo "medremind/internal/mocks/repository"
	mockSvc "medremind/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicationService_GetMedicationShareQR(t *testing.T) {
	mockMedRepo := mockRepo.NewMockMedicationRepository(t)
	mockQRSvc := mockSvc.NewMockQRCodeService(t)
	svc := NewMedicationService(mockMedRepo, mockQRSvc)

	ctx := context.Background()
	userID := uuid.New()
	medication := testMedication(userID)

	mockMedRepo.EXPECT().
		FindMedicationByID(ctx, medication.ID).
		Return(medication, nil)

	mockQRSvc.EXPECT().
		GenerateMedicationQR(medication).
		Return([]byte("png-bytes"), nil)

	png, err := svc.GetMedicationShareQR(ctx, userID, medication.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestMedicationService_GetMedicationShareQR_NotFound(t *testing.T) {
	mockMedRepo := mockRepo.NewMockMedicationRepository(t)
	mockQRSvc := mockSvc.NewMockQRCodeService(t)
	svc := NewMedicationService(mockMedRepo, mockQRSvc)

	ctx := context.Background()
	medicationID := uuid.New()

	mockMedRepo.EXPECT().
		FindMedicationByID(ctx, medicationID).
		Return(nil, repository.ErrMedicationNotFound)

	png, err := svc.GetMedicationShareQR(ctx, uuid.New(), medicationID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMedicationNotFound))
	assert.Nil(t, png)
}

func TestMedicationService_GetMedicationShareQR_Forbidden(t *testing.T) {
	mockMedRepo := mockRepo.NewMockMedicationRepository(t)
	mockQRSvc := mockSvc.NewMockQRCodeService(t)
	svc := NewMedicationService(mockMedRepo, mockQRSvc)

	ctx := context.Background()
	owner := uuid.New()
	medication := testMedication(owner)

	mockMedRepo.EXPECT().
		FindMedicationByID(ctx, medication.ID).
		Return(medication, nil)

	png, err := svc.GetMedicationShareQR(ctx, uuid.New(), medication.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMedicationForbidden))
	assert.Nil(t, png)
}
