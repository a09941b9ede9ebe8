package impl

import (
	"context"
	"testing"
	"time"

	"medremind/internal/domain/entity"
	domainerrors "medremind/internal/domain/errors"
	mockRepo "medremind/internal/mocks/repository"
	"medremind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func doseInput(status entity.DoseStatus) *usecase.DoseLogInput {
	return &usecase.DoseLogInput{
		MedicationID: uuid.New(),
		ScheduleID:   uuid.New(),
		ScheduledAt:  time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC),
		Status:       status,
	}
}

func TestDoseLogService_LogDose_Taken(t *testing.T) {
	mockDoseRepo := mockRepo.NewMockDoseEventRepository(t)
	svc := NewDoseLogService(mockDoseRepo)

	ctx := context.Background()
	userID := uuid.New()
	input := doseInput(entity.DoseStatusTaken)

	mockDoseRepo.EXPECT().
		HasActionedEvent(ctx, input.MedicationID, input.ScheduledAt).
		Return(false, nil)

	mockDoseRepo.EXPECT().
		CreateDoseEvent(ctx, mock.AnythingOfType("*entity.DoseEvent")).
		Return(nil)

	event, err := svc.LogDose(ctx, userID, input)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, userID, event.UserID)
	assert.Equal(t, entity.DoseStatusTaken, event.Status)
	assert.NotNil(t, event.TakenAt)
}

func TestDoseLogService_LogDose_Skipped(t *testing.T) {
	mockDoseRepo := mockRepo.NewMockDoseEventRepository(t)
	svc := NewDoseLogService(mockDoseRepo)

	ctx := context.Background()
	input := doseInput(entity.DoseStatusSkipped)

	mockDoseRepo.EXPECT().
		HasActionedEvent(ctx, input.MedicationID, input.ScheduledAt).
		Return(false, nil)

	mockDoseRepo.EXPECT().
		CreateDoseEvent(ctx, mock.AnythingOfType("*entity.DoseEvent")).
		Return(nil)

	event, err := svc.LogDose(ctx, uuid.New(), input)
	require.NoError(t, err)
	assert.Equal(t, entity.DoseStatusSkipped, event.Status)
	assert.Nil(t, event.TakenAt)
}

func TestDoseLogService_LogDose_InvalidStatus(t *testing.T) {
	mockDoseRepo := mockRepo.NewMockDoseEventRepository(t)
	svc := NewDoseLogService(mockDoseRepo)

	ctx := context.Background()

	for _, status := range []entity.DoseStatus{entity.DoseStatusPending, entity.DoseStatusMissed, "bogus"} {
		event, err := svc.LogDose(ctx, uuid.New(), doseInput(status))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidDoseStatus))
		assert.Nil(t, event)
	}
}

func TestDoseLogService_LogDose_AlreadyLogged(t *testing.T) {
	mockDoseRepo := mockRepo.NewMockDoseEventRepository(t)
	svc := NewDoseLogService(mockDoseRepo)

	ctx := context.Background()
	input := doseInput(entity.DoseStatusTaken)

	mockDoseRepo.EXPECT().
		HasActionedEvent(ctx, input.MedicationID, input.ScheduledAt).
		Return(true, nil)

	event, err := svc.LogDose(ctx, uuid.New(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDoseAlreadyLogged))
	assert.Nil(t, event)
}

func TestDoseLogService_GetHistory_ClampsLimit(t *testing.T) {
	mockDoseRepo := mockRepo.NewMockDoseEventRepository(t)
	svc := NewDoseLogService(mockDoseRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockDoseRepo.EXPECT().
		FindEventsByUser(ctx, userID, defaultHistoryLimit, 0).
		Return([]*entity.DoseEvent{}, nil)

	_, err := svc.GetHistory(ctx, userID, 0, -5)
	require.NoError(t, err)

	mockDoseRepo.EXPECT().
		FindEventsByUser(ctx, userID, maxHistoryLimit, 10).
		Return([]*entity.DoseEvent{}, nil)

	_, err = svc.GetHistory(ctx, userID, 10000, 10)
	require.NoError(t, err)
}
