package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"medremind/internal/domain/entity"
	"medremind/internal/domain/service"
	"medremind/internal/infra/notification"
	mockRepo "medremind/internal/mocks/repository"
	mockSvc "medremind/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testMedication(userID uuid.UUID) *entity.Medication {
	return &entity.Medication{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     "Metformin",
		Dosage:   "500mg",
		IsActive: true,
	}
}

func deviceToken(userID uuid.UUID, token string) *entity.DeviceToken {
	return &entity.DeviceToken{
		ID:       uuid.New(),
		UserID:   userID,
		Token:    token,
		Platform: entity.PlatformIOS,
	}
}

func TestNotificationService_SendMedicationReminder_InvalidTokenReported(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPushSvc := mockSvc.NewMockPushService(t)
	svc := NewNotificationService(mockDeviceRepo, mockPushSvc)

	ctx := context.Background()
	userID := uuid.New()
	medication := testMedication(userID)
	scheduleID := uuid.New()
	scheduledAt := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)

	mockDeviceRepo.EXPECT().
		FindTokensByUser(ctx, userID).
		Return([]*entity.DeviceToken{
			deviceToken(userID, "token-a"),
			deviceToken(userID, "token-b"),
		}, nil)

	// Token B is gone from the vendor side; it must be reported as invalid
	// and excluded from the failure count.
	mockPushSvc.EXPECT().
		SendMulticast(ctx, []string{"token-a", "token-b"}, "Time for your medication", "Metformin - 500mg", mock.Anything).
		Return(1, 0, []string{"token-b"}, nil)

	result, err := svc.SendMedicationReminder(ctx, userID, medication, scheduleID, scheduledAt)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	assert.Equal(t, []string{"token-b"}, result.InvalidTokens)
}

func TestNotificationService_SendMedicationReminder_PayloadFields(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPushSvc := mockSvc.NewMockPushService(t)
	svc := NewNotificationService(mockDeviceRepo, mockPushSvc)

	ctx := context.Background()
	userID := uuid.New()
	medication := testMedication(userID)
	scheduleID := uuid.New()
	scheduledAt := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)

	mockDeviceRepo.EXPECT().
		FindTokensByUser(ctx, userID).
		Return([]*entity.DeviceToken{deviceToken(userID, "token-a")}, nil)

	var sentData map[string]string
	mockPushSvc.EXPECT().
		SendMulticast(ctx, []string{"token-a"}, "Time for your medication", "Metformin - 500mg", mock.Anything).
		Run(func(ctx context.Context, tokens []string, title string, body string, data map[string]string) {
			sentData = data
		}).
		Return(1, 0, nil, nil)

	_, err := svc.SendMedicationReminder(ctx, userID, medication, scheduleID, scheduledAt)
	require.NoError(t, err)

	assert.Equal(t, "medication_reminder", sentData["type"])
	assert.Equal(t, medication.ID.String(), sentData["medication_id"])
	assert.Equal(t, scheduleID.String(), sentData["schedule_id"])
	assert.Equal(t, scheduledAt.Format(time.RFC3339), sentData["scheduled_at"])
}

func TestNotificationService_SendMedicationReminder_NoDevices(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPushSvc := mockSvc.NewMockPushService(t)
	svc := NewNotificationService(mockDeviceRepo, mockPushSvc)

	ctx := context.Background()
	userID := uuid.New()
	medication := testMedication(userID)

	mockDeviceRepo.EXPECT().
		FindTokensByUser(ctx, userID).
		Return([]*entity.DeviceToken{}, nil)

	result, err := svc.SendMedicationReminder(ctx, userID, medication, uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	assert.Empty(t, result.InvalidTokens)
}

func TestNotificationService_SendMedicationReminder_GatewayUnavailable(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPushSvc := mockSvc.NewMockPushService(t)
	svc := NewNotificationService(mockDeviceRepo, mockPushSvc)

	ctx := context.Background()
	userID := uuid.New()
	medication := testMedication(userID)

	mockDeviceRepo.EXPECT().
		FindTokensByUser(ctx, userID).
		Return([]*entity.DeviceToken{deviceToken(userID, "token-a")}, nil)

	mockPushSvc.EXPECT().
		SendMulticast(ctx, []string{"token-a"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.Wrap(service.ErrGatewayUnavailable, "send multicast"))

	result, err := svc.SendMedicationReminder(ctx, userID, medication, uuid.New(), time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrGatewayUnavailable))
	assert.Nil(t, result)
}

func TestNotificationService_SendMedicationReminder_GatewayDisabled(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewNotificationService(mockDeviceRepo, notification.NewDisabledService(slog.New(slog.NewTextHandler(io.Discard, nil))))

	ctx := context.Background()
	userID := uuid.New()
	medication := testMedication(userID)

	// A deployment without push credentials still has registered tokens;
	// dispatching must degrade to a zero result instead of failing.
	mockDeviceRepo.EXPECT().
		FindTokensByUser(ctx, userID).
		Return([]*entity.DeviceToken{deviceToken(userID, "token-a")}, nil)

	result, err := svc.SendMedicationReminder(ctx, userID, medication, uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	assert.Empty(t, result.InvalidTokens)
}

func TestNotificationService_SendTestNotification(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockPushSvc := mockSvc.NewMockPushService(t)
	svc := NewNotificationService(mockDeviceRepo, mockPushSvc)

	ctx := context.Background()
	userID := uuid.New()

	mockDeviceRepo.EXPECT().
		FindTokensByUser(ctx, userID).
		Return([]*entity.DeviceToken{deviceToken(userID, "token-a")}, nil)

	mockPushSvc.EXPECT().
		SendMulticast(ctx, []string{"token-a"}, "Test Notification", mock.Anything, map[string]string{"type": "test"}).
		Return(1, 0, nil, nil)

	result, err := svc.SendTestNotification(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
}
