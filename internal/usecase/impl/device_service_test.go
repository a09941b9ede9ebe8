package impl

import (
	"context"
	"testing"

	"medremind/internal/domain/entity"
	"medremind/internal/domain/repository"
	mockRepo "medremind/internal/mocks/repository"
	"medremind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		Token:    "fcm-token-123",
		Platform: entity.PlatformAndroid,
	}

	var upserted *entity.DeviceToken
	mockDeviceRepo.EXPECT().
		UpsertToken(ctx, mock.AnythingOfType("*entity.DeviceToken")).
		Run(func(ctx context.Context, token *entity.DeviceToken) {
			upserted = token
		}).
		Return(nil)

	device, err := svc.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	require.NotNil(t, device)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fcm-token-123", device.Token)
	assert.Equal(t, entity.PlatformAndroid, device.Platform)
	assert.False(t, device.LastUsedAt.IsZero())
	assert.Equal(t, device, upserted)
}

func TestDeviceService_RegisterDevice_RepositoryError(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()

	mockDeviceRepo.EXPECT().
		UpsertToken(ctx, mock.AnythingOfType("*entity.DeviceToken")).
		Return(errors.New("connection refused"))

	device, err := svc.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{Token: "t", Platform: entity.PlatformIOS})
	require.Error(t, err)
	assert.Nil(t, device)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	tokens := []*entity.DeviceToken{
		{ID: uuid.New(), UserID: userID, Token: "a", Platform: entity.PlatformIOS},
		{ID: uuid.New(), UserID: userID, Token: "b", Platform: entity.PlatformAndroid},
	}

	mockDeviceRepo.EXPECT().
		FindTokensByUser(ctx, userID).
		Return(tokens, nil)

	devices, err := svc.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, tokens, devices)
}

func TestDeviceService_UnregisterDevice(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()

	mockDeviceRepo.EXPECT().
		DeleteToken(ctx, "fcm-token-123").
		Return(nil)

	err := svc.UnregisterDevice(ctx, "fcm-token-123")
	require.NoError(t, err)
}

func TestDeviceService_UnregisterDevice_NotFound(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(mockDeviceRepo)

	ctx := context.Background()

	mockDeviceRepo.EXPECT().
		DeleteToken(ctx, "missing-token").
		Return(repository.ErrDeviceTokenNotFound)

	err := svc.UnregisterDevice(ctx, "missing-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrDeviceTokenNotFound))
}
