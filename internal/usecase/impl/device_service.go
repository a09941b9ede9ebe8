package impl

import (
	"context"
	"time"

	"medremind/internal/domain/entity"
	"medremind/internal/domain/repository"
	"medremind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a push token for the user. The registry is keyed
// on the token string, so registering a token that another account holds
// moves it to this user.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.DeviceToken, error) {
	token := &entity.DeviceToken{
		ID:         uuid.New(),
		UserID:     userID,
		Token:      deviceInfo.Token,
		Platform:   deviceInfo.Platform,
		LastUsedAt: time.Now(),
	}

	if err := s.deviceRepo.UpsertToken(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to upsert device token")
	}

	return token, nil
}

// GetUserDevices retrieves all tokens registered by the user.
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error) {
	tokens, err := s.deviceRepo.FindTokensByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens by user")
	}

	return tokens, nil
}

// UnregisterDevice removes a single token from the registry.
func (s *deviceService) UnregisterDevice(ctx context.Context, token string) error {
	if err := s.deviceRepo.DeleteToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrDeviceTokenNotFound) {
			return repository.ErrDeviceTokenNotFound
		}

		return errors.Wrap(err, "failed to delete device token")
	}

	return nil
}
