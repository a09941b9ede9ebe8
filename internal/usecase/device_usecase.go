package usecase

import (
	"context"

	"medremind/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device token management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a push token for the user. Re-registering an
	// existing token reassigns it to this user.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.DeviceToken, error)

	// GetUserDevices retrieves all tokens registered by the user.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error)

	// UnregisterDevice removes a single token from the registry.
	UnregisterDevice(ctx context.Context, token string) error
}
