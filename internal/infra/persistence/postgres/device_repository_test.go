package postgres

import (
	"testing"
	"time"

	"medremind/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDeviceTokenDomain_DefaultsLastUsedWithoutMutating(t *testing.T) {
	token := &entity.DeviceToken{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Token:    "fcm-token-123",
		Platform: entity.PlatformIOS,
	}

	tokenM := fromDeviceTokenDomain(token)
	require.NotNil(t, tokenM)

	assert.False(t, tokenM.LastUsedAt.IsZero())
	assert.True(t, token.LastUsedAt.IsZero(), "mapper must not write back into the entity")
}

func TestFromDeviceTokenDomain_KeepsExplicitLastUsed(t *testing.T) {
	lastUsed := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)
	token := &entity.DeviceToken{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Token:      "fcm-token-123",
		Platform:   entity.PlatformAndroid,
		LastUsedAt: lastUsed,
	}

	tokenM := fromDeviceTokenDomain(token)
	require.NotNil(t, tokenM)
	assert.Equal(t, lastUsed, tokenM.LastUsedAt)
}

func TestFromDeviceTokenDomain_Nil(t *testing.T) {
	assert.Nil(t, fromDeviceTokenDomain(nil))
}
