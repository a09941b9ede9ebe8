package repository

import (
	"context"

	"medremind/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceTokenNotFound is returned when a token is not in the registry.
var ErrDeviceTokenNotFound = errors.New("device token not found")

// DeviceRepository manages the push-token registry. It is mutated both by the
// API (register/unregister) and by the scheduler (prune on invalid token), so
// implementations must tolerate a token disappearing between calls.
type DeviceRepository interface {
	// UpsertToken registers a token, keyed on the token string. A conflict
	// reassigns the token to the given user and refreshes platform and
	// last-used timestamp.
	UpsertToken(ctx context.Context, token *entity.DeviceToken) error

	// FindTokensByUser retrieves all tokens registered by a user, newest first.
	FindTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error)

	// DeleteToken removes a single token. Returns ErrDeviceTokenNotFound when
	// the token is absent.
	DeleteToken(ctx context.Context, token string) error

	// DeleteTokens removes every listed token. Idempotent: absent tokens are
	// not an error.
	DeleteTokens(ctx context.Context, tokens []string) error
}
