package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device platforms accepted by the registry.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

// DeviceToken represents one push-delivery token registered by a user's
// device. The token string is unique across the registry; re-registering an
// existing token reassigns it to the registering user.
type DeviceToken struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Token      string    `json:"token"`    // FCM registration token.
	Platform   string    `json:"platform"` // ios or android.
	LastUsedAt time.Time `json:"last_used_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
