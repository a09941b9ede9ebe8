// Package notification implements the push gateway using Firebase Cloud
// Messaging.
package notification

import (
	"context"

	"medremind/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// FCM rejects multicast requests with more than 500 tokens.
const multicastTokenLimit = 500

// Android notification channel the mobile app registers for reminders.
const androidChannelID = "medication_reminders"

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a PushService backed by FCM.
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.PushService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendMulticast sends one notification to up to 500 device tokens. Tokens the
// gateway reports as unregistered or malformed are returned in invalidTokens;
// every other per-token error only counts toward failureCount. A transport
// level failure wraps service.ErrGatewayUnavailable.
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > multicastTokenLimit {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), multicastTokenLimit)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: androidChannelID,
				Sound:     "default",
			},
		},
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, errors.Wrapf(service.ErrGatewayUnavailable, "multicast send failed: %v", err)
	}

	successCount = response.SuccessCount
	failureCount = response.FailureCount

	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsUnregistered(sendResponse.Error) || messaging.IsInvalidArgument(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	// Invalid tokens are permanent rejections, not transient failures.
	failureCount -= len(invalidTokens)

	return successCount, failureCount, invalidTokens, nil
}
