// Package service defines interfaces for external collaborator services.
package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrGatewayUnavailable is returned when the push gateway cannot be reached at
// all. Callers must treat every token in the request as failed, not invalid:
// tokens are never pruned on a transient outage.
var ErrGatewayUnavailable = errors.New("push gateway unavailable")

// PushService delivers push notifications through an external gateway.
type PushService interface {
	// SendMulticast sends one notification to many device tokens and reports
	// per-token outcomes: how many succeeded, how many failed transiently, and
	// which tokens the gateway rejected as permanently invalid.
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
