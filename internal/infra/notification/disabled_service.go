package notification

import (
	"context"
	"log/slog"

	"medremind/internal/domain/service"
)

type disabledService struct {
	logger *slog.Logger
}

// NewDisabledService creates a PushService for deployments without push
// credentials. Every send is dropped with a warning and reported as a zero
// result, so callers behave exactly as for a user with no devices.
func NewDisabledService(logger *slog.Logger) service.PushService {
	return &disabledService{logger: logger}
}

func (s *disabledService) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.Warn("push gateway is not configured, dropping notification",
		slog.Int("tokens", len(tokens)),
		slog.String("title", title),
	)

	return 0, 0, nil, nil
}
