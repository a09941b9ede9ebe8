package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledService_SendMulticast(t *testing.T) {
	svc := NewDisabledService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	successCount, failureCount, invalidTokens, err := svc.SendMulticast(
		context.Background(),
		[]string{"token-a", "token-b"},
		"Time for your medication",
		"Metformin - 500mg",
		map[string]string{"type": "medication_reminder"},
	)

	require.NoError(t, err)
	assert.Equal(t, 0, successCount)
	assert.Equal(t, 0, failureCount)
	assert.Empty(t, invalidTokens)
}
