package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mockUC "medremind/internal/mocks/usecase"
	"medremind/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReminderHandler(t *testing.T) (*ReminderHandler, *mockUC.MockNotificationUsecase) {
	mockNotificationUC := mockUC.NewMockNotificationUsecase(t)
	h := NewReminderHandler(ReminderHandlerParams{
		NotificationUC: mockNotificationUC,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, mockNotificationUC
}

func TestReminderHandler_SendTestNotification_ReportsInvalidTokens(t *testing.T) {
	h, mockNotificationUC := testReminderHandler(t)

	userID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/notifications/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	mockNotificationUC.EXPECT().
		SendTestNotification(req.Context(), userID).
		Return(&usecase.DispatchResult{SuccessCount: 1, FailureCount: 0, InvalidTokens: []string{"stale-token"}}, nil)

	require.NoError(t, h.SendTestNotification(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data usecase.DispatchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.SuccessCount)
	assert.Equal(t, []string{"stale-token"}, body.Data.InvalidTokens)
}

func TestReminderHandler_SendTestNotification_Unauthenticated(t *testing.T) {
	h, _ := testReminderHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/notifications/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SendTestNotification(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
