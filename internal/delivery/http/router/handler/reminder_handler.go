package handler

import (
	"log/slog"
	"net/http"

	"medremind/internal/delivery/http/response"
	"medremind/internal/scheduler"
	"medremind/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	Scheduler      *scheduler.Scheduler
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// ReminderHandler exposes operational endpoints for the reminder pipeline
type ReminderHandler struct {
	scheduler      *scheduler.Scheduler
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		scheduler:      params.Scheduler,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// TriggerEvaluation runs one reminder evaluation cycle synchronously
func (h *ReminderHandler) TriggerEvaluation(c echo.Context) error {
	if err := h.scheduler.TriggerOnce(c.Request().Context()); err != nil {
		if errors.Is(err, scheduler.ErrCycleInFlight) {
			return response.Conflict(c, "EVALUATION_IN_FLIGHT", "An evaluation cycle is already running")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "completed"}, "Reminder evaluation completed")
}

// SendTestNotification pushes a test message to the caller's devices
func (h *ReminderHandler) SendTestNotification(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	result, err := h.notificationUC.SendTestNotification(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Invalid tokens surface in the response body; pruning stays with the
	// scheduler, which sweeps them on its next dispatch to this user.
	if len(result.InvalidTokens) > 0 {
		h.logger.Warn("test notification hit invalid device tokens",
			slog.String("user_id", userID.String()),
			slog.Int("count", len(result.InvalidTokens)),
		)
	}

	return response.Success(c, http.StatusOK, result, "Test notification sent")
}
