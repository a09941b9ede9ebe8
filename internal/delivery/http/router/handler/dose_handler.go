package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"medremind/internal/delivery/http/response"
	"medremind/internal/domain/entity"
	"medremind/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DoseHandlerParams holds dependencies for DoseHandler, injected by Fx.
type DoseHandlerParams struct {
	fx.In

	DoseLogUC usecase.DoseLogUsecase
	Logger    *slog.Logger
}

// DoseHandler holds dependencies for dose-history handlers
type DoseHandler struct {
	doseLogUC usecase.DoseLogUsecase
	logger    *slog.Logger
}

// NewDoseHandler is the constructor for DoseHandler
func NewDoseHandler(params DoseHandlerParams) *DoseHandler {
	return &DoseHandler{
		doseLogUC: params.DoseLogUC,
		logger:    params.Logger,
	}
}

// LogDoseRequest represents the request body for logging a dose action
type LogDoseRequest struct {
	MedicationID string `json:"medication_id" validate:"required,uuid"`
	ScheduleID   string `json:"schedule_id" validate:"required,uuid"`
	ScheduledAt  string `json:"scheduled_at" validate:"required"`
	Status       string `json:"status" validate:"required,oneof=taken skipped"`
	Note         string `json:"note"`
}

// LogDose handles recording a taken or skipped dose
func (h *DoseHandler) LogDose(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req LogDoseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dose input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	medicationID, err := uuid.Parse(req.MedicationID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid medication ID")
	}

	scheduleID, err := uuid.Parse(req.ScheduleID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid schedule ID")
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return response.BadRequest(c, "INVALID_TIME", "scheduled_at must be RFC 3339")
	}

	input := &usecase.DoseLogInput{
		MedicationID: medicationID,
		ScheduleID:   scheduleID,
		ScheduledAt:  scheduledAt,
		Status:       entity.DoseStatus(req.Status),
		Note:         req.Note,
	}

	event, err := h.doseLogUC.LogDose(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, event, "Dose logged successfully")
}

// GetHistory handles retrieving the user's dose history
func (h *DoseHandler) GetHistory(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	events, err := h.doseLogUC.GetHistory(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events, "Dose history retrieved successfully")
}
