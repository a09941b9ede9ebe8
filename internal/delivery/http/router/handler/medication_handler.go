package handler

import (
	"log/slog"
	"net/http"

	"medremind/internal/delivery/http/response"
	"medremind/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MedicationHandlerParams holds dependencies for MedicationHandler, injected by Fx.
type MedicationHandlerParams struct {
	fx.In

	MedicationUC usecase.MedicationUsecase
	Logger       *slog.Logger
}

// MedicationHandler holds dependencies for medication-related handlers
type MedicationHandler struct {
	medicationUC usecase.MedicationUsecase
	logger       *slog.Logger
}

// NewMedicationHandler is the constructor for MedicationHandler
func NewMedicationHandler(params MedicationHandlerParams) *MedicationHandler {
	return &MedicationHandler{
		medicationUC: params.MedicationUC,
		logger:       params.Logger,
	}
}

// GetShareQR renders a PNG QR code for sharing a medication the caller owns
func (h *MedicationHandler) GetShareQR(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	medicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid medication ID")
	}

	png, err := h.medicationUC.GetMedicationShareQR(c.Request().Context(), userID, medicationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
