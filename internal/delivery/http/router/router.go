// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medremind/config"
	"medremind/internal/delivery/http/middleware"
	"medremind/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	DeviceHandler     *handler.DeviceHandler
	DoseHandler       *handler.DoseHandler
	MedicationHandler *handler.MedicationHandler
	ReminderHandler   *handler.ReminderHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg               *config.Config
	deviceHandler     *handler.DeviceHandler
	doseHandler       *handler.DoseHandler
	medicationHandler *handler.MedicationHandler
	reminderHandler   *handler.ReminderHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:               params.Config,
		deviceHandler:     params.DeviceHandler,
		doseHandler:       params.DoseHandler,
		medicationHandler: params.MedicationHandler,
		reminderHandler:   params.ReminderHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Device registry routes
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.DELETE("/:token", r.deviceHandler.UnregisterDevice)
	}

	// Dose history routes
	doseGroup := e.Group("/doses")
	doseGroup.Use(r.authMiddleware.Authenticate)
	{
		doseGroup.POST("", r.doseHandler.LogDose)
		doseGroup.GET("", r.doseHandler.GetHistory)
	}

	// Medication routes
	medicationGroup := e.Group("/medications")
	medicationGroup.Use(r.authMiddleware.Authenticate)
	{
		medicationGroup.GET("/:id/share-qr", r.medicationHandler.GetShareQR)
	}

	// Operational routes are registered only when explicitly enabled
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		schedulerGroup := e.Group("/scheduler")
		schedulerGroup.Use(r.authMiddleware.Authenticate)
		{
			schedulerGroup.POST("/trigger", r.reminderHandler.TriggerEvaluation)
		}

		testGroup := e.Group("/notifications")
		testGroup.Use(r.authMiddleware.Authenticate)
		{
			testGroup.POST("/test", r.reminderHandler.SendTestNotification)
		}
	}
}
