package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"medremind/config"
	"medremind/internal/delivery"
	"medremind/internal/delivery/http"
	"medremind/internal/delivery/http/middleware"
	"medremind/internal/delivery/http/router/handler"
	"medremind/internal/domain/repository"
	"medremind/internal/domain/service"
	"medremind/internal/infra/auth"
	logs "medremind/internal/infra/log"
	"medremind/internal/infra/notification"
	"medremind/internal/infra/persistence/postgres"
	"medremind/internal/infra/qrcode"
	"medremind/internal/scheduler"
	"medremind/internal/usecase"
	"medremind/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectScheduler(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startScheduler,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewMedicationRepository,
			postgres.NewScheduleRepository,
			postgres.NewDoseEventRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newFirebaseService,
			newQRCodeService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection.
// Without credentials the gateway degrades to a warn-and-drop stub so the
// scheduler and the API keep running.
func newFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("firebase is not configured, push delivery disabled")

		return notification.NewDisabledService(logger), nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newReminderEvaluator,
			impl.NewNotificationService,
			impl.NewDeviceService,
			impl.NewDoseLogService,
			impl.NewMedicationService,
		),
	)
}

// newReminderEvaluator wires the evaluator with the configured due window
func newReminderEvaluator(
	cfg *config.Config,
	scheduleRepo repository.ScheduleRepository,
	doseRepo repository.DoseEventRepository,
) usecase.ReminderEvaluator {
	return impl.NewReminderEvaluator(scheduleRepo, doseRepo, cfg.Reminder.Lookback)
}

func injectScheduler() fx.Option {
	return fx.Options(
		fx.Provide(
			newScheduler,
		),
	)
}

// newScheduler wires the reminder scheduler
func newScheduler(
	cfg *config.Config,
	logger *slog.Logger,
	evaluator usecase.ReminderEvaluator,
	notificationUC usecase.NotificationUsecase,
	medicationRepo repository.MedicationRepository,
	deviceRepo repository.DeviceRepository,
) *scheduler.Scheduler {
	return scheduler.New(cfg.Reminder, logger, evaluator, notificationUC, medicationRepo, deviceRepo)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeviceHandler,
			handler.NewDoseHandler,
			handler.NewMedicationHandler,
			handler.NewReminderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startScheduler binds the reminder scheduler to the application lifecycle
func startScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Stop()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
