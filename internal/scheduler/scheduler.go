// Package scheduler runs the periodic reminder evaluation and dispatch loop.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"medremind/config"
	"medremind/internal/domain/repository"
	"medremind/internal/usecase"

	"github.com/pkg/errors"
)

// ErrCycleInFlight is returned by TriggerOnce when an evaluation cycle is
// already running. Ticks overlapping this way are skipped, never queued.
var ErrCycleInFlight = errors.New("evaluation cycle already in flight")

// Scheduler drives the reminder pipeline: every interval it asks the
// evaluator for due reminders, dispatches a push per due slot, and prunes
// device tokens the gateway confirmed invalid. All collaborators are injected;
// independent instances can run side by side in tests.
type Scheduler struct {
	logger         *slog.Logger
	cfg            config.ReminderConfig
	evaluator      usecase.ReminderEvaluator
	notificationUC usecase.NotificationUsecase
	medicationRepo repository.MedicationRepository
	deviceRepo     repository.DeviceRepository

	// now is a clock seam for tests.
	now func() time.Time

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}

	cycleInFlight atomic.Bool
}

// New creates a stopped scheduler.
func New(
	cfg config.ReminderConfig,
	logger *slog.Logger,
	evaluator usecase.ReminderEvaluator,
	notificationUC usecase.NotificationUsecase,
	medicationRepo repository.MedicationRepository,
	deviceRepo repository.DeviceRepository,
) *Scheduler {
	return &Scheduler{
		logger:         logger,
		cfg:            cfg,
		evaluator:      evaluator,
		notificationUC: notificationUC,
		medicationRepo: medicationRepo,
		deviceRepo:     deviceRepo,
		now:            time.Now,
	}
}

// Start launches the tick loop. Calling Start on a running scheduler is a
// logged no-op. The first evaluation runs immediately rather than one
// interval later.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.logger.Warn("reminder scheduler is already running")

		return
	}

	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go s.run(s.stop, s.done)

	s.logger.Info("reminder scheduler started",
		slog.Duration("interval", s.cfg.Interval),
		slog.Duration("lookback", s.cfg.Lookback),
	)
}

// Stop cancels the tick timer and transitions to stopped. An in-flight cycle
// is allowed to finish: a push either already left the process or it did not,
// so it is never aborted midway. Stopping a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()

	if !s.running {
		s.mu.Unlock()
		s.logger.Warn("reminder scheduler is not running")

		return
	}

	close(s.stop)
	done := s.done
	s.running = false
	s.mu.Unlock()

	<-done

	s.logger.Info("reminder scheduler stopped")
}

// IsRunning reports the scheduler state.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// TriggerOnce runs one evaluation cycle synchronously, for operational and
// test use. Returns ErrCycleInFlight when a cycle is already running.
func (s *Scheduler) TriggerOnce(ctx context.Context) error {
	s.logger.Info("manually triggering reminder evaluation")

	return s.runCycle(ctx)
}

func (s *Scheduler) run(stop, done chan struct{}) {
	defer close(done)

	s.tick()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.TickTimeout)
	defer cancel()

	if err := s.runCycle(ctx); err != nil && !errors.Is(err, ErrCycleInFlight) {
		// A failed tick aborts itself only; the next tick retries. The polling
		// interval already bounds the retry rate.
		s.logger.Error("reminder evaluation tick failed", slog.Any("error", err))
	}
}

// runCycle performs one evaluate-and-dispatch pass. Cycles are strictly
// sequential: overlapping invocations are skipped so two evaluations can
// never race each other into duplicate notifications.
func (s *Scheduler) runCycle(ctx context.Context) error {
	if !s.cycleInFlight.CompareAndSwap(false, true) {
		s.logger.Warn("previous evaluation cycle still in flight, skipping")

		return ErrCycleInFlight
	}
	defer s.cycleInFlight.Store(false)

	now := s.now()
	due, err := s.evaluator.FindDue(ctx, now)
	if err != nil {
		return errors.Wrap(err, "failed to evaluate due reminders")
	}

	if len(due) == 0 {
		s.logger.Debug("no due reminders", slog.Time("now", now))

		return nil
	}

	s.logger.Info("dispatching due reminders", slog.Int("count", len(due)))

	sem := make(chan struct{}, s.cfg.DispatchWorkers)
	var wg sync.WaitGroup
	for _, reminder := range due {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			s.dispatch(ctx, reminder)
		}()
	}
	wg.Wait()

	return nil
}

// dispatch sends one due reminder and prunes confirmed-invalid tokens. Any
// failure here is contained: it never affects the other due reminders of the
// same cycle.
func (s *Scheduler) dispatch(ctx context.Context, reminder *usecase.DueReminder) {
	logger := s.logger.With(
		slog.String("user_id", reminder.UserID.String()),
		slog.String("medication_id", reminder.MedicationID.String()),
		slog.Time("scheduled_at", reminder.ScheduledAt),
	)

	medication, err := s.medicationRepo.FindMedicationByID(ctx, reminder.MedicationID)
	if err != nil {
		logger.Error("failed to load medication for reminder", slog.Any("error", err))

		return
	}

	result, err := s.notificationUC.SendMedicationReminder(ctx, reminder.UserID, medication, reminder.ScheduleID, reminder.ScheduledAt)
	if err != nil {
		// Gateway unreachable: all tokens count as failed, none as invalid.
		// Nothing is pruned and the slot stays due for the next tick.
		logger.Warn("reminder dispatch failed", slog.Any("error", err))

		return
	}

	if len(result.InvalidTokens) > 0 {
		if err := s.deviceRepo.DeleteTokens(ctx, result.InvalidTokens); err != nil {
			logger.Error("failed to prune invalid device tokens", slog.Any("error", err))
		} else {
			logger.Info("pruned invalid device tokens", slog.Int("count", len(result.InvalidTokens)))
		}
	}

	if result.SuccessCount == 0 && result.FailureCount == 0 && len(result.InvalidTokens) == 0 {
		logger.Debug("no devices registered for reminder")

		return
	}

	logger.Info("reminder dispatched",
		slog.String("medication", medication.Name),
		slog.Int("delivered", result.SuccessCount),
		slog.Int("failed", result.FailureCount),
	)
}
