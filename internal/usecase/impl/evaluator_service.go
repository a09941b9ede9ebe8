// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"time"

	"medremind/internal/domain/repository"
	"medremind/internal/usecase"

	"github.com/pkg/errors"
)

type evaluatorService struct {
	scheduleRepo repository.ScheduleRepository
	doseRepo     repository.DoseEventRepository
	lookback     time.Duration
}

// NewReminderEvaluator creates an evaluator with the given trailing due
// window. The window should match the scheduler's polling interval so that
// tick jitter cannot drop a slot.
func NewReminderEvaluator(
	scheduleRepo repository.ScheduleRepository,
	doseRepo repository.DoseEventRepository,
	lookback time.Duration,
) usecase.ReminderEvaluator {
	return &evaluatorService{
		scheduleRepo: scheduleRepo,
		doseRepo:     doseRepo,
		lookback:     lookback,
	}
}

// FindDue computes the due reminders at the given instant.
//
// Every enabled schedule produces at most one occurrence per day at its
// configured time of day. An occurrence is due when it falls inside
// [now - lookback, now] and its own date's weekday is in the schedule's
// active set. Both now's date and the previous date are considered so that a
// window spanning local midnight still resolves the weekday from the
// occurrence instant, not from now.
func (s *evaluatorService) FindDue(ctx context.Context, now time.Time) ([]*usecase.DueReminder, error) {
	schedules, err := s.scheduleRepo.ListEnabledSchedules(ctx)
	if err != nil {
		return nil, errors.Wrapf(usecase.ErrStoreUnavailable, "list schedules: %v", err)
	}

	due := make([]*usecase.DueReminder, 0)
	for _, schedule := range schedules {
		for _, day := range []time.Time{now, now.AddDate(0, 0, -1)} {
			occurrence := schedule.OccurrenceOn(day)
			if occurrence.After(now) || now.Sub(occurrence) > s.lookback {
				continue
			}
			if !schedule.ActiveOn(occurrence.Weekday()) {
				continue
			}

			actioned, err := s.doseRepo.HasActionedEvent(ctx, schedule.MedicationID, occurrence)
			if err != nil {
				return nil, errors.Wrapf(usecase.ErrStoreUnavailable, "check dose history: %v", err)
			}
			if actioned {
				continue
			}

			due = append(due, &usecase.DueReminder{
				UserID:       schedule.UserID,
				MedicationID: schedule.MedicationID,
				ScheduleID:   schedule.ID,
				ScheduledAt:  occurrence,
			})
		}
	}

	return due, nil
}
