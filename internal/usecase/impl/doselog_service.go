package impl

import (
	"context"
	"time"

	"medremind/internal/domain/entity"
	domainerrors "medremind/internal/domain/errors"
	"medremind/internal/domain/repository"
	"medremind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type doseLogService struct {
	doseRepo repository.DoseEventRepository
}

// NewDoseLogService creates a new dose log service instance
func NewDoseLogService(doseRepo repository.DoseEventRepository) usecase.DoseLogUsecase {
	return &doseLogService{
		doseRepo: doseRepo,
	}
}

// LogDose records a taken or skipped dose for a scheduled instant. Recording
// it is what stops the scheduler from re-notifying that slot.
func (s *doseLogService) LogDose(ctx context.Context, userID uuid.UUID, input *usecase.DoseLogInput) (*entity.DoseEvent, error) {
	if !input.Status.Actioned() {
		return nil, domainerrors.ErrInvalidDoseStatus
	}

	actioned, err := s.doseRepo.HasActionedEvent(ctx, input.MedicationID, input.ScheduledAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check dose history")
	}
	if actioned {
		return nil, domainerrors.ErrDoseAlreadyLogged
	}

	event := &entity.DoseEvent{
		ID:           uuid.New(),
		UserID:       userID,
		MedicationID: input.MedicationID,
		ScheduleID:   input.ScheduleID,
		ScheduledAt:  input.ScheduledAt,
		Status:       input.Status,
		Note:         input.Note,
	}

	if input.Status == entity.DoseStatusTaken {
		now := time.Now()
		event.TakenAt = &now
	}

	if err := s.doseRepo.CreateDoseEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create dose event")
	}

	return event, nil
}

// GetHistory retrieves the user's dose history, newest first.
func (s *doseLogService) GetHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DoseEvent, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	events, err := s.doseRepo.FindEventsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find dose events")
	}

	return events, nil
}
