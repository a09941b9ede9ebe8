package postgres

import (
	"context"
	"time"

	"medremind/internal/domain/entity"
	domainerrors "medremind/internal/domain/errors"
	"medremind/internal/domain/repository"
	"medremind/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var actionedStatuses = []string{
	string(entity.DoseStatusTaken),
	string(entity.DoseStatusSkipped),
}

type doseEventRepository struct {
	db *gorm.DB
}

// NewDoseEventRepository is the constructor for doseEventRepository.
func NewDoseEventRepository(db *gorm.DB) repository.DoseEventRepository {
	return &doseEventRepository{db: db}
}

// HasActionedEvent reports whether a taken or skipped event exists for the
// exact (medication, scheduled instant) key.
func (repo *doseEventRepository) HasActionedEvent(ctx context.Context, medicationID uuid.UUID, scheduledAt time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DoseEventModel{}).
		Where("user_medication_id = ? AND scheduled_at = ? AND status IN ?", medicationID, scheduledAt, actionedStatuses).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check actioned dose event")
	}

	return count > 0, nil
}

// CreateDoseEvent appends one event to the ledger.
func (repo *doseEventRepository) CreateDoseEvent(ctx context.Context, event *entity.DoseEvent) error {
	eventM := fromDoseEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDoseAlreadyLogged
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dose event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FindEventsByUser retrieves a user's dose history, newest first.
func (repo *doseEventRepository) FindEventsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DoseEvent, error) {
	var eventModels []*model.DoseEventModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dose events by user")
	}

	events := make([]*entity.DoseEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toDoseEventDomain(eventM))
	}

	return events, nil
}

// --- Mapper Functions ---

func toDoseEventDomain(data *model.DoseEventModel) *entity.DoseEvent {
	if data == nil {
		return nil
	}

	return &entity.DoseEvent{
		ID:           data.ID,
		UserID:       data.UserID,
		MedicationID: data.UserMedicationID,
		ScheduleID:   data.MedicationScheduleID,
		ScheduledAt:  data.ScheduledAt,
		TakenAt:      data.TakenAt,
		Status:       entity.DoseStatus(data.Status),
		Note:         data.Note,
		CreatedAt:    data.CreatedAt,
	}
}

func fromDoseEventDomain(data *entity.DoseEvent) *model.DoseEventModel {
	if data == nil {
		return nil
	}

	return &model.DoseEventModel{
		ID:                   data.ID,
		UserID:               data.UserID,
		UserMedicationID:     data.MedicationID,
		MedicationScheduleID: data.ScheduleID,
		ScheduledAt:          data.ScheduledAt,
		TakenAt:              data.TakenAt,
		Status:               string(data.Status),
		Note:                 data.Note,
		CreatedAt:            data.CreatedAt,
	}
}
