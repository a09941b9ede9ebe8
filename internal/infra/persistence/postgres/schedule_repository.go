package postgres

import (
	"context"
	"fmt"
	"time"

	"medremind/internal/domain/entity"
	"medremind/internal/domain/repository"
	"medremind/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// ListEnabledSchedules retrieves every enabled schedule whose medication is
// still active. Rows with an unparseable time of day are skipped; the caller
// owns neither table and must not fail the whole listing over one bad row.
func (repo *scheduleRepository) ListEnabledSchedules(ctx context.Context) ([]*entity.MedicationSchedule, error) {
	var scheduleModels []*model.ScheduleModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN user_medications ON user_medications.id = medication_schedules.user_medication_id").
		Where("medication_schedules.is_enabled = ? AND user_medications.is_active = ?", true, true).
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list enabled schedules")
	}

	schedules := make([]*entity.MedicationSchedule, 0, len(scheduleModels))
	for _, scheduleM := range scheduleModels {
		schedule, err := toScheduleDomain(scheduleM)
		if err != nil {
			continue
		}
		schedules = append(schedules, schedule)
	}

	return schedules, nil
}

func toScheduleDomain(data *model.ScheduleModel) (*entity.MedicationSchedule, error) {
	hour, minute, err := parseTimeOfDay(data.ScheduledTime)
	if err != nil {
		return nil, err
	}

	days := make([]time.Weekday, 0, len(data.DaysOfWeek))
	for _, day := range data.DaysOfWeek {
		days = append(days, time.Weekday(day))
	}

	schedule := &entity.MedicationSchedule{
		ID:           data.ID,
		UserID:       data.UserID,
		MedicationID: data.UserMedicationID,
		Hour:         hour,
		Minute:       minute,
		DaysOfWeek:   days,
		IsEnabled:    data.IsEnabled,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	return schedule, nil
}

// parseTimeOfDay accepts "HH:MM" or "HH:MM:SS" column values.
func parseTimeOfDay(value string) (hour, minute int, err error) {
	var second int
	if _, scanErr := fmt.Sscanf(value, "%d:%d:%d", &hour, &minute, &second); scanErr == nil {
		return hour, minute, nil
	}
	if _, scanErr := fmt.Sscanf(value, "%d:%d", &hour, &minute); scanErr == nil {
		return hour, minute, nil
	}

	return 0, 0, errors.Errorf("unparseable time of day %q", value)
}
