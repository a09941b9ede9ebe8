package impl

import (
	"context"
	"testing"
	"time"

	"medremind/internal/domain/entity"
	mockRepo "medremind/internal/mocks/repository"
	"medremind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSchedule builds an enabled schedule firing at the given time on the
// given weekdays.
func testSchedule(hour, minute int, days ...time.Weekday) *entity.MedicationSchedule {
	return &entity.MedicationSchedule{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		MedicationID: uuid.New(),
		Hour:         hour,
		Minute:       minute,
		DaysOfWeek:   days,
		IsEnabled:    true,
	}
}

func TestReminderEvaluator_FindDue_WithinWindow(t *testing.T) {
	mockScheduleRepo := mockRepo.NewMockScheduleRepository(t)
	mockDoseRepo := mockRepo.NewMockDoseEventRepository(t)
	evaluator := NewReminderEvaluator(mockScheduleRepo, mockDoseRepo, time.Minute)

	ctx := context.Background()
	schedule := testSchedule(8, 0, time.Monday)

	// 2024-01-08 is a Monday.
	now := time.Date(2024, 1, 8, 8, 0, 30, 0, time.UTC)
	occurrence := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)

	mockScheduleRepo.EXPECT().
		ListEnabledSchedules(ctx).
		Return([]*entity.MedicationSchedule{schedule}, nil)

	mockDoseRepo.EXPECT().
		HasActionedEvent(ctx, schedule.MedicationID, occurrence).
		Return(false, nil)

	due, err := evaluator.FindDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, schedule.UserID, due[0].UserID)
	assert.Equal(t, schedule.MedicationID, due[0].MedicationID)
	assert.Equal(t, schedule.ID, due[0].ScheduleID)
	assert.Equal(t, occurrence, due[0].ScheduledAt)
}

func TestReminderEvaluator_FindDue_InactiveWeekday(t *testing.T) {
	mockScheduleRepo := mockRepo.NewMockScheduleRepository(t)
	mockDoseRepo := mockRepo.NewMockDoseEventRepository(t)
	evaluator := NewReminderEvaluator(mockScheduleRepo, mockDoseRepo, time.Minute)

	ctx := context.Background()
	schedule := testSchedule(8, 0, time.Monday)

	// 2024-01-09 is a Tuesday, the schedule only fires on Mondays.
	now := time.Date(2024, 1, 9, 8, 0, 30, 0, time.UTC)

	mockScheduleRepo.EXPECT().
		ListEnabledSchedules(ctx).
		Return([]*entity.MedicationSchedule{schedule}, nil)

	due, err := evaluator.FindDue(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestReminderEvaluator_FindDue_FutureOccurrence(t *testing.T) {
	mockScheduleRepo := mockRepo.NewMockScheduleRepository(t)
	mockDoseRepo := mockRepo.NewMockDoseEventRepository(t)
	evaluator := NewReminderEvaluator(mockScheduleRepo, mockDoseRepo, time.Minute)

	ctx := context.Background()
	schedule := testSchedule(8, 0, time.Monday)

	// 30 seconds before the dose instant: not yet due.
	now := time.Date(2024, 1, 8, 7, 59, 30, 0, time.UTC)

	mockScheduleRepo.EXPECT().
		ListEnabledSchedules(ctx).
		Return([]*entity.MedicationSchedule{schedule}, nil)

	due, err := evaluator.FindDue(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestReminderEvaluator_FindDue_OutsideWindow(t *testing.T) {
	mockScheduleRepo := mockRepo.NewMockScheduleRepository(t)
	mockDoseRepo := mockRepo.NewMockDoseEventRepository(t)
	evaluator := NewReminderEvaluator(mockScheduleRepo, mockDoseRepo, time.Minute)

	ctx := context.Background()
	schedule := testSchedule(8, 0, time.Monday)

	// Five minutes past the dose instant with a one-minute window.
	now := time.Date(2024, 1, 8, 8, 5, 0, 0, time.UTC)

	mockScheduleRepo.EXPECT().
		ListEnabledSchedules(ctx).
		Return([]*entity.MedicationSchedule{schedule}, nil)

	due, err := evaluator.FindDue(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestReminderEvaluator_FindDue_ActionedDoseSuppressed(t *testing.T) {
	mockScheduleRepo := mockRepo.NewMockScheduleRepository(t)
	mockDoseRepo := mockRepo.NewMockDoseEventRepository(t)
	evaluator := NewReminderEvaluator(mockScheduleRepo, mockDoseRepo, time.Minute)

	ctx := context.Background()
	schedule := testSchedule(8, 0, time.Monday)

	now := time.Date(2024, 1, 8, 8, 0, 30, 0, time.UTC)
	occurrence := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)

	mockScheduleRepo.EXPECT().
		ListEnabledSchedules(ctx).
		Return([]*entity.MedicationSchedule{schedule}, nil)

	mockDoseRepo.EXPECT().
		HasActionedEvent(ctx, schedule.MedicationID, occurrence).
		Return(true, nil)

	due, err := evaluator.FindDue(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestReminderEvaluator_FindDue_WindowSpanningMidnight(t *testing.T) {
	mockScheduleRepo := mockRepo.NewMockScheduleRepository(t)
	mockDoseRepo := mockRepo.NewMockDoseEventRepository(t)
	evaluator := NewReminderEvaluator(mockScheduleRepo, mockDoseRepo, 2*time.Minute)

	ctx := context.Background()
	schedule := testSchedule(23, 59, time.Monday)

	// Just past midnight on Tuesday: the 23:59 occurrence belongs to Monday,
	// so the weekday check must use the occurrence date, not now.
	now := time.Date(2024, 1, 9, 0, 0, 30, 0, time.UTC)
	occurrence := time.Date(2024, 1, 8, 23, 59, 0, 0, time.UTC)

	mockScheduleRepo.EXPECT().
		ListEnabledSchedules(ctx).
		Return([]*entity.MedicationSchedule{schedule}, nil)

	mockDoseRepo.EXPECT().
		HasActionedEvent(ctx, schedule.MedicationID, occurrence).
		Return(false, nil)

	due, err := evaluator.FindDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, occurrence, due[0].ScheduledAt)
}

func TestReminderEvaluator_FindDue_ScheduleStoreError(t *testing.T) {
	mockScheduleRepo := mockRepo.NewMockScheduleRepository(t)
	mockDoseRepo := mockRepo.NewMockDoseEventRepository(t)
	evaluator := NewReminderEvaluator(mockScheduleRepo, mockDoseRepo, time.Minute)

	ctx := context.Background()

	mockScheduleRepo.EXPECT().
		ListEnabledSchedules(ctx).
		Return(nil, errors.New("connection refused"))

	due, err := evaluator.FindDue(ctx, time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrStoreUnavailable))
	assert.Nil(t, due)
}

func TestReminderEvaluator_FindDue_DoseLedgerError(t *testing.T) {
	mockScheduleRepo := mockRepo.NewMockScheduleRepository(t)
	mockDoseRepo := mockRepo.NewMockDoseEventRepository(t)
	evaluator := NewReminderEvaluator(mockScheduleRepo, mockDoseRepo, time.Minute)

	ctx := context.Background()
	schedule := testSchedule(8, 0, time.Monday)
	now := time.Date(2024, 1, 8, 8, 0, 30, 0, time.UTC)

	mockScheduleRepo.EXPECT().
		ListEnabledSchedules(ctx).
		Return([]*entity.MedicationSchedule{schedule}, nil)

	mockDoseRepo.EXPECT().
		HasActionedEvent(ctx, schedule.MedicationID, schedule.OccurrenceOn(now)).
		Return(false, errors.New("connection refused"))

	due, err := evaluator.FindDue(ctx, now)
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrStoreUnavailable))
	assert.Nil(t, due)
}
