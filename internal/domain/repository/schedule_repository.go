package repository

import (
	"context"

	"medremind/internal/domain/entity"
)

// ScheduleRepository reads the schedule store. Schedules are created and
// edited by the external CRUD API; this subsystem only lists them.
type ScheduleRepository interface {
	// ListEnabledSchedules retrieves every enabled schedule whose medication
	// is still active.
	ListEnabledSchedules(ctx context.Context) ([]*entity.MedicationSchedule, error)
}
