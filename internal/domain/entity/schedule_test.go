package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicationSchedule_Validate(t *testing.T) {
	schedule := &MedicationSchedule{
		Hour:       8,
		Minute:     30,
		DaysOfWeek: []time.Weekday{time.Monday, time.Friday},
		IsEnabled:  true,
	}
	require.NoError(t, schedule.Validate())

	schedule.Hour = 24
	assert.Error(t, schedule.Validate())

	schedule.Hour = 8
	schedule.Minute = 60
	assert.Error(t, schedule.Validate())

	schedule.Minute = 30
	schedule.DaysOfWeek = nil
	assert.Error(t, schedule.Validate())

	// A disabled schedule may have an empty weekday set.
	schedule.IsEnabled = false
	assert.NoError(t, schedule.Validate())

	schedule.DaysOfWeek = []time.Weekday{7}
	assert.Error(t, schedule.Validate())
}

func TestMedicationSchedule_ActiveOn(t *testing.T) {
	schedule := &MedicationSchedule{
		DaysOfWeek: []time.Weekday{time.Sunday, time.Wednesday},
	}

	assert.True(t, schedule.ActiveOn(time.Sunday))
	assert.True(t, schedule.ActiveOn(time.Wednesday))
	assert.False(t, schedule.ActiveOn(time.Monday))
}

func TestMedicationSchedule_OccurrenceOn(t *testing.T) {
	schedule := &MedicationSchedule{Hour: 23, Minute: 59}

	day := time.Date(2024, 1, 8, 0, 0, 30, 0, time.UTC)
	occurrence := schedule.OccurrenceOn(day)

	assert.Equal(t, time.Date(2024, 1, 8, 23, 59, 0, 0, time.UTC), occurrence)
	assert.Equal(t, time.Monday, occurrence.Weekday())
}

func TestMedication_ReminderBody(t *testing.T) {
	medication := &Medication{Name: "Metformin", Dosage: "500mg"}
	assert.Equal(t, "Metformin - 500mg", medication.ReminderBody())

	medication.Dosage = ""
	assert.Equal(t, "Metformin", medication.ReminderBody())
}

func TestDoseStatus_Actioned(t *testing.T) {
	assert.True(t, DoseStatusTaken.Actioned())
	assert.True(t, DoseStatusSkipped.Actioned())
	assert.False(t, DoseStatusPending.Actioned())
	assert.False(t, DoseStatusMissed.Actioned())
}
