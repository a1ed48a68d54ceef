package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

func block(weekday int, start, end string, typ BlockType, visible bool) *ScheduleBlock {
	return &ScheduleBlock{
		ID:                uuid.New(),
		ProfessorID:       uuid.New(),
		Weekday:           weekday,
		StartTime:         types.MustTimeString(start),
		EndTime:           types.MustTimeString(end),
		Type:              typ,
		VisibleToStudents: visible,
	}
}

func TestAvailability_Resolve(t *testing.T) {
	a := NewAvailability(DefaultGrid(), []*ScheduleBlock{
		block(1, "07:00", "08:15", BlockTypeClass, true),
		block(1, "08:15", "09:30", BlockTypeOfficeHour, true),
		block(2, "09:30", "10:45", BlockTypeConsultation, true),
	})

	tests := []struct {
		name    string
		weekday int
		start   types.TimeString
		want    SlotState
	}{
		{name: "class", weekday: 1, start: "07:00", want: SlotOccupiedClass},
		{name: "office hour", weekday: 1, start: "08:15", want: SlotOccupiedOfficeHour},
		{name: "consultation", weekday: 2, start: "09:30", want: SlotBookableConsultation},
		{name: "empty slot", weekday: 3, start: "09:30", want: SlotUnset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Resolve(tt.weekday, tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.True(t, SlotBookableConsultation.IsBookable())
	assert.False(t, SlotUnset.IsBookable(), "empty slots are never bookable")
}

func TestAvailability_ResolveRejectsInvalidInput(t *testing.T) {
	a := NewAvailability(DefaultGrid(), nil)

	for _, w := range []int{0, 6, -3} {
		_, err := a.Resolve(w, "07:00")
		assert.ErrorIs(t, err, ErrValidation)
	}

	_, err := a.Resolve(1, "07:30")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAvailability_CheckBookable(t *testing.T) {
	a := NewAvailability(DefaultGrid(), []*ScheduleBlock{
		block(2, "09:30", "10:45", BlockTypeConsultation, true),
		block(2, "10:45", "12:00", BlockTypeClass, true),
	})

	assert.NoError(t, a.CheckBookable(2, "09:30"))
	assert.ErrorIs(t, a.CheckBookable(2, "10:45"), ErrSlotUnavailable)
	assert.ErrorIs(t, a.CheckBookable(2, "12:00"), ErrSlotUnavailable)
	assert.ErrorIs(t, a.CheckBookable(7, "09:30"), ErrValidation)
}

func TestAvailability_VisibleOnly(t *testing.T) {
	hidden := block(4, "07:00", "08:15", BlockTypeConsultation, false)
	shown := block(4, "08:15", "09:30", BlockTypeConsultation, true)
	blocks := []*ScheduleBlock{hidden, shown}

	editor := NewAvailability(DefaultGrid(), blocks)
	viewer := NewAvailability(DefaultGrid(), VisibleOnly(blocks))

	state, err := editor.Resolve(4, "07:00")
	require.NoError(t, err)
	assert.Equal(t, SlotHiddenConsultation, state)
	assert.False(t, state.IsBookable())
	assert.ErrorIs(t, editor.CheckBookable(4, "07:00"), ErrSlotUnavailable)
	assert.Equal(t, SlotHiddenConsultation, editor.Week()[3].Slots[0].State)

	state, err = viewer.Resolve(4, "07:00")
	require.NoError(t, err)
	assert.Equal(t, SlotUnset, state)

	state, err = viewer.Resolve(4, "08:15")
	require.NoError(t, err)
	assert.Equal(t, SlotBookableConsultation, state)
}

func TestAvailability_Week(t *testing.T) {
	a := NewAvailability(DefaultGrid(), []*ScheduleBlock{
		block(5, "20:45", "22:00", BlockTypeClass, true),
		block(3, "12:00", "13:15", BlockTypeConsultation, true),
	})

	week := a.Week()
	require.Len(t, week, 5)
	assert.Equal(t, "Monday", week[0].Name)
	assert.Equal(t, "Friday", week[4].Name)

	for _, day := range week {
		require.Len(t, day.Slots, 11)
	}
	wednesday := week[2]
	assert.Equal(t, SlotBookableConsultation, wednesday.Slots[4].State)
	assert.NotNil(t, wednesday.Slots[4].Block)
	assert.Equal(t, SlotUnset, wednesday.Slots[3].State)
	assert.Nil(t, wednesday.Slots[3].Block)
}

func TestAvailability_BookableOn(t *testing.T) {
	a := NewAvailability(DefaultGrid(), []*ScheduleBlock{
		block(2, "08:15", "09:30", BlockTypeConsultation, true),
		block(2, "12:00", "13:15", BlockTypeConsultation, true),
		block(2, "13:15", "14:30", BlockTypeClass, true),
	})
	tuesday := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	t.Run("future day", func(t *testing.T) {
		now := time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)
		slots := a.BookableOn(tuesday, now)
		require.Len(t, slots, 2)
		assert.Equal(t, types.TimeString("08:15"), slots[0].Start)
		assert.Equal(t, types.TimeString("12:00"), slots[1].Start)
	})

	t.Run("today skips started slots", func(t *testing.T) {
		now := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)
		slots := a.BookableOn(tuesday, now)
		require.Len(t, slots, 1)
		assert.Equal(t, types.TimeString("12:00"), slots[0].Start)
	})

	t.Run("past day", func(t *testing.T) {
		now := time.Date(2026, 10, 21, 9, 0, 0, 0, time.UTC)
		assert.Empty(t, a.BookableOn(tuesday, now))
	})

	t.Run("weekend", func(t *testing.T) {
		now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
		assert.Empty(t, a.BookableOn(time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC), now))
	})
}

func mustTime(s string) types.TimeString {
	return types.MustTimeString(s)
}
