package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	profileRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeProfiles struct {
	professors map[uuid.UUID]*domain.ProfessorDetail
}

func (f *fakeProfiles) GetProfessor(_ context.Context, id uuid.UUID) (*domain.ProfessorDetail, error) {
	p, ok := f.professors[id]
	if !ok {
		return nil, profileRepo.ErrProfessorNotFound
	}
	return p, nil
}

// fakeSchedules отдает только видимые блоки, как сервис расписания
type fakeSchedules struct {
	blocks []*domain.ScheduleBlock
	err    error
}

func (f *fakeSchedules) ListVisibleBlocks(_ context.Context, professorID uuid.UUID) ([]*domain.ScheduleBlock, error) {
	if f.err != nil {
		return nil, f.err
	}
	return domain.VisibleOnly(f.blocks), nil
}

func newTestUseCase(t *testing.T) (*UseCase, *fakeSchedules, uuid.UUID) {
	t.Helper()

	grid, err := domain.NewGrid("07:45", "20:15", 75)
	require.NoError(t, err)

	professorID := uuid.New()
	blk := func(weekday int, start, end string, typ domain.BlockType, visible bool) *domain.ScheduleBlock {
		return &domain.ScheduleBlock{
			ID:                uuid.New(),
			ProfessorID:       professorID,
			Weekday:           weekday,
			StartTime:         types.MustTimeString(start),
			EndTime:           types.MustTimeString(end),
			Type:              typ,
			VisibleToStudents: visible,
		}
	}

	schedules := &fakeSchedules{blocks: []*domain.ScheduleBlock{
		blk(1, "09:00", "10:15", domain.BlockTypeConsultation, true),
		blk(1, "11:30", "12:45", domain.BlockTypeConsultation, true),
		blk(2, "09:00", "10:15", domain.BlockTypeConsultation, true),
		blk(3, "09:00", "10:15", domain.BlockTypeConsultation, false),
		blk(4, "09:00", "10:15", domain.BlockTypeClass, true),
	}}
	profiles := &fakeProfiles{professors: map[uuid.UUID]*domain.ProfessorDetail{
		professorID: {
			Professor: domain.Professor{ID: professorID},
			Profile:   domain.Profile{ID: professorID, Role: domain.RoleProfessor, FullName: "Dr. Pereira"},
		},
	}}

	uc := NewUseCase(profiles, schedules, grid, Config{HorizonWeekdays: 14, Location: time.UTC}, nopLogger{})
	// понедельник 2026-10-19 10:00
	uc.timeProvider = fixedTime{now: time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)}

	return uc, schedules, professorID
}

func dateOf(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestExecute_HorizonDays(t *testing.T) {
	uc, _, professorID := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{ProfessorID: professorID})
	require.NoError(t, err)

	var got []string
	for _, d := range resp.Days {
		got = append(got, d.Date.Format(domain.DateFormat))
	}
	assert.Equal(t, []string{
		"2026-10-19", "2026-10-20",
		"2026-10-26", "2026-10-27",
		"2026-11-02", "2026-11-03",
	}, got)

	// 09:00 сегодня уже началась, остается только 11:30
	require.Len(t, resp.Days[0].Slots, 1)
	assert.Equal(t, types.TimeString("11:30"), resp.Days[0].Slots[0].Start)
	assert.Equal(t, types.TimeString("12:45"), resp.Days[0].Slots[0].End)
	assert.Equal(t, 1, resp.Days[0].Weekday)
}

func TestExecute_HiddenBlocksStayHidden(t *testing.T) {
	uc, _, professorID := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{ProfessorID: professorID})
	require.NoError(t, err)

	assert.Len(t, resp.Blocks, 4)
	require.Len(t, resp.Week, 5)

	wednesday := resp.Week[2]
	assert.Equal(t, 3, wednesday.Weekday)
	for _, slot := range wednesday.Slots {
		assert.Equal(t, domain.SlotUnset, slot.State, "hidden consultation must not leak at %s", slot.Start)
	}

	thursday := resp.Week[3]
	assert.Equal(t, domain.SlotOccupiedClass, thursday.Slots[1].State)
}

func TestExecute_SingleDate(t *testing.T) {
	tests := []struct {
		name  string
		date  *time.Time
		slots int
	}{
		{name: "tuesday consultation", date: dateOf(2026, 10, 20), slots: 1},
		{name: "hidden wednesday", date: dateOf(2026, 10, 21), slots: 0},
		{name: "thursday class", date: dateOf(2026, 10, 22), slots: 0},
		{name: "last horizon day", date: dateOf(2026, 11, 5), slots: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, professorID := newTestUseCase(t)

			resp, err := uc.Execute(context.Background(), &Request{ProfessorID: professorID, Date: tt.date})
			require.NoError(t, err)

			if tt.slots == 0 {
				assert.Empty(t, resp.Days)
				return
			}
			require.Len(t, resp.Days, 1)
			assert.Len(t, resp.Days[0].Slots, tt.slots)
		})
	}
}

func TestExecute_InvalidDates(t *testing.T) {
	tests := []struct {
		name string
		date *time.Time
	}{
		{name: "past", date: dateOf(2026, 10, 16)},
		{name: "saturday", date: dateOf(2026, 10, 24)},
		{name: "beyond horizon", date: dateOf(2026, 11, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, professorID := newTestUseCase(t)

			_, err := uc.Execute(context.Background(), &Request{ProfessorID: professorID, Date: tt.date})
			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "date", vErr.Field)
		})
	}
}

func TestExecute_ProfessorNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{ProfessorID: uuid.New()})
	assert.ErrorIs(t, err, ErrProfessorNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecute_ScheduleUnavailable(t *testing.T) {
	uc, schedules, professorID := newTestUseCase(t)
	schedules.err = fmt.Errorf("schedules: %w", domain.ErrUpstreamUnavailable)

	_, err := uc.Execute(context.Background(), &Request{ProfessorID: professorID})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestExecute_MissingProfessorID(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
