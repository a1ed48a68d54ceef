package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

func TestDefaultGrid(t *testing.T) {
	g := DefaultGrid()

	boundaries := g.Boundaries()
	require.Len(t, boundaries, 12)
	assert.Equal(t, types.TimeString("07:00"), boundaries[0])
	assert.Equal(t, types.TimeString("08:15"), boundaries[1])
	assert.Equal(t, types.TimeString("20:45"), boundaries[11])

	pairs := g.Pairs()
	require.Len(t, pairs, 11)
	for i, p := range pairs {
		assert.Equal(t, boundaries[i], p.Start)
		assert.Equal(t, boundaries[i+1], p.End)
		assert.Equal(t, DefaultGridIntervalMinutes, p.End.Minutes()-p.Start.Minutes())
	}
}

func TestNewGrid_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		first    types.TimeString
		last     types.TimeString
		interval int
	}{
		{name: "zero interval", first: "07:00", last: "20:45", interval: 0},
		{name: "end before start", first: "20:45", last: "07:00", interval: 75},
		{name: "end not reachable", first: "07:00", last: "20:00", interval: 75},
		{name: "malformed start", first: "7", last: "20:45", interval: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.first, tt.last, tt.interval)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestGrid_SuccessorAndValidateSlot(t *testing.T) {
	g := DefaultGrid()

	next, ok := g.Successor("08:15")
	require.True(t, ok)
	assert.Equal(t, types.TimeString("09:30"), next)

	_, ok = g.Successor("20:45")
	assert.False(t, ok, "last boundary has no successor")

	assert.NoError(t, g.ValidateSlot("08:15", "09:30"))

	err := g.ValidateSlot("08:15", "10:45")
	require.Error(t, err)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "endTime", vErr.Field)

	err = g.ValidateSlot("08:00", "09:15")
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "startTime", vErr.Field)

	assert.Error(t, g.ValidateSlot("20:45", "22:00"), "last boundary starts no slot")
}

func TestValidateWeekday(t *testing.T) {
	for w := MinWeekday; w <= MaxWeekday; w++ {
		assert.NoError(t, ValidateWeekday(w))
	}
	for _, w := range []int{-1, 0, 6, 7, 100} {
		err := ValidateWeekday(w)
		assert.ErrorIs(t, err, ErrValidation, "weekday %d", w)
	}
}

func TestWeekdayOf(t *testing.T) {
	tuesday := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	w, err := WeekdayOf(tuesday)
	require.NoError(t, err)
	assert.Equal(t, 2, w)

	_, err = WeekdayOf(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestWeekDates(t *testing.T) {
	wednesday := time.Date(2026, 10, 21, 15, 30, 0, 0, time.UTC)
	dates := WeekDates(wednesday)
	require.Len(t, dates, 5)
	assert.Equal(t, "2026-10-19", dates[0].Format(DateFormat))
	assert.Equal(t, "2026-10-23", dates[4].Format(DateFormat))

	sunday := time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-19", WeekDates(sunday)[0].Format(DateFormat))
}

func TestHorizonEnd(t *testing.T) {
	monday := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-11-05", HorizonEnd(monday, 14).Format(DateFormat))

	sunday := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-11-05", HorizonEnd(sunday, 14).Format(DateFormat))
	assert.Equal(t, "2026-10-19", HorizonEnd(sunday, 1).Format(DateFormat))
}
