package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// Weekday bounds of the teaching week
const (
	MinWeekday = 1 // Monday
	MaxWeekday = 5 // Friday
)

var weekdayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// WeekdayName returns the English name of a teaching weekday, "" when out of range
func WeekdayName(w int) string {
	if w < MinWeekday || w > MaxWeekday {
		return ""
	}
	return weekdayNames[w]
}

// SlotPair a (start, end) pair of consecutive grid boundaries
type SlotPair struct {
	Start types.TimeString
	End   types.TimeString
}

// Grid is the fixed ordered sequence of time-of-day boundaries.
// Built once at startup and shared read-only.
type Grid struct {
	boundaries []types.TimeString
	index      map[types.TimeString]int
	interval   int
}

// NewGrid builds a grid from first to last boundary (both inclusive) with a fixed step
func NewGrid(first, last types.TimeString, intervalMinutes int) (*Grid, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: grid interval must be positive, got %d", ErrValidation, intervalMinutes)
	}
	if err := first.Validate(); err != nil {
		return nil, fmt.Errorf("%w: grid start: %v", ErrValidation, err)
	}
	if err := last.Validate(); err != nil {
		return nil, fmt.Errorf("%w: grid end: %v", ErrValidation, err)
	}
	if !first.IsBefore(last) {
		return nil, fmt.Errorf("%w: grid start %s must be before grid end %s", ErrValidation, first, last)
	}
	if (last.Minutes()-first.Minutes())%intervalMinutes != 0 {
		return nil, fmt.Errorf("%w: grid end %s is not reachable from %s in steps of %d minutes",
			ErrValidation, last, first, intervalMinutes)
	}

	g := &Grid{
		index:    make(map[types.TimeString]int),
		interval: intervalMinutes,
	}
	for m := first.Minutes(); m <= last.Minutes(); m += intervalMinutes {
		b, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		g.index[b] = len(g.boundaries)
		g.boundaries = append(g.boundaries, b)
	}

	return g, nil
}

// DefaultGrid returns the institutional grid 07:00 - 20:45, 75-minute pairs
func DefaultGrid() *Grid {
	g, err := NewGrid(
		types.MustTimeString(DefaultGridStart),
		types.MustTimeString(DefaultGridEnd),
		DefaultGridIntervalMinutes,
	)
	if err != nil {
		panic(err)
	}
	return g
}

// Boundaries returns a copy of the ordered boundaries
func (g *Grid) Boundaries() []types.TimeString {
	out := make([]types.TimeString, len(g.boundaries))
	copy(out, g.boundaries)
	return out
}

// Pairs returns the slot pairs built from consecutive boundaries
func (g *Grid) Pairs() []SlotPair {
	pairs := make([]SlotPair, 0, len(g.boundaries)-1)
	for i := 0; i+1 < len(g.boundaries); i++ {
		pairs = append(pairs, SlotPair{Start: g.boundaries[i], End: g.boundaries[i+1]})
	}
	return pairs
}

// IntervalMinutes length of one slot
func (g *Grid) IntervalMinutes() int {
	return g.interval
}

// IsBoundary reports whether t is one of the grid boundaries
func (g *Grid) IsBoundary(t types.TimeString) bool {
	_, ok := g.index[t]
	return ok
}

// IsSlotStart reports whether a slot begins at t (every boundary except the last)
func (g *Grid) IsSlotStart(t types.TimeString) bool {
	i, ok := g.index[t]
	return ok && i+1 < len(g.boundaries)
}

// Successor returns the boundary following start
func (g *Grid) Successor(start types.TimeString) (types.TimeString, bool) {
	i, ok := g.index[start]
	if !ok || i+1 >= len(g.boundaries) {
		return "", false
	}
	return g.boundaries[i+1], true
}

// SlotAt returns the slot pair starting at start
func (g *Grid) SlotAt(start types.TimeString) (SlotPair, bool) {
	end, ok := g.Successor(start)
	if !ok {
		return SlotPair{}, false
	}
	return SlotPair{Start: start, End: end}, true
}

// ValidateStart checks that a slot begins at start
func (g *Grid) ValidateStart(start types.TimeString) error {
	if err := start.Validate(); err != nil {
		return NewValidationError("startTime", "must be in HH:MM format")
	}
	if !g.IsSlotStart(start) {
		return NewValidationError("startTime", "%s is not a slot start of the time grid", start)
	}
	return nil
}

// ValidateSlot checks that start/end form one grid slot pair
func (g *Grid) ValidateSlot(start, end types.TimeString) error {
	if err := g.ValidateStart(start); err != nil {
		return err
	}
	if err := end.Validate(); err != nil {
		return NewValidationError("endTime", "must be in HH:MM format")
	}
	if next, _ := g.Successor(start); next != end {
		return NewValidationError("endTime", "must be %s, the grid boundary after %s", next, start)
	}
	return nil
}

// ValidateWeekday rejects weekdays outside Monday..Friday
func ValidateWeekday(w int) error {
	if w < MinWeekday || w > MaxWeekday {
		return NewValidationError("weekday", "must be between %d and %d, got %d", MinWeekday, MaxWeekday, w)
	}
	return nil
}

// WeekdayOf maps a calendar date to 1..5; weekends are rejected
func WeekdayOf(date time.Time) (int, error) {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return 0, NewValidationError("date", "%s is a %s, consultations happen on weekdays only",
			date.Format(DateFormat), date.Weekday())
	}
	return int(date.Weekday()), nil
}

// WeekDates returns Monday..Friday of the week containing ref (weekends belong to the week before)
func WeekDates(ref time.Time) []time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	offset := int(day.Weekday()) - 1
	if offset < 0 {
		offset = 6
	}
	monday := day.AddDate(0, 0, -offset)

	dates := make([]time.Time, 0, MaxWeekday)
	for i := 0; i < MaxWeekday; i++ {
		dates = append(dates, monday.AddDate(0, 0, i))
	}
	return dates
}

// Truncate drops the time of day keeping the location
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// HorizonEnd returns the last of the first n weekdays counted from today (today included)
func HorizonEnd(today time.Time, n int) time.Time {
	d := Truncate(today)
	last := d
	for n > 0 {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			last = d
			n--
		}
		d = d.AddDate(0, 0, 1)
	}
	return last
}
