package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// SlotState resolved state of one (weekday, start) cell
type SlotState string

const (
	SlotOccupiedClass        SlotState = "occupied:class"
	SlotOccupiedOfficeHour   SlotState = "occupied:office_hour"
	SlotBookableConsultation SlotState = "bookable:consultation"
	SlotHiddenConsultation   SlotState = "hidden:consultation"
	SlotUnset                SlotState = "unset"
)

// IsBookable only explicitly marked consultation slots accept bookings
func (s SlotState) IsBookable() bool {
	return s == SlotBookableConsultation
}

// stateOf a consultation block hidden from students is not bookable
func stateOf(b *ScheduleBlock) SlotState {
	switch b.Type {
	case BlockTypeClass:
		return SlotOccupiedClass
	case BlockTypeOfficeHour:
		return SlotOccupiedOfficeHour
	case BlockTypeConsultation:
		if !b.VisibleToStudents {
			return SlotHiddenConsultation
		}
		return SlotBookableConsultation
	}
	return SlotUnset
}

// ResolvedSlot one rendered cell of the weekly grid
type ResolvedSlot struct {
	SlotPair
	State SlotState
	Block *ScheduleBlock // nil when unset
}

// DaySlots one weekday column of the grid
type DaySlots struct {
	Weekday int
	Name    string
	Slots   []ResolvedSlot
}

// Availability resolves grid cells against a set of schedule blocks.
// The same resolver backs the creation guard and both schedule views;
// callers decide which blocks (all or visible only) it is built from.
type Availability struct {
	grid   *Grid
	blocks map[SlotKey]*ScheduleBlock
}

// NewAvailability indexes blocks by slot key
func NewAvailability(grid *Grid, blocks []*ScheduleBlock) *Availability {
	idx := make(map[SlotKey]*ScheduleBlock, len(blocks))
	for _, b := range blocks {
		idx[b.Key()] = b
	}
	return &Availability{grid: grid, blocks: idx}
}

// Grid returns the grid the resolver works on
func (a *Availability) Grid() *Grid {
	return a.grid
}

// Resolve returns the state of the cell (weekday, start)
func (a *Availability) Resolve(weekday int, start types.TimeString) (SlotState, error) {
	if err := ValidateWeekday(weekday); err != nil {
		return "", err
	}
	if err := a.grid.ValidateStart(start); err != nil {
		return "", err
	}

	b, ok := a.blocks[SlotKey{Weekday: weekday, Start: start}]
	if !ok {
		return SlotUnset, nil
	}
	return stateOf(b), nil
}

// Block returns the block occupying the cell, if any
func (a *Availability) Block(weekday int, start types.TimeString) (*ScheduleBlock, bool) {
	b, ok := a.blocks[SlotKey{Weekday: weekday, Start: start}]
	return b, ok
}

// Week renders the full weekday x slot grid
func (a *Availability) Week() []DaySlots {
	pairs := a.grid.Pairs()
	week := make([]DaySlots, 0, MaxWeekday)
	for w := MinWeekday; w <= MaxWeekday; w++ {
		day := DaySlots{Weekday: w, Name: WeekdayName(w), Slots: make([]ResolvedSlot, 0, len(pairs))}
		for _, p := range pairs {
			cell := ResolvedSlot{SlotPair: p, State: SlotUnset}
			if b, ok := a.blocks[SlotKey{Weekday: w, Start: p.Start}]; ok {
				cell.State = stateOf(b)
				cell.Block = b
			}
			day.Slots = append(day.Slots, cell)
		}
		week = append(week, day)
	}
	return week
}

// BookableOn returns the bookable slot pairs of a calendar date.
// Weekends yield no slots; on the day of now slots that already started are skipped.
func (a *Availability) BookableOn(date, now time.Time) []SlotPair {
	weekday, err := WeekdayOf(date)
	if err != nil {
		return []SlotPair{}
	}

	day := Truncate(date)
	today := Truncate(now)
	if day.Before(today) {
		return []SlotPair{}
	}

	slots := make([]SlotPair, 0)
	for _, p := range a.grid.Pairs() {
		b, ok := a.blocks[SlotKey{Weekday: weekday, Start: p.Start}]
		if !ok || !stateOf(b).IsBookable() {
			continue
		}
		if day.Equal(today) && !p.Start.On(day, now.Location()).After(now) {
			continue
		}
		slots = append(slots, p)
	}
	return slots
}

// CheckBookable returns ErrSlotUnavailable unless (weekday, start) resolves to a consultation slot
func (a *Availability) CheckBookable(weekday int, start types.TimeString) error {
	state, err := a.Resolve(weekday, start)
	if err != nil {
		return err
	}
	if !state.IsBookable() {
		return fmt.Errorf("%w: %s %s is %s", ErrSlotUnavailable, WeekdayName(weekday), start, state)
	}
	return nil
}
