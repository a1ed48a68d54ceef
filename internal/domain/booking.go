package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusDeclined  BookingStatus = "declined"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether the status is known
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true when no action can leave the status
func (s BookingStatus) IsTerminal() bool {
	return s == StatusDeclined || s == StatusCancelled
}

// BookingMode how the consultation takes place
type BookingMode string

const (
	ModeOnline BookingMode = "online"
	ModeOnsite BookingMode = "onsite"
)

// IsValid reports whether the mode is known
func (m BookingMode) IsValid() bool {
	return m == ModeOnline || m == ModeOnsite
}

// Booking represents a dated consultation request.
// StudentID is set once at creation; bookings are never deleted, only moved to a terminal status.
type Booking struct {
	ID             uuid.UUID
	StudentID      uuid.UUID
	ProfessorID    uuid.UUID
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Mode           BookingMode
	Topic          string
	Status         BookingStatus
	ProfessorNotes *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive returns true while the booking still holds the slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the student may cancel the booking
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsParticipant returns true for the booking's student or professor
func (b *Booking) IsParticipant(userID uuid.UUID) bool {
	return b.StudentID == userID || b.ProfessorID == userID
}

// BookingView is a booking joined with both participant profiles
type BookingView struct {
	Booking
	Student   Profile
	Professor Profile
}

// BookingOrder ordering of booking lists
type BookingOrder int

const (
	// OrderByDateDesc newest date/start first (student history)
	OrderByDateDesc BookingOrder = iota
	// OrderByDateAsc upcoming agenda (professor confirmed bookings)
	OrderByDateAsc
	// OrderByCreatedDesc latest requests first (professor inbox)
	OrderByCreatedDesc
)

// BookingsFilter filter for booking lists; at least one of StudentID/ProfessorID is set
type BookingsFilter struct {
	StudentID   *uuid.UUID
	ProfessorID *uuid.UUID
	Status      *BookingStatus
	OrderBy     BookingOrder
}

// CheckBookingWindow validates the calendar side of a booking request in the
// institutional timezone of now: a weekday, not in the past, within the first
// horizonWeekdays weekdays counted from today, and on today only a slot that has not started.
func CheckBookingWindow(date time.Time, start types.TimeString, now time.Time, horizonWeekdays int) (int, error) {
	weekday, err := WeekdayOf(date)
	if err != nil {
		return 0, err
	}

	day := Truncate(date)
	today := Truncate(now)
	if day.Before(today) {
		return 0, NewValidationError("date", "%s is in the past", day.Format(DateFormat))
	}
	if last := HorizonEnd(today, horizonWeekdays); day.After(last) {
		return 0, NewValidationError("date", "bookings are accepted up to %s", last.Format(DateFormat))
	}
	if day.Equal(today) && !start.On(day, now.Location()).After(now) {
		return 0, NewValidationError("startTime", "slot %s has already started", start)
	}

	return weekday, nil
}
