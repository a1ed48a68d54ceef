package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(status BookingStatus) (*Booking, uuid.UUID, uuid.UUID) {
	student, professor := uuid.New(), uuid.New()
	return &Booking{
		ID:          uuid.New(),
		StudentID:   student,
		ProfessorID: professor,
		Status:      status,
	}, student, professor
}

func TestBooking_ApplyTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		action  BookingAction
		want    BookingStatus
		wantErr error
	}{
		{name: "confirm pending", from: StatusPending, action: ActionConfirm, want: StatusConfirmed},
		{name: "decline pending", from: StatusPending, action: ActionDecline, want: StatusDeclined},
		{name: "cancel pending", from: StatusPending, action: ActionCancel, want: StatusCancelled},
		{name: "cancel confirmed", from: StatusConfirmed, action: ActionCancel, want: StatusCancelled},
		{name: "confirm confirmed", from: StatusConfirmed, action: ActionConfirm, wantErr: ErrInvalidTransition},
		{name: "decline confirmed", from: StatusConfirmed, action: ActionDecline, wantErr: ErrInvalidTransition},
		{name: "confirm declined", from: StatusDeclined, action: ActionConfirm, wantErr: ErrInvalidTransition},
		{name: "cancel declined", from: StatusDeclined, action: ActionCancel, wantErr: ErrInvalidTransition},
		{name: "cancel cancelled", from: StatusCancelled, action: ActionCancel, wantErr: ErrInvalidTransition},
		{name: "decline cancelled", from: StatusCancelled, action: ActionDecline, wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, student, professor := newBooking(tt.from)
			actor := professor
			if tt.action == ActionCancel {
				actor = student
			}

			tr, err := b.Apply(tt.action, actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.To)
			assert.Equal(t, tt.from, b.Status, "Apply must not mutate the booking")
		})
	}
}

func TestBooking_ApplyWrongActor(t *testing.T) {
	b, student, professor := newBooking(StatusPending)

	_, err := b.Apply(ActionConfirm, student)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = b.Apply(ActionCancel, professor)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = b.Apply(ActionCancel, uuid.New())
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = b.Apply(BookingAction("archive"), student)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusDeclined.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, BookingStatus("archived").IsValid())
}

func TestCheckBookingWindow(t *testing.T) {
	now := time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC) // Tuesday

	tests := []struct {
		name        string
		date        time.Time
		start       string
		wantWeekday int
		wantField   string
	}{
		{name: "later today", date: now, start: "12:00", wantWeekday: 2},
		{name: "next monday", date: time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC), start: "07:00", wantWeekday: 1},
		{name: "last day of horizon", date: time.Date(2026, 11, 6, 0, 0, 0, 0, time.UTC), start: "07:00", wantWeekday: 5},
		{name: "beyond horizon", date: time.Date(2026, 11, 9, 0, 0, 0, 0, time.UTC), start: "07:00", wantField: "date"},
		{name: "yesterday", date: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), start: "12:00", wantField: "date"},
		{name: "weekend", date: time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC), start: "12:00", wantField: "date"},
		{name: "already started", date: now, start: "09:30", wantField: "startTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := CheckBookingWindow(tt.date, mustTime(tt.start), now, DefaultBookingHorizonWeekdays)
			if tt.wantField != "" {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantField, vErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWeekday, w)
		})
	}
}
