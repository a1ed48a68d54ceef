package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// BookingAction an action that moves a booking between statuses
type BookingAction string

const (
	ActionConfirm BookingAction = "confirm"
	ActionDecline BookingAction = "decline"
	ActionCancel  BookingAction = "cancel"
)

// Actor which participant of the booking may trigger an action
type Actor string

const (
	ActorStudent   Actor = "student"
	ActorProfessor Actor = "professor"
)

// Transition one edge of the booking state machine
type Transition struct {
	Action BookingAction
	From   []BookingStatus
	To     BookingStatus
	Actor  Actor
}

// Allows reports whether the transition may start from status
func (t Transition) Allows(status BookingStatus) bool {
	for _, from := range t.From {
		if from == status {
			return true
		}
	}
	return false
}

var transitions = map[BookingAction]Transition{
	ActionConfirm: {
		Action: ActionConfirm,
		From:   []BookingStatus{StatusPending},
		To:     StatusConfirmed,
		Actor:  ActorProfessor,
	},
	ActionDecline: {
		Action: ActionDecline,
		From:   []BookingStatus{StatusPending},
		To:     StatusDeclined,
		Actor:  ActorProfessor,
	},
	ActionCancel: {
		Action: ActionCancel,
		From:   []BookingStatus{StatusPending, StatusConfirmed},
		To:     StatusCancelled,
		Actor:  ActorStudent,
	},
}

// TransitionFor returns the transition of an action
func TransitionFor(action BookingAction) (Transition, bool) {
	t, ok := transitions[action]
	return t, ok
}

// Apply checks that the action is allowed for actorID on booking b and returns the
// transition to perform. The booking itself is not modified; the caller writes the
// new status with a conditional update.
func (b *Booking) Apply(action BookingAction, actorID uuid.UUID) (Transition, error) {
	t, ok := TransitionFor(action)
	if !ok {
		return Transition{}, fmt.Errorf("%w: unknown action %q", ErrValidation, action)
	}

	owner := b.ProfessorID
	if t.Actor == ActorStudent {
		owner = b.StudentID
	}
	if owner != actorID {
		return Transition{}, fmt.Errorf("%w: only the booking's %s may %s it", ErrForbidden, t.Actor, action)
	}

	if !t.Allows(b.Status) {
		return Transition{}, fmt.Errorf("%w: cannot %s a %s booking", ErrInvalidTransition, action, b.Status)
	}

	return t, nil
}
