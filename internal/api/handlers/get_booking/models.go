package get_booking

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings/models"
)

// BookingDetailsResponse бронирование и действия, доступные просматривающему участнику
type BookingDetailsResponse struct {
	*models.BookingResponse
	ViewerRole     string   `json:"viewerRole"` // student | professor
	AllowedActions []string `json:"allowedActions"`
}

var actionOrder = []domain.BookingAction{domain.ActionConfirm, domain.ActionDecline, domain.ActionCancel}

// NewBookingDetailsResponse дополняет бронирование переходами, которые viewer может выполнить сейчас
func NewBookingDetailsResponse(b *models.BookingResponse, viewerID uuid.UUID) *BookingDetailsResponse {
	actor := domain.ActorProfessor
	if b.StudentID == viewerID.String() {
		actor = domain.ActorStudent
	}

	resp := &BookingDetailsResponse{
		BookingResponse: b,
		ViewerRole:      string(actor),
		AllowedActions:  make([]string, 0, len(actionOrder)),
	}

	status := domain.BookingStatus(b.Status)
	for _, action := range actionOrder {
		t, ok := domain.TransitionFor(action)
		if ok && t.Actor == actor && t.Allows(status) {
			resp.AllowedActions = append(resp.AllowedActions, string(action))
		}
	}
	return resp
}
