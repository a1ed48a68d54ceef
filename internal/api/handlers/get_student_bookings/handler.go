package get_student_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgProfileNotFound = "профиль не найден, завершите регистрацию"
	msgNotStudent      = "история бронирований доступна только студентам"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/students/me/bookings
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /students/me/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем status из query параметров (опционально)
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.ListStudentBookings(r.Context(), studentID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrProfileNotFound):
			h.logger.Warn("GET /students/me/bookings - Profile not found: user_id=%s", studentID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, bookings.ErrWrongRole):
			h.logger.Warn("GET /students/me/bookings - Not a student: user_id=%s", studentID)
			handlers.RespondForbidden(w, msgNotStudent)

		default:
			h.logger.Error("GET /students/me/bookings - Failed to get bookings: user_id=%s, error=%v",
				studentID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("GET /students/me/bookings - Bookings retrieved successfully: user_id=%s, count=%d",
		studentID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
