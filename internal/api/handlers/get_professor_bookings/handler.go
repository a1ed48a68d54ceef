package get_professor_bookings

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
	msgNotProfessor    = "запросы на консультации доступны только преподавателям"
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

// Handle GET /api/v1/professors/me/bookings
// Query params: status (опционально); status=confirmed - расписание встреч по возрастанию даты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /professors/me/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.ListProfessorBookings(r.Context(), professorID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrProfileNotFound):
			h.logger.Warn("GET /professors/me/bookings - Profile not found: user_id=%s", professorID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, bookings.ErrWrongRole):
			h.logger.Warn("GET /professors/me/bookings - Not a professor: user_id=%s", professorID)
			handlers.RespondForbidden(w, msgNotProfessor)

		default:
			h.logger.Error("GET /professors/me/bookings - Failed to get bookings: user_id=%s, error=%v",
				professorID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("GET /professors/me/bookings - Bookings retrieved successfully: user_id=%s, count=%d",
		professorID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
