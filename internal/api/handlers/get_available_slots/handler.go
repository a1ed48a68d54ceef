package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ConsultationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidProfessorID = "некорректный ID преподавателя"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgProfessorNotFound  = "преподаватель не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professors/{professorId}/schedule
// Query params: date (опционально, YYYY-MM-DD); без даты - все даты горизонта бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID, err := uuid.Parse(mux.Vars(r)["professorId"])
	if err != nil {
		h.logger.Warn("GET /professors/{id}/schedule - Invalid professor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessorID)
		return
	}

	req := &getAvailableSlots.Request{ProfessorID: professorID}
	// Пользователь может быть не аутентифицирован
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		req.UserID = userID
	}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /professors/{id}/schedule - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrProfessorNotFound):
			h.logger.Warn("GET /professors/{id}/schedule - Professor not found: professor_id=%s", professorID)
			handlers.RespondNotFound(w, msgProfessorNotFound)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("GET /professors/{id}/schedule - Validation failed: %v", err)
			handlers.RespondDomainError(w, err)

		default:
			h.logger.Error("GET /professors/{id}/schedule - Failed to get schedule: professor_id=%s, error=%v",
				professorID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("GET /professors/{id}/schedule - Schedule retrieved: professor_id=%s, available_dates=%d",
		professorID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
