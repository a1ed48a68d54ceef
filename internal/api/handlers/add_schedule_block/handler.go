package add_schedule_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedules"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedules/models"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotOccupied       = "слот уже занят, сначала удалите существующий блок"
	msgNotProfessor       = "расписание ведут только преподаватели"
	msgProfileNotFound    = "профиль не найден, завершите регистрацию"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule
// Блок всегда создается для аутентифицированного преподавателя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.AddBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	block, err := h.service.AddBlock(r.Context(), professorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrSlotOccupied):
			h.logger.Warn("POST /schedule - Slot occupied: professor_id=%s, weekday=%d, start=%s",
				professorID, req.Weekday, req.StartTime)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, schedules.ErrNotProfessor):
			h.logger.Warn("POST /schedule - Not a professor: user_id=%s", professorID)
			handlers.RespondForbidden(w, msgNotProfessor)

		case errors.Is(err, schedules.ErrProfileNotFound):
			h.logger.Warn("POST /schedule - Profile not found: user_id=%s", professorID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /schedule - Validation failed: %v", err)
			handlers.RespondDomainError(w, err)

		default:
			h.logger.Error("POST /schedule - Failed to add block: professor_id=%s, error=%v", professorID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("POST /schedule - Block added: block_id=%s, professor_id=%s", block.ID, professorID)
	handlers.RespondJSON(w, http.StatusCreated, block)
}
