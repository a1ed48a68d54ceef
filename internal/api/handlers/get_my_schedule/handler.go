package get_my_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedules"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgNotProfessor    = "редактор расписания доступен только преподавателям"
	msgProfileNotFound = "профиль не найден, завершите регистрацию"
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

// Handle GET /api/v1/schedule
// Редактор преподавателя: все блоки, включая скрытые от студентов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetEditorSchedule(r.Context(), professorID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrNotProfessor):
			h.logger.Warn("GET /schedule - Not a professor: user_id=%s", professorID)
			handlers.RespondForbidden(w, msgNotProfessor)

		case errors.Is(err, schedules.ErrProfileNotFound):
			h.logger.Warn("GET /schedule - Profile not found: user_id=%s", professorID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		default:
			h.logger.Error("GET /schedule - Failed to get schedule: professor_id=%s, error=%v", professorID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("GET /schedule - Schedule retrieved: professor_id=%s, blocks=%d", professorID, len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
