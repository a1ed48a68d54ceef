package delete_schedule_block

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedules"
)

const (
	msgInvalidBlockID = "некорректный ID блока"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgNotFound       = "блок расписания не найден"
	msgForbidden      = "блок принадлежит другому преподавателю"
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

// Handle DELETE /api/v1/schedule/{blockId}
// Возвращает удаленный блок
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockID, err := uuid.Parse(mux.Vars(r)["blockId"])
	if err != nil {
		h.logger.Warn("DELETE /schedule/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	professorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /schedule/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	block, err := h.service.DeleteBlock(r.Context(), professorID, blockID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrBlockNotFound):
			h.logger.Warn("DELETE /schedule/{id} - Block not found: block_id=%s", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedules.ErrNotOwner):
			h.logger.Warn("DELETE /schedule/{id} - Not owner: block_id=%s, user_id=%s", blockID, professorID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /schedule/{id} - Failed to delete block: block_id=%s, error=%v", blockID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("DELETE /schedule/{id} - Block deleted: block_id=%s", blockID)
	handlers.RespondJSON(w, http.StatusOK, block)
}
