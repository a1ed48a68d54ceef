package update_schedule_block

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedules"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedules/models"
)

const (
	msgInvalidBlockID     = "некорректный ID блока"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса, меняются только note и visibleToStudents"
	msgNotFound           = "блок расписания не найден"
	msgForbidden          = "блок принадлежит другому преподавателю"
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

// Handle PATCH /api/v1/schedule/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockID, err := uuid.Parse(mux.Vars(r)["blockId"])
	if err != nil {
		h.logger.Warn("PATCH /schedule/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	professorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /schedule/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// неизвестные поля (weekday, startTime, type) отклоняются декодером
	var req models.UpdateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /schedule/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	block, err := h.service.UpdateBlock(r.Context(), professorID, blockID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrBlockNotFound):
			h.logger.Warn("PATCH /schedule/{id} - Block not found: block_id=%s", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedules.ErrNotOwner):
			h.logger.Warn("PATCH /schedule/{id} - Not owner: block_id=%s, user_id=%s", blockID, professorID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /schedule/{id} - Failed to update block: block_id=%s, error=%v", blockID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("PATCH /schedule/{id} - Block updated: block_id=%s", blockID)
	handlers.RespondJSON(w, http.StatusOK, block)
}
