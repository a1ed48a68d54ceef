package get_professor

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/service/profiles"
)

const (
	msgInvalidProfessorID = "некорректный ID преподавателя"
	msgNotFound           = "преподаватель не найден"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professors/{professorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID, err := uuid.Parse(mux.Vars(r)["professorId"])
	if err != nil {
		h.logger.Warn("GET /professors/{id} - Invalid professor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessorID)
		return
	}

	result, err := h.service.GetProfessor(r.Context(), professorID)
	if err != nil {
		if errors.Is(err, profiles.ErrProfessorNotFound) {
			h.logger.Warn("GET /professors/{id} - Professor not found: professor_id=%s", professorID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /professors/{id} - Failed to get professor: professor_id=%s, error=%v", professorID, err)
		handlers.RespondDomainError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
