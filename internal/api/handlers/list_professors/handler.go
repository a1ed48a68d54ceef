package list_professors

import (
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
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

// Handle GET /api/v1/professors
// Query params: search (опционально) - по имени или кафедре
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	result, err := h.service.ListProfessors(r.Context(), search)
	if err != nil {
		if _, ok := handlers.AsValidationError(err); ok {
			h.logger.Warn("GET /professors - Invalid search: %v", err)
		} else {
			h.logger.Error("GET /professors - Failed to list professors: error=%v", err)
		}
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /professors - Professors retrieved: search=%q, count=%d", search, len(result.Professors))
	handlers.RespondJSON(w, http.StatusOK, result)
}
