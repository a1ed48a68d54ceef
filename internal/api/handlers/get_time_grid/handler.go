package get_time_grid

import (
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
)

type Handler struct {
	grid   *GridResponse
	logger Logger
}

// NewHandler сетка неизменна после старта, поэтому ответ собирается один раз
func NewHandler(provider GridProvider, logger Logger) *Handler {
	return &Handler{
		grid:   FromDomainGrid(provider.Grid()),
		logger: logger,
	}
}

// Handle GET /api/v1/time-grid
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /time-grid - Grid retrieved: slots=%d", len(h.grid.Slots))
	handlers.RespondJSON(w, http.StatusOK, h.grid)
}
