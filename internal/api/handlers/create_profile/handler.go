package create_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/service/profiles"
	"github.com/m04kA/SMC-ConsultationService/internal/service/profiles/models"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgProfileExists      = "профиль уже создан"
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

// Handle POST /api/v1/profiles
// Завершение регистрации: ID профиля совпадает с ID пользователя провайдера идентификации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /profiles - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /profiles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrProfileExists):
			h.logger.Warn("POST /profiles - Profile already exists: user_id=%s", userID)
			handlers.RespondConflict(w, msgProfileExists)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /profiles - Validation failed: user_id=%s, error=%v", userID, err)
			handlers.RespondDomainError(w, err)

		default:
			h.logger.Error("POST /profiles - Failed to create profile: user_id=%s, error=%v", userID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("POST /profiles - Profile created successfully: user_id=%s, role=%s", userID, result.Role)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
