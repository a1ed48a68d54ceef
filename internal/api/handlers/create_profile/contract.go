package create_profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/service/profiles/models"
)

type ProfileService interface {
	Create(ctx context.Context, userID uuid.UUID, req *models.CreateProfileRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
