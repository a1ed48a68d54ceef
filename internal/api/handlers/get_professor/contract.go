package get_professor

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/service/profiles/models"
)

type ProfileService interface {
	GetProfessor(ctx context.Context, professorID uuid.UUID) (*models.ProfessorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
