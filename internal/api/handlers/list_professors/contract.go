package list_professors

import (
	"context"

	"github.com/m04kA/SMC-ConsultationService/internal/service/profiles/models"
)

type ProfileService interface {
	ListProfessors(ctx context.Context, search string) (*models.ProfessorListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
