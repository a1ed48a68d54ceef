package profiles

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	CreateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	CreateProfessor(ctx context.Context, p *domain.Professor) (*domain.Professor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd *domain.ProfileUpdate) (*domain.Profile, error)
	UpdateProfessor(ctx context.Context, id uuid.UUID, upd *domain.ProfileUpdate) (*domain.Professor, error)
	GetProfessor(ctx context.Context, id uuid.UUID) (*domain.ProfessorDetail, error)
	ListProfessors(ctx context.Context, search string) ([]*domain.ProfessorDetail, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
