package schedules

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// ScheduleRepository интерфейс репозитория блоков расписания
type ScheduleRepository interface {
	Create(ctx context.Context, b *domain.ScheduleBlock) (*domain.ScheduleBlock, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleBlock, error)
	ListByProfessor(ctx context.Context, professorID uuid.UUID, visibleOnly bool) ([]*domain.ScheduleBlock, error)
	Delete(ctx context.Context, id, professorID uuid.UUID) (*domain.ScheduleBlock, error)
	Update(ctx context.Context, id, professorID uuid.UUID, upd domain.BlockUpdate) (*domain.ScheduleBlock, error)
}

// ProfileRepository источник ролей пользователей
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

// ScheduleCache кэш видимого студентам расписания.
// GetVisible возвращает поколение записи и при промахе; SetVisible пишет под этим поколением,
// поэтому инвалидация между чтением из БД и записью не оставляет в кэше устаревших данных.
type ScheduleCache interface {
	GetVisible(ctx context.Context, professorID uuid.UUID) ([]*domain.ScheduleBlock, uint64, bool, error)
	SetVisible(ctx context.Context, professorID uuid.UUID, gen uint64, blocks []*domain.ScheduleBlock) error
	Invalidate(ctx context.Context, professorID uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
