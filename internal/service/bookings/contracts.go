package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetView(ctx context.Context, id uuid.UUID) (*domain.BookingView, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingView, error)
	Transition(ctx context.Context, id uuid.UUID, t domain.Transition, actorID uuid.UUID, notes *string) (*domain.Booking, error)
}

// ProfileRepository источник ролей пользователей
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

// Metrics счетчики переходов бронирований
type Metrics interface {
	IncBookingTransition(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
