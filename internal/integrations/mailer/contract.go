package mailer

import (
	"context"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// BookingReader читает бронирование вместе с профилями участников
type BookingReader interface {
	GetView(ctx context.Context, id uuid.UUID) (*domain.BookingView, error)
}

// Sender отправляет письма (gomail.Dialer в продакшене)
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
