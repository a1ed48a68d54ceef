package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings/models"
)

// BookingService чтение бронирования с проверкой участника
type BookingService interface {
	GetByID(ctx context.Context, bookingID, userID uuid.UUID) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
