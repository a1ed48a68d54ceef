package create_booking

import (
	"context"

	createBooking "github.com/m04kA/SMC-ConsultationService/internal/usecase/create_booking"
)

// CreateBookingUseCase проверяет слот по расписанию и создает запрос в статусе pending
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
