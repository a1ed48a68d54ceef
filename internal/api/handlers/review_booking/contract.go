package review_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings/models"
)

type BookingService interface {
	Confirm(ctx context.Context, bookingID, professorID uuid.UUID, req *models.ReviewBookingRequest) (*models.BookingResponse, error)
	Decline(ctx context.Context, bookingID, professorID uuid.UUID, req *models.ReviewBookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
