package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	createBooking "github.com/m04kA/SMC-ConsultationService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// CreateBookingRequest HTTP request model. ID студента берется из токена.
type CreateBookingRequest struct {
	ProfessorID string `json:"professorId"`
	Date        string `json:"date"`      // "2026-10-20"
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`   // "10:15"
	Mode        string `json:"mode"`      // online | onsite
	Topic       string `json:"topic"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string `json:"id"`
	StudentID   string `json:"studentId"`
	ProfessorID string `json:"professorId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Mode        string `json:"mode"`
	Topic       string `json:"topic"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(studentID uuid.UUID) (*createBooking.Request, error) {
	professorID, err := uuid.Parse(r.ProfessorID)
	if err != nil {
		return nil, domain.NewValidationError("professorId", "must be a UUID")
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, domain.NewValidationError("date", "expected YYYY-MM-DD")
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, domain.NewValidationError("startTime", "expected HH:MM")
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, domain.NewValidationError("endTime", "expected HH:MM")
	}

	return &createBooking.Request{
		StudentID:   studentID,
		ProfessorID: professorID,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Mode:        r.Mode,
		Topic:       r.Topic,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID.String(),
		StudentID:   resp.StudentID.String(),
		ProfessorID: resp.ProfessorID.String(),
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Mode:        resp.Mode,
		Topic:       resp.Topic,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
