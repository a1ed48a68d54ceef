package models

import (
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// Request модели

// ReviewBookingRequest подтверждение или отклонение запроса преподавателем
type ReviewBookingRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// Response модели

// ParticipantResponse краткие данные участника бронирования
type ParticipantResponse struct {
	ID            string  `json:"id"`
	FullName      string  `json:"fullName"`
	Email         string  `json:"email"`
	Department    *string `json:"department,omitempty"`
	Program       *string `json:"program,omitempty"`
	StudentNumber *string `json:"studentNumber,omitempty"`
	TeamsEmail    *string `json:"teamsEmail,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             string  `json:"id"`
	StudentID      string  `json:"studentId"`
	ProfessorID    string  `json:"professorId"`
	Date           string  `json:"date"`      // "2026-10-20"
	StartTime      string  `json:"startTime"` // "09:30"
	EndTime        string  `json:"endTime"`
	Mode           string  `json:"mode"`
	Topic          string  `json:"topic"`
	Status         string  `json:"status"`
	ProfessorNotes *string `json:"professorNotes,omitempty"`

	// Заполняются для представлений с профилями участников
	Student   *ParticipantResponse `json:"student,omitempty"`
	Professor *ParticipantResponse `json:"professor,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID.String(),
		StudentID:      b.StudentID.String(),
		ProfessorID:    b.ProfessorID.String(),
		Date:           b.Date.Format(domain.DateFormat),
		StartTime:      b.StartTime.String(),
		EndTime:        b.EndTime.String(),
		Mode:           string(b.Mode),
		Topic:          b.Topic,
		Status:         string(b.Status),
		ProfessorNotes: b.ProfessorNotes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainView конвертирует бронирование с профилями участников
func FromDomainView(v *domain.BookingView) *BookingResponse {
	if v == nil {
		return nil
	}

	resp := FromDomainBooking(&v.Booking)
	resp.Student = fromProfile(&v.Student)
	resp.Professor = fromProfile(&v.Professor)
	return resp
}

// FromDomainViewList конвертирует список представлений в DTO
func FromDomainViewList(views []*domain.BookingView) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(views)),
	}
	for _, v := range views {
		if r := FromDomainView(v); r != nil {
			resp.Bookings = append(resp.Bookings, *r)
		}
	}
	return resp
}

func fromProfile(p *domain.Profile) *ParticipantResponse {
	return &ParticipantResponse{
		ID:            p.ID.String(),
		FullName:      p.FullName,
		Email:         p.Email,
		Department:    p.Department,
		Program:       p.Program,
		StudentNumber: p.StudentNumber,
		TeamsEmail:    p.TeamsEmail,
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", domain.NewValidationError("status", "unknown booking status %q", status)
	}
	return s, nil
}
