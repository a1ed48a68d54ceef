package create_booking

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// validateRequest валидирует входные данные запроса до обращения к хранилищу
func validateRequest(grid *domain.Grid, req *Request) error {
	if req.StudentID == uuid.Nil {
		return domain.NewValidationError("studentId", "is required")
	}
	if req.ProfessorID == uuid.Nil {
		return domain.NewValidationError("professorId", "is required")
	}
	if req.StudentID == req.ProfessorID {
		return domain.NewValidationError("professorId", "cannot book a consultation with yourself")
	}

	if req.Date.IsZero() {
		return domain.NewValidationError("date", "is required")
	}
	if req.StartTime.IsZero() {
		return domain.NewValidationError("startTime", "is required")
	}
	if req.EndTime.IsZero() {
		return domain.NewValidationError("endTime", "is required")
	}
	if err := grid.ValidateSlot(req.StartTime, req.EndTime); err != nil {
		return err
	}

	if !domain.BookingMode(req.Mode).IsValid() {
		return domain.NewValidationError("mode", "must be %q or %q", domain.ModeOnline, domain.ModeOnsite)
	}

	n := utf8.RuneCountInString(strings.TrimSpace(req.Topic))
	if n < domain.MinTopicLength {
		return domain.NewValidationError("topic", "must be at least %d characters", domain.MinTopicLength)
	}
	if n > domain.MaxTopicLength {
		return domain.NewValidationError("topic", "must be at most %d characters", domain.MaxTopicLength)
	}

	return nil
}
