package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessorID == uuid.Nil {
		return domain.NewValidationError("professorId", "is required")
	}
	return nil
}

// validateDate проверяет, что дата - рабочий день не в прошлом и не дальше горизонта
func validateDate(date, now time.Time, horizonWeekdays int) error {
	if _, err := domain.WeekdayOf(date); err != nil {
		return err
	}

	day := domain.Truncate(date)
	today := domain.Truncate(now)
	if day.Before(today) {
		return domain.NewValidationError("date", "%s is in the past", day.Format(domain.DateFormat))
	}
	if last := domain.HorizonEnd(today, horizonWeekdays); day.After(last) {
		return domain.NewValidationError("date", "bookings are accepted up to %s", last.Format(domain.DateFormat))
	}
	return nil
}
