package schedules

import (
	"unicode/utf8"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedules/models"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// validateAdd проверяет блок до обращения к хранилищу и возвращает разобранные значения
func validateAdd(grid *domain.Grid, req *models.AddBlockRequest) (types.TimeString, types.TimeString, error) {
	if err := domain.ValidateWeekday(req.Weekday); err != nil {
		return "", "", err
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return "", "", domain.NewValidationError("startTime", "must be in HH:MM format")
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return "", "", domain.NewValidationError("endTime", "must be in HH:MM format")
	}
	if err := grid.ValidateSlot(start, end); err != nil {
		return "", "", err
	}

	if !domain.BlockType(req.Type).IsValid() {
		return "", "", domain.NewValidationError("type", "must be one of %q, %q, %q",
			domain.BlockTypeClass, domain.BlockTypeOfficeHour, domain.BlockTypeConsultation)
	}

	if err := validateNote(req.Note); err != nil {
		return "", "", err
	}

	return start, end, nil
}

func validateNote(note *string) error {
	if note != nil && utf8.RuneCountInString(*note) > domain.MaxNoteLength {
		return domain.NewValidationError("note", "must be at most %d characters", domain.MaxNoteLength)
	}
	return nil
}
