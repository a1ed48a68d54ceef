package get_available_slots

import (
	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	profileModels "github.com/m04kA/SMC-ConsultationService/internal/service/profiles/models"
	scheduleModels "github.com/m04kA/SMC-ConsultationService/internal/service/schedules/models"
	getAvailableSlots "github.com/m04kA/SMC-ConsultationService/internal/usecase/get_available_slots"
)

// ProfessorScheduleResponse расписание преподавателя глазами студента
type ProfessorScheduleResponse struct {
	Professor      *profileModels.ProfessorResponse `json:"professor"`
	Blocks         []scheduleModels.BlockResponse   `json:"blocks"`
	Week           []scheduleModels.DayResponse     `json:"week"`
	AvailableDates []AvailableDateResponse          `json:"availableDates"`
}

// AvailableDateResponse дата с открытыми для бронирования слотами
type AvailableDateResponse struct {
	Date    string         `json:"date"` // "2026-10-20"
	Weekday int            `json:"weekday"`
	Slots   []SlotResponse `json:"slots"`
}

// SlotResponse слот, который можно забронировать
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Видимость блоков не отдается: студент видит только видимые блоки.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *ProfessorScheduleResponse {
	out := &ProfessorScheduleResponse{
		Professor:      profileModels.FromDomainProfessor(resp.Professor),
		Blocks:         make([]scheduleModels.BlockResponse, 0, len(resp.Blocks)),
		Week:           scheduleModels.FromDomainWeek(resp.Week, false),
		AvailableDates: make([]AvailableDateResponse, 0, len(resp.Days)),
	}

	for _, b := range resp.Blocks {
		out.Blocks = append(out.Blocks, *scheduleModels.FromDomainBlock(b))
	}

	for _, d := range resp.Days {
		day := AvailableDateResponse{
			Date:    d.Date.Format(domain.DateFormat),
			Weekday: d.Weekday,
			Slots:   make([]SlotResponse, 0, len(d.Slots)),
		}
		for _, s := range d.Slots {
			day.Slots = append(day.Slots, SlotResponse{StartTime: s.Start.String(), EndTime: s.End.String()})
		}
		out.AvailableDates = append(out.AvailableDates, day)
	}

	return out
}
