package get_time_grid

import "github.com/m04kA/SMC-ConsultationService/internal/domain"

// GridResponse сетка времени учебного заведения
type GridResponse struct {
	IntervalMinutes int               `json:"intervalMinutes"`
	Boundaries      []string          `json:"boundaries"`
	Slots           []SlotResponse    `json:"slots"`
	Weekdays        []WeekdayResponse `json:"weekdays"`
}

// SlotResponse пара соседних границ сетки
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// WeekdayResponse рабочий день недели
type WeekdayResponse struct {
	Weekday int    `json:"weekday"`
	Name    string `json:"name"`
}

// FromDomainGrid конвертирует сетку в DTO
func FromDomainGrid(g *domain.Grid) *GridResponse {
	boundaries := g.Boundaries()
	pairs := g.Pairs()

	resp := &GridResponse{
		IntervalMinutes: g.IntervalMinutes(),
		Boundaries:      make([]string, 0, len(boundaries)),
		Slots:           make([]SlotResponse, 0, len(pairs)),
		Weekdays:        make([]WeekdayResponse, 0, domain.MaxWeekday),
	}
	for _, b := range boundaries {
		resp.Boundaries = append(resp.Boundaries, b.String())
	}
	for _, p := range pairs {
		resp.Slots = append(resp.Slots, SlotResponse{StartTime: p.Start.String(), EndTime: p.End.String()})
	}
	for w := domain.MinWeekday; w <= domain.MaxWeekday; w++ {
		resp.Weekdays = append(resp.Weekdays, WeekdayResponse{Weekday: w, Name: domain.WeekdayName(w)})
	}
	return resp
}
