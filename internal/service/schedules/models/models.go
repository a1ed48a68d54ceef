package models

import (
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// Request модели

// AddBlockRequest запрос на добавление блока расписания
type AddBlockRequest struct {
	Weekday           int     `json:"weekday"`
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	Type              string  `json:"type"`
	Note              *string `json:"note,omitempty"`
	VisibleToStudents *bool   `json:"visibleToStudents,omitempty"` // по умолчанию true
}

// UpdateBlockRequest изменение заметки и/или видимости блока
type UpdateBlockRequest struct {
	Note              *string `json:"note,omitempty"`
	VisibleToStudents *bool   `json:"visibleToStudents,omitempty"`
}

// Response модели

// BlockResponse блок расписания
type BlockResponse struct {
	ID                string    `json:"id"`
	ProfessorID       string    `json:"professorId"`
	Weekday           int       `json:"weekday"`
	StartTime         string    `json:"startTime"`
	EndTime           string    `json:"endTime"`
	Type              string    `json:"type"`
	Note              *string   `json:"note,omitempty"`
	VisibleToStudents bool      `json:"visibleToStudents"`
	CreatedAt         time.Time `json:"createdAt"`
}

// SlotResponse ячейка недельной сетки
type SlotResponse struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	State     string  `json:"state"`
	Bookable  bool    `json:"bookable"`
	BlockID   *string `json:"blockId,omitempty"`
	Note      *string `json:"note,omitempty"`
	Visible   *bool   `json:"visibleToStudents,omitempty"`
}

// DayResponse колонка дня недели
type DayResponse struct {
	Weekday int            `json:"weekday"`
	Name    string         `json:"name"`
	Slots   []SlotResponse `json:"slots"`
}

// ScheduleResponse расписание преподавателя: блоки и разрешенная недельная сетка
type ScheduleResponse struct {
	ProfessorID string          `json:"professorId"`
	Blocks      []BlockResponse `json:"blocks"`
	Week        []DayResponse   `json:"week"`
}

// Методы конвертации

// FromDomainBlock конвертирует блок в DTO
func FromDomainBlock(b *domain.ScheduleBlock) *BlockResponse {
	if b == nil {
		return nil
	}
	return &BlockResponse{
		ID:                b.ID.String(),
		ProfessorID:       b.ProfessorID.String(),
		Weekday:           b.Weekday,
		StartTime:         b.StartTime.String(),
		EndTime:           b.EndTime.String(),
		Type:              string(b.Type),
		Note:              b.Note,
		VisibleToStudents: b.VisibleToStudents,
		CreatedAt:         b.CreatedAt,
	}
}

// FromDomainWeek конвертирует разрешенную сетку в DTO.
// withDetails добавляет id блока и видимость (только для редактора преподавателя).
func FromDomainWeek(week []domain.DaySlots, withDetails bool) []DayResponse {
	days := make([]DayResponse, 0, len(week))
	for _, d := range week {
		day := DayResponse{Weekday: d.Weekday, Name: d.Name, Slots: make([]SlotResponse, 0, len(d.Slots))}
		for _, s := range d.Slots {
			slot := SlotResponse{
				StartTime: s.Start.String(),
				EndTime:   s.End.String(),
				State:     string(s.State),
				Bookable:  s.State.IsBookable(),
			}
			if s.Block != nil {
				slot.Note = s.Block.Note
				if withDetails {
					id := s.Block.ID.String()
					visible := s.Block.VisibleToStudents
					slot.BlockID = &id
					slot.Visible = &visible
				}
			}
			day.Slots = append(day.Slots, slot)
		}
		days = append(days, day)
	}
	return days
}

// NewScheduleResponse собирает ответ из блоков и сетки
func NewScheduleResponse(professorID string, blocks []*domain.ScheduleBlock, week []domain.DaySlots, withDetails bool) *ScheduleResponse {
	resp := &ScheduleResponse{
		ProfessorID: professorID,
		Blocks:      make([]BlockResponse, 0, len(blocks)),
		Week:        FromDomainWeek(week, withDetails),
	}
	for _, b := range blocks {
		resp.Blocks = append(resp.Blocks, *FromDomainBlock(b))
	}
	return resp
}
