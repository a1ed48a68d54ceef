package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// BlockType describes how a professor uses one weekly slot
type BlockType string

const (
	BlockTypeClass        BlockType = "class"
	BlockTypeOfficeHour   BlockType = "office_hour"
	BlockTypeConsultation BlockType = "consultation"
)

// IsValid reports whether the block type is known
func (t BlockType) IsValid() bool {
	switch t {
	case BlockTypeClass, BlockTypeOfficeHour, BlockTypeConsultation:
		return true
	}
	return false
}

// ScheduleBlock is a recurring weekly declaration for one grid slot.
// (ProfessorID, Weekday, StartTime) is unique; weekday/start/end/type never change after creation.
type ScheduleBlock struct {
	ID                uuid.UUID
	ProfessorID       uuid.UUID
	Weekday           int // 1 = Monday ... 5 = Friday
	StartTime         types.TimeString
	EndTime           types.TimeString
	Type              BlockType
	Note              *string
	VisibleToStudents bool
	CreatedAt         time.Time
}

// Key returns the slot identity of the block
func (b *ScheduleBlock) Key() SlotKey {
	return SlotKey{Weekday: b.Weekday, Start: b.StartTime}
}

// SlotKey identifies one cell of the weekly grid
type SlotKey struct {
	Weekday int
	Start   types.TimeString
}

// BlockUpdate carries the only mutable block fields; nil means "unchanged"
type BlockUpdate struct {
	Note              *string
	VisibleToStudents *bool
}

// IsEmpty reports whether nothing would change
func (u BlockUpdate) IsEmpty() bool {
	return u.Note == nil && u.VisibleToStudents == nil
}

// VisibleOnly returns the blocks students may see, preserving order
func VisibleOnly(blocks []*ScheduleBlock) []*ScheduleBlock {
	visible := make([]*ScheduleBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.VisibleToStudents {
			visible = append(visible, b)
		}
	}
	return visible
}
