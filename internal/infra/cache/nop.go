package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// Nop кэш-заглушка, когда Redis выключен в конфиге: всегда промах
type Nop struct{}

func (Nop) GetVisible(context.Context, uuid.UUID) ([]*domain.ScheduleBlock, uint64, bool, error) {
	return nil, 0, false, nil
}

func (Nop) SetVisible(context.Context, uuid.UUID, uint64, []*domain.ScheduleBlock) error {
	return nil
}

func (Nop) Invalidate(context.Context, uuid.UUID) error {
	return nil
}
