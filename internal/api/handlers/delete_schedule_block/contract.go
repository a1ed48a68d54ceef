package delete_schedule_block

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/service/schedules/models"
)

type ScheduleService interface {
	DeleteBlock(ctx context.Context, actorID, blockID uuid.UUID) (*models.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
