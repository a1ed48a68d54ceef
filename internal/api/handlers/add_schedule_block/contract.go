package add_schedule_block

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/service/schedules/models"
)

type ScheduleService interface {
	AddBlock(ctx context.Context, actorID uuid.UUID, req *models.AddBlockRequest) (*models.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
