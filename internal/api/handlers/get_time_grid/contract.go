package get_time_grid

import "github.com/m04kA/SMC-ConsultationService/internal/domain"

type GridProvider interface {
	Grid() *domain.Grid
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
