package schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultationService/internal/infra/storage/pgerr"
)

var (
	// ErrBlockNotFound возвращается, когда блок расписания не найден (или принадлежит другому преподавателю)
	ErrBlockNotFound = errors.New("schedule.repository: schedule block not found")

	// ErrDuplicateSlot возвращается, когда слот (преподаватель, день, начало) уже занят
	ErrDuplicateSlot = errors.New("schedule.repository: slot already occupied")

	// ErrProfessorNotFound возвращается при нарушении внешнего ключа на преподавателя
	ErrProfessorNotFound = errors.New("schedule.repository: professor not found")

	// ErrUnavailable возвращается, когда БД недоступна
	ErrUnavailable = errors.New("schedule.repository: database unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)

func wrapErr(sentinel error, op string, err error) error {
	if pgerr.IsConnectionError(err) {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s: %v", sentinel, op, err)
}
