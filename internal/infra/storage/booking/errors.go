package booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultationService/internal/infra/storage/pgerr"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// (или условное обновление не затронуло ни одной строки)
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrParticipantNotFound возвращается при нарушении внешнего ключа на студента или преподавателя
	ErrParticipantNotFound = errors.New("booking.repository: participant not found")

	// ErrUnavailable возвращается, когда БД недоступна
	ErrUnavailable = errors.New("booking.repository: database unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("booking.repository: invalid booking status")
)

func wrapErr(sentinel error, op string, err error) error {
	if pgerr.IsConnectionError(err) {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s: %v", sentinel, op, err)
}
