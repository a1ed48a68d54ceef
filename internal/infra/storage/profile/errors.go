package profile

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultationService/internal/infra/storage/pgerr"
)

var (
	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("profile.repository: profile not found")

	// ErrProfessorNotFound возвращается, когда профиль преподавателя не найден
	ErrProfessorNotFound = errors.New("profile.repository: professor not found")

	// ErrProfileExists возвращается при повторном создании профиля с тем же id или email
	ErrProfileExists = errors.New("profile.repository: profile already exists")

	// ErrUnavailable возвращается, когда БД недоступна
	ErrUnavailable = errors.New("profile.repository: database unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("profile.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("profile.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("profile.repository: failed to scan row")
)

// wrapErr оборачивает ошибку драйвера; недоступность БД всегда возвращается как ErrUnavailable
func wrapErr(sentinel error, op string, err error) error {
	if pgerr.IsConnectionError(err) {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s: %v", sentinel, op, err)
}
