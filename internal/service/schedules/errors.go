package schedules

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

var (
	// ErrBlockNotFound возвращается, когда блок расписания не найден
	ErrBlockNotFound = fmt.Errorf("schedule block %w", domain.ErrNotFound)

	// ErrProfileNotFound возвращается, когда у пользователя нет профиля
	ErrProfileNotFound = fmt.Errorf("profile %w", domain.ErrNotFound)

	// ErrSlotOccupied возвращается, когда слот уже занят другим блоком
	ErrSlotOccupied = fmt.Errorf("%w: slot already has a schedule block, delete it first", domain.ErrConflict)

	// ErrNotProfessor возвращается, когда расписание меняет не преподаватель
	ErrNotProfessor = fmt.Errorf("%w: only professors manage schedules", domain.ErrForbidden)

	// ErrNotOwner возвращается при попытке изменить чужой блок
	ErrNotOwner = fmt.Errorf("%w: schedule block belongs to another professor", domain.ErrForbidden)

	// ErrUnavailable возвращается, когда хранилище недоступно
	ErrUnavailable = fmt.Errorf("schedules: %w", domain.ErrUpstreamUnavailable)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedules service: internal error")
)
