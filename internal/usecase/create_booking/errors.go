package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

var (
	// ErrProfessorNotFound возвращается, когда преподаватель не найден
	ErrProfessorNotFound = fmt.Errorf("create_booking: professor %w", domain.ErrNotFound)

	// ErrProfileNotFound возвращается, когда у студента нет профиля
	ErrProfileNotFound = fmt.Errorf("create_booking: profile %w", domain.ErrNotFound)

	// ErrNotStudent возвращается, когда бронирование создает не студент
	ErrNotStudent = fmt.Errorf("create_booking: %w: only students request consultations", domain.ErrForbidden)

	// ErrSlotUnavailable возвращается, когда слот не открыт для консультаций
	ErrSlotUnavailable = fmt.Errorf("create_booking: %w", domain.ErrSlotUnavailable)

	// ErrUnavailable возвращается, когда хранилище недоступно
	ErrUnavailable = fmt.Errorf("create_booking: %w", domain.ErrUpstreamUnavailable)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
