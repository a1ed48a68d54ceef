package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("booking %w", domain.ErrNotFound)

	// ErrProfileNotFound возвращается, когда у пользователя нет профиля
	ErrProfileNotFound = fmt.Errorf("profile %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда пользователь не участник бронирования
	ErrAccessDenied = fmt.Errorf("%w: access denied", domain.ErrForbidden)

	// ErrWrongRole возвращается, когда список запрашивает пользователь с другой ролью
	ErrWrongRole = fmt.Errorf("%w: wrong role for this view", domain.ErrForbidden)

	// ErrInvalidTransition возвращается, когда статус бронирования не допускает действие
	ErrInvalidTransition = fmt.Errorf("booking: %w", domain.ErrInvalidTransition)

	// ErrUnavailable возвращается, когда хранилище недоступно
	ErrUnavailable = fmt.Errorf("bookings: %w", domain.ErrUpstreamUnavailable)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
