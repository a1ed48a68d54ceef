package profiles

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

var (
	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = fmt.Errorf("profile %w", domain.ErrNotFound)

	// ErrProfessorNotFound возвращается, когда преподаватель не найден
	ErrProfessorNotFound = fmt.Errorf("professor %w", domain.ErrNotFound)

	// ErrProfileExists возвращается при повторном создании профиля
	ErrProfileExists = fmt.Errorf("profile already exists: %w", domain.ErrConflict)

	// ErrUnavailable возвращается, когда хранилище недоступно
	ErrUnavailable = fmt.Errorf("profiles: %w", domain.ErrUpstreamUnavailable)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("profiles service: internal error")
)
