package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

var (
	// ErrProfessorNotFound возвращается, когда преподаватель не найден
	ErrProfessorNotFound = fmt.Errorf("get_available_slots: professor %w", domain.ErrNotFound)

	// ErrUnavailable возвращается, когда хранилище недоступно
	ErrUnavailable = fmt.Errorf("get_available_slots: %w", domain.ErrUpstreamUnavailable)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
