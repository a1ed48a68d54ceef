package cache

import "errors"

var (
	// ErrUnavailable возвращается, когда Redis недоступен
	ErrUnavailable = errors.New("schedule.cache: redis unavailable")

	// ErrDecode возвращается, когда закэшированное значение не удалось разобрать
	ErrDecode = errors.New("schedule.cache: failed to decode value")
)
