package notificationservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notificationservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от функции уведомлений
	ErrInvalidResponse = errors.New("notificationservice client: invalid response")

	// ErrUnavailable возвращается, когда функция уведомлений недоступна или не ответила вовремя
	ErrUnavailable = errors.New("notificationservice client: service unavailable")
)
