package mailer

import "errors"

var (
	// ErrBookingNotLoaded возвращается, когда бронирование для письма не удалось прочитать
	ErrBookingNotLoaded = errors.New("mailer: failed to load booking")

	// ErrRender возвращается при ошибке формирования письма
	ErrRender = errors.New("mailer: failed to render email")

	// ErrSend возвращается при ошибке отправки через SMTP
	ErrSend = errors.New("mailer: failed to send email")
)
