package mailer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// Config параметры SMTP
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	AppURL   string // ссылка на кабинет преподавателя в письме, опционально
}

// Mailer отправляет преподавателю письмо о новом запросе на консультацию.
// Это встроенная реализация функции уведомлений для режима smtp.
type Mailer struct {
	bookings BookingReader
	sender   Sender
	from     string
	appURL   string
	log      Logger
}

// New создает Mailer поверх gomail.Dialer
func New(cfg Config, bookings BookingReader, log Logger) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return NewWithSender(bookings, dialer, cfg.From, cfg.AppURL, log)
}

// NewWithSender создает Mailer с произвольным отправителем
func NewWithSender(bookings BookingReader, sender Sender, from, appURL string, log Logger) *Mailer {
	return &Mailer{
		bookings: bookings,
		sender:   sender,
		from:     from,
		appURL:   appURL,
		log:      log,
	}
}

// Notify загружает бронирование с профилями и отправляет письмо преподавателю
func (m *Mailer) Notify(ctx context.Context, bookingID uuid.UUID) error {
	view, err := m.bookings.GetView(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("%w: booking_id=%s: %v", ErrBookingNotLoaded, bookingID, err)
	}

	body, err := render(view, m.appURL)
	if err != nil {
		return fmt.Errorf("%w: booking_id=%s: %v", ErrRender, bookingID, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", view.Professor.Email)
	msg.SetHeader("Subject", subject(view))
	msg.SetBody("text/html", body)

	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("%w: booking_id=%s: %v", ErrSend, bookingID, err)
	}

	m.log.Info("Notify: email sent to professor_id=%s for booking_id=%s", view.ProfessorID, bookingID)
	return nil
}

// send ограничивает отправку контекстом: gomail.Dialer не принимает ctx,
// поэтому зависшая SMTP-сессия дорабатывает в фоне, а вызывающий получает ctx.Err()
func (m *Mailer) send(ctx context.Context, msg *gomail.Message) error {
	done := make(chan error, 1)
	go func() {
		done <- m.sender.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
