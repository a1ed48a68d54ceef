package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/logger"
	"github.com/m04kA/SMC-ConsultationService/pkg/ptr"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

type fakeReader struct {
	view *domain.BookingView
	err  error
}

func (f *fakeReader) GetView(_ context.Context, _ uuid.UUID) (*domain.BookingView, error) {
	return f.view, f.err
}

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

type blockingSender struct {
	release chan struct{}
}

func (b *blockingSender) DialAndSend(_ ...*gomail.Message) error {
	<-b.release
	return nil
}

func testView() *domain.BookingView {
	return &domain.BookingView{
		Booking: domain.Booking{
			ID:        uuid.New(),
			Date:      time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
			StartTime: types.MustTimeString("12:00"),
			EndTime:   types.MustTimeString("13:15"),
			Mode:      domain.ModeOnline,
			Topic:     "Thesis outline",
			Status:    domain.StatusPending,
		},
		Student: domain.Profile{
			FullName:   "Ana Student",
			Email:      "ana@uni.example",
			Department: ptr.Ptr("Computer Science"),
		},
		Professor: domain.Profile{
			FullName: "Prof. Ivo",
			Email:    "ivo@uni.example",
		},
	}
}

func TestMailer_Notify(t *testing.T) {
	view := testView()
	sender := &fakeSender{}
	m := NewWithSender(&fakeReader{view: view}, sender, "noreply@uni.example", "https://consult.example", logger.NewNop())

	require.NoError(t, m.Notify(context.Background(), view.ID))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"ivo@uni.example"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"New Consultation Request from Ana Student"}, msg.GetHeader("Subject"))
}

func TestMailer_NotifyErrors(t *testing.T) {
	view := testView()

	m := NewWithSender(&fakeReader{err: errors.New("gone")}, &fakeSender{}, "from", "", logger.NewNop())
	assert.ErrorIs(t, m.Notify(context.Background(), view.ID), ErrBookingNotLoaded)

	m = NewWithSender(&fakeReader{view: view}, &fakeSender{err: errors.New("dial tcp")}, "from", "", logger.NewNop())
	assert.ErrorIs(t, m.Notify(context.Background(), view.ID), ErrSend)
}

func TestMailer_NotifyStopsAtDeadline(t *testing.T) {
	view := testView()
	sender := &blockingSender{release: make(chan struct{})}
	defer close(sender.release)

	m := NewWithSender(&fakeReader{view: view}, sender, "from", "", logger.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	started := time.Now()
	err := m.Notify(ctx, view.ID)

	assert.ErrorIs(t, err, ErrSend)
	assert.Contains(t, err.Error(), context.DeadlineExceeded.Error())
	assert.Less(t, time.Since(started), time.Second)
}

func TestRender(t *testing.T) {
	body, err := render(testView(), "https://consult.example")
	require.NoError(t, err)

	assert.Contains(t, body, "Ana Student")
	assert.Contains(t, body, "Computer Science")
	assert.Contains(t, body, "Tuesday, October 20, 2026")
	assert.Contains(t, body, "12:00 PM - 1:15 PM")
	assert.Contains(t, body, "Online")
	assert.Contains(t, body, "https://consult.example/professor/requests")
}

func TestClock(t *testing.T) {
	assert.Equal(t, "7:00 AM", clock("07:00"))
	assert.Equal(t, "12:00 PM", clock("12:00"))
	assert.Equal(t, "8:45 PM", clock("20:45"))
	assert.Equal(t, "12:15 AM", clock("00:15"))
}
