package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/booking"
	profileRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/profile"
	scheduleRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/schedule"
)

const defaultNotifyTimeout = 5 * time.Second

// UseCase use case для создания запроса на консультацию
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	profileRepo  ProfileRepository
	notifier     Notifier
	txManager    TransactionManager
	metrics      Metrics
	grid         *domain.Grid
	cfg          Config
	timeProvider TimeProvider
	logger       Logger

	notifications sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookings BookingRepository,
	schedules ScheduleRepository,
	profiles ProfileRepository,
	notifier Notifier,
	txManager TransactionManager,
	metrics Metrics,
	grid *domain.Grid,
	cfg Config,
	logger Logger,
) *UseCase {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.HorizonWeekdays <= 0 {
		cfg.HorizonWeekdays = domain.DefaultBookingHorizonWeekdays
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaultNotifyTimeout
	}

	return &UseCase{
		bookingRepo:  bookings,
		scheduleRepo: schedules,
		profileRepo:  profiles,
		notifier:     notifier,
		txManager:    txManager,
		metrics:      metrics,
		grid:         grid,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка слота и вставка идут в одной транзакции: блоки расписания читаются с FOR SHARE,
// поэтому преподаватель не может удалить или сменить блок, пока бронирование не записано.
// Уведомление отправляется после коммита и не влияет на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: student=%s, professor=%s, date=%s, time=%s-%s",
		req.StudentID, req.ProfessorID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(uc.grid, req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем дату в часовом поясе учебного заведения
	now := uc.timeProvider.Now().In(uc.cfg.Location)
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.cfg.Location)

	weekday, err := domain.CheckBookingWindow(date, req.StartTime, now, uc.cfg.HorizonWeekdays)
	if err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Роль инициатора берется из профиля
	student, err := uc.profileRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			uc.logger.Warn("CreateBooking: profile user=%s not found", req.StudentID)
			return nil, ErrProfileNotFound
		}
		return nil, uc.repoError("get student profile", err)
	}
	if !student.IsStudent() {
		uc.logger.Warn("CreateBooking: user=%s with role=%s is not a student", req.StudentID, student.Role)
		return nil, ErrNotStudent
	}

	// 4. Преподаватель должен существовать вместе с профилем
	professor, err := uc.profileRepo.GetProfessor(ctx, req.ProfessorID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfessorNotFound) {
			uc.logger.Warn("CreateBooking: professor id=%s not found", req.ProfessorID)
			return nil, ErrProfessorNotFound
		}
		return nil, uc.repoError("get professor", err)
	}
	if !professor.Profile.IsProfessor() {
		uc.logger.Warn("CreateBooking: profile id=%s is not a professor", req.ProfessorID)
		return nil, ErrProfessorNotFound
	}

	var result *domain.Booking

	// 5. Проверка слота и вставка в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 5.1. Видимые блоки преподавателя с блокировкой FOR SHARE
		blocks, err := uc.scheduleRepo.ListByProfessor(txCtx, req.ProfessorID, true)
		if err != nil {
			return uc.repoError("list schedule blocks", err)
		}

		// 5.2. Слот должен быть явно открыт для консультаций
		availability := domain.NewAvailability(uc.grid, blocks)
		if err := availability.CheckBookable(weekday, req.StartTime); err != nil {
			if errors.Is(err, domain.ErrSlotUnavailable) {
				uc.logger.Warn("CreateBooking: %v", err)
				return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
			}
			return err
		}

		// 5.3. Сохраняем бронирование в статусе pending
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			StudentID:   req.StudentID,
			ProfessorID: req.ProfessorID,
			Date:        date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Mode:        domain.BookingMode(req.Mode),
			Topic:       strings.TrimSpace(req.Topic),
			Status:      domain.StatusPending,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrParticipantNotFound) {
				return ErrProfessorNotFound
			}
			return uc.repoError("create booking", err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)
	if uc.metrics != nil {
		uc.metrics.IncBookingTransition(string(result.Status))
	}

	// 6. Уведомление преподавателя без ожидания результата
	uc.notifyAsync(result.ID)

	return &Response{
		ID:          result.ID,
		StudentID:   result.StudentID,
		ProfessorID: result.ProfessorID,
		Date:        result.Date,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Mode:        string(result.Mode),
		Topic:       result.Topic,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

// Wait ждет завершения отправленных уведомлений (graceful shutdown, тесты)
func (uc *UseCase) Wait() {
	uc.notifications.Wait()
}

// notifyAsync вызывает функцию уведомлений на отвязанном от запроса контексте
// с собственным таймаутом. Ошибка только логируется и считается в метриках.
func (uc *UseCase) notifyAsync(bookingID uuid.UUID) {
	if uc.notifier == nil {
		return
	}

	uc.notifications.Add(1)
	go func() {
		defer uc.notifications.Done()

		ctx, cancel := context.WithTimeout(context.Background(), uc.cfg.NotifyTimeout)
		defer cancel()

		result := "sent"
		if err := uc.notifier.Notify(ctx, bookingID); err != nil {
			result = "failed"
			uc.logger.Error("CreateBooking: notification for booking id=%s failed: %v", bookingID, err)
		}
		if uc.metrics != nil {
			uc.metrics.IncNotification(result)
		}
	}()
}

func (uc *UseCase) repoError(op string, err error) error {
	if errors.Is(err, bookingRepo.ErrUnavailable) ||
		errors.Is(err, scheduleRepo.ErrUnavailable) ||
		errors.Is(err, profileRepo.ErrUnavailable) {
		uc.logger.Error("CreateBooking: storage unavailable on %s: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	uc.logger.Error("CreateBooking: failed to %s: %v", op, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
