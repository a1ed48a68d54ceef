package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	profileRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/profile"
)

// UseCase use case для получения расписания преподавателя и свободных слотов (вид студента)
type UseCase struct {
	profileRepo  ProfileRepository
	schedules    ScheduleReader
	grid         *domain.Grid
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	profiles ProfileRepository,
	schedules ScheduleReader,
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

	return &UseCase{
		profileRepo:  profiles,
		schedules:    schedules,
		grid:         grid,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения расписания.
// Студент видит только блоки с visible=true; скрытые блоки не влияют ни на сетку, ни на слоты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%s, professor=%s", req.UserID, req.ProfessorID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в часовом поясе учебного заведения
	now := uc.timeProvider.Now().In(uc.cfg.Location)

	var date time.Time
	if req.Date != nil {
		date = time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.cfg.Location)
		if err := validateDate(date, now, uc.cfg.HorizonWeekdays); err != nil {
			uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
			return nil, err
		}
	}

	// 3. Получаем преподавателя
	professor, err := uc.profileRepo.GetProfessor(ctx, req.ProfessorID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfessorNotFound) {
			uc.logger.Warn("GetAvailableSlots: professor id=%s not found", req.ProfessorID)
			return nil, ErrProfessorNotFound
		}
		return nil, uc.upstreamError("get professor", err)
	}

	// 4. Видимые блоки расписания
	blocks, err := uc.schedules.ListVisibleBlocks(ctx, req.ProfessorID)
	if err != nil {
		return nil, uc.upstreamError("list visible blocks", err)
	}

	// 5. Разрешаем сетку и собираем открытые слоты
	availability := domain.NewAvailability(uc.grid, blocks)

	var days []Day
	if req.Date != nil {
		days = make([]Day, 0, 1)
		if day, ok := bookableDay(availability, date, now); ok {
			days = append(days, day)
		}
	} else {
		days = bookableDays(availability, now, uc.cfg.HorizonWeekdays)
	}

	uc.logger.Info("GetAvailableSlots: professor=%s has %d visible blocks, %d bookable days",
		req.ProfessorID, len(blocks), len(days))

	return &Response{
		Professor: professor,
		Blocks:    blocks,
		Week:      availability.Week(),
		Days:      days,
	}, nil
}

func (uc *UseCase) upstreamError(op string, err error) error {
	if errors.Is(err, profileRepo.ErrUnavailable) || errors.Is(err, domain.ErrUpstreamUnavailable) {
		uc.logger.Error("GetAvailableSlots: storage unavailable on %s: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	uc.logger.Error("GetAvailableSlots: failed to %s: %v", op, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
