package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/booking"
	profileRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ConsultationService/pkg/readretry"
)

// Service сервис для чтения бронирований и переходов их статусов
type Service struct {
	bookingRepo BookingRepository
	profiles    ProfileRepository
	metrics     Metrics
	readPolicy  readretry.Policy
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	repo BookingRepository,
	profiles ProfileRepository,
	metrics Metrics,
	readPolicy readretry.Policy,
	logger Logger,
) *Service {
	readPolicy.Retryable = func(err error) bool {
		return errors.Is(err, bookingRepo.ErrUnavailable) || errors.Is(err, profileRepo.ErrUnavailable)
	}

	return &Service{
		bookingRepo: repo,
		profiles:    profiles,
		metrics:     metrics,
		readPolicy:  readPolicy,
		logger:      logger,
	}
}

// Confirm подтверждает ожидающее бронирование. Доступно только преподавателю бронирования.
func (s *Service) Confirm(ctx context.Context, bookingID, professorID uuid.UUID, req *models.ReviewBookingRequest) (*models.BookingResponse, error) {
	return s.transition(ctx, "Confirm", domain.ActionConfirm, bookingID, professorID, req.Notes)
}

// Decline отклоняет ожидающее бронирование. Доступно только преподавателю бронирования.
func (s *Service) Decline(ctx context.Context, bookingID, professorID uuid.UUID, req *models.ReviewBookingRequest) (*models.BookingResponse, error) {
	return s.transition(ctx, "Decline", domain.ActionDecline, bookingID, professorID, req.Notes)
}

// Cancel отменяет ожидающее или подтвержденное бронирование. Доступно только студенту бронирования.
func (s *Service) Cancel(ctx context.Context, bookingID, studentID uuid.UUID) (*models.BookingResponse, error) {
	return s.transition(ctx, "Cancel", domain.ActionCancel, bookingID, studentID, nil)
}

// transition применяет переход одной условной записью. Если строка не обновилась,
// бронирование перечитывается, чтобы вернуть точную причину отказа.
func (s *Service) transition(
	ctx context.Context,
	op string,
	action domain.BookingAction,
	bookingID, actorID uuid.UUID,
	notes *string,
) (*models.BookingResponse, error) {
	s.logger.Info("%s: booking id=%s by user=%s", op, bookingID, actorID)

	notes, err := normalizeNotes(notes)
	if err != nil {
		return nil, err
	}

	t, ok := domain.TransitionFor(action)
	if !ok {
		return nil, fmt.Errorf("%w: %s - unknown action %q", ErrInternal, op, action)
	}

	booking, err := s.bookingRepo.Transition(ctx, bookingID, t, actorID, notes)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, s.classifyMiss(ctx, op, action, bookingID, actorID)
		}
		return nil, s.repoError(op, err)
	}

	if s.metrics != nil {
		s.metrics.IncBookingTransition(string(booking.Status))
	}

	s.logger.Info("%s: booking id=%s is now %s", op, bookingID, booking.Status)
	return models.FromDomainBooking(booking), nil
}

func (s *Service) classifyMiss(ctx context.Context, op string, action domain.BookingAction, bookingID, actorID uuid.UUID) error {
	current, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, bookingID)
			return ErrBookingNotFound
		}
		return s.repoError(op, err)
	}

	if _, err := current.Apply(action, actorID); err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			s.logger.Warn("%s: user=%s may not %s booking id=%s", op, actorID, action, bookingID)
			return ErrAccessDenied
		case errors.Is(err, domain.ErrInvalidTransition):
			s.logger.Warn("%s: booking id=%s is %s, cannot %s", op, bookingID, current.Status, action)
			return fmt.Errorf("%w: cannot %s a %s booking", ErrInvalidTransition, action, current.Status)
		}
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}

	// статус сменился между условной записью и чтением
	s.logger.Warn("%s: booking id=%s changed concurrently", op, bookingID)
	return fmt.Errorf("%w: booking changed concurrently, refresh and retry", ErrInvalidTransition)
}

// GetByID возвращает бронирование с профилями участников.
// Видеть бронирование могут только его студент и преподаватель.
func (s *Service) GetByID(ctx context.Context, bookingID, userID uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", bookingID, userID)

	view, err := readretry.Get(ctx, s.readPolicy, func(ctx context.Context) (*domain.BookingView, error) {
		return s.bookingRepo.GetView(ctx, bookingID)
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		return nil, s.repoError("GetByID", err)
	}

	if !view.IsParticipant(userID) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, bookingID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainView(view), nil
}

// ListStudentBookings возвращает историю бронирований студента, новые даты первыми
func (s *Service) ListStudentBookings(ctx context.Context, studentID uuid.UUID, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("ListStudentBookings: student=%s status=%v", studentID, status)

	if err := s.requireRole(ctx, "ListStudentBookings", studentID, domain.RoleStudent); err != nil {
		return nil, err
	}

	filter := domain.BookingsFilter{StudentID: &studentID, OrderBy: domain.OrderByDateDesc}
	if status != nil {
		st, err := models.ToDomainBookingStatus(*status)
		if err != nil {
			return nil, err
		}
		filter.Status = &st
	}

	return s.list(ctx, "ListStudentBookings", filter)
}

// ListProfessorBookings возвращает бронирования преподавателя.
// Для status=confirmed это расписание встреч по возрастанию даты, иначе входящие запросы, новые первыми.
func (s *Service) ListProfessorBookings(ctx context.Context, professorID uuid.UUID, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("ListProfessorBookings: professor=%s status=%v", professorID, status)

	if err := s.requireRole(ctx, "ListProfessorBookings", professorID, domain.RoleProfessor); err != nil {
		return nil, err
	}

	filter := domain.BookingsFilter{ProfessorID: &professorID, OrderBy: domain.OrderByCreatedDesc}
	if status != nil {
		st, err := models.ToDomainBookingStatus(*status)
		if err != nil {
			return nil, err
		}
		filter.Status = &st
		if st == domain.StatusConfirmed {
			filter.OrderBy = domain.OrderByDateAsc
		}
	}

	return s.list(ctx, "ListProfessorBookings", filter)
}

func (s *Service) list(ctx context.Context, op string, filter domain.BookingsFilter) (*models.BookingListResponse, error) {
	views, err := readretry.Get(ctx, s.readPolicy, func(ctx context.Context) ([]*domain.BookingView, error) {
		return s.bookingRepo.List(ctx, filter)
	})
	if err != nil {
		return nil, s.repoError(op, err)
	}

	s.logger.Info("%s: fetched %d bookings", op, len(views))
	return models.FromDomainViewList(views), nil
}

func (s *Service) requireRole(ctx context.Context, op string, userID uuid.UUID, role domain.Role) error {
	profile, err := readretry.Get(ctx, s.readPolicy, func(ctx context.Context) (*domain.Profile, error) {
		return s.profiles.GetByID(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("%s: profile user=%s not found", op, userID)
			return ErrProfileNotFound
		}
		return s.repoError(op, err)
	}
	if profile.Role != role {
		s.logger.Warn("%s: user=%s has role=%s, want %s", op, userID, profile.Role, role)
		return ErrWrongRole
	}
	return nil
}

func (s *Service) repoError(op string, err error) error {
	if errors.Is(err, bookingRepo.ErrUnavailable) || errors.Is(err, profileRepo.ErrUnavailable) {
		s.logger.Error("%s: storage unavailable: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func normalizeNotes(notes *string) (*string, error) {
	if notes == nil {
		return nil, nil
	}
	n := strings.TrimSpace(*notes)
	if utf8.RuneCountInString(n) > domain.MaxNoteLength {
		return nil, domain.NewValidationError("notes", "must be at most %d characters", domain.MaxNoteLength)
	}
	if n == "" {
		return nil, nil
	}
	return &n, nil
}
