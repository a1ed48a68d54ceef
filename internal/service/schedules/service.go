package schedules

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	profileRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/profile"
	scheduleRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedules/models"
	"github.com/m04kA/SMC-ConsultationService/pkg/readretry"
)

// Service сервис недельного расписания преподавателей
type Service struct {
	repo       ScheduleRepository
	profiles   ProfileRepository
	cache      ScheduleCache
	grid       *domain.Grid
	readPolicy readretry.Policy
	logger     Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	repo ScheduleRepository,
	profiles ProfileRepository,
	cache ScheduleCache,
	grid *domain.Grid,
	readPolicy readretry.Policy,
	logger Logger,
) *Service {
	readPolicy.Retryable = func(err error) bool {
		return errors.Is(err, scheduleRepo.ErrUnavailable) || errors.Is(err, profileRepo.ErrUnavailable)
	}

	return &Service{
		repo:       repo,
		profiles:   profiles,
		cache:      cache,
		grid:       grid,
		readPolicy: readPolicy,
		logger:     logger,
	}
}

// AddBlock добавляет блок в расписание преподавателя-инициатора.
// Занятый слот (день, начало) возвращает ErrSlotOccupied: сначала нужно удалить существующий блок.
func (s *Service) AddBlock(ctx context.Context, actorID uuid.UUID, req *models.AddBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("AddBlock: professor=%s weekday=%d start=%s type=%s", actorID, req.Weekday, req.StartTime, req.Type)

	start, end, err := validateAdd(s.grid, req)
	if err != nil {
		s.logger.Warn("AddBlock: validation failed for professor=%s: %v", actorID, err)
		return nil, err
	}

	if err := s.requireProfessor(ctx, "AddBlock", actorID); err != nil {
		return nil, err
	}

	visible := true
	if req.VisibleToStudents != nil {
		visible = *req.VisibleToStudents
	}

	block, err := s.repo.Create(ctx, &domain.ScheduleBlock{
		ProfessorID:       actorID,
		Weekday:           req.Weekday,
		StartTime:         start,
		EndTime:           end,
		Type:              domain.BlockType(req.Type),
		Note:              normalizeNote(req.Note),
		VisibleToStudents: visible,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduleRepo.ErrDuplicateSlot):
			s.logger.Warn("AddBlock: slot weekday=%d start=%s of professor=%s is occupied", req.Weekday, start, actorID)
			return nil, ErrSlotOccupied
		case errors.Is(err, scheduleRepo.ErrProfessorNotFound):
			s.logger.Warn("AddBlock: professor extension for %s is missing", actorID)
			return nil, ErrNotProfessor
		}
		return nil, s.repoError("AddBlock", err)
	}

	s.invalidate(ctx, block.ProfessorID)

	s.logger.Info("AddBlock: created block id=%s for professor=%s", block.ID, actorID)
	return models.FromDomainBlock(block), nil
}

// DeleteBlock удаляет блок владельца и возвращает удаленный блок
func (s *Service) DeleteBlock(ctx context.Context, actorID, blockID uuid.UUID) (*models.BlockResponse, error) {
	s.logger.Info("DeleteBlock: professor=%s block=%s", actorID, blockID)

	block, err := s.repo.Delete(ctx, blockID, actorID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockNotFound) {
			return nil, s.classifyMiss(ctx, "DeleteBlock", actorID, blockID)
		}
		return nil, s.repoError("DeleteBlock", err)
	}

	s.invalidate(ctx, block.ProfessorID)

	s.logger.Info("DeleteBlock: deleted block id=%s", blockID)
	return models.FromDomainBlock(block), nil
}

// UpdateBlock меняет заметку и/или видимость блока владельца
func (s *Service) UpdateBlock(ctx context.Context, actorID, blockID uuid.UUID, req *models.UpdateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("UpdateBlock: professor=%s block=%s", actorID, blockID)

	if err := validateNote(req.Note); err != nil {
		return nil, err
	}

	upd := domain.BlockUpdate{VisibleToStudents: req.VisibleToStudents}
	if req.Note != nil {
		note := strings.TrimSpace(*req.Note)
		upd.Note = &note
	}

	block, err := s.repo.Update(ctx, blockID, actorID, upd)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockNotFound) {
			return nil, s.classifyMiss(ctx, "UpdateBlock", actorID, blockID)
		}
		return nil, s.repoError("UpdateBlock", err)
	}

	s.invalidate(ctx, block.ProfessorID)

	s.logger.Info("UpdateBlock: updated block id=%s", blockID)
	return models.FromDomainBlock(block), nil
}

// ListBlocks возвращает все блоки преподавателя, упорядоченные по дню и времени
func (s *Service) ListBlocks(ctx context.Context, professorID uuid.UUID) ([]*domain.ScheduleBlock, error) {
	blocks, err := readretry.Get(ctx, s.readPolicy, func(ctx context.Context) ([]*domain.ScheduleBlock, error) {
		return s.repo.ListByProfessor(ctx, professorID, false)
	})
	if err != nil {
		return nil, s.repoError("ListBlocks", err)
	}
	return blocks, nil
}

// ListVisibleBlocks возвращает только видимые студентам блоки.
// Читает через кэш; ошибки кэша не мешают чтению из БД.
func (s *Service) ListVisibleBlocks(ctx context.Context, professorID uuid.UUID) ([]*domain.ScheduleBlock, error) {
	blocks, gen, ok, err := s.cache.GetVisible(ctx, professorID)
	cacheable := err == nil
	if err != nil {
		s.logger.Warn("ListVisibleBlocks: cache read failed for professor=%s: %v", professorID, err)
	} else if ok {
		return blocks, nil
	}

	blocks, err = readretry.Get(ctx, s.readPolicy, func(ctx context.Context) ([]*domain.ScheduleBlock, error) {
		return s.repo.ListByProfessor(ctx, professorID, true)
	})
	if err != nil {
		return nil, s.repoError("ListVisibleBlocks", err)
	}

	if !cacheable {
		return blocks, nil
	}
	if err := s.cache.SetVisible(ctx, professorID, gen, blocks); err != nil {
		s.logger.Warn("ListVisibleBlocks: cache write failed for professor=%s: %v", professorID, err)
	}

	return blocks, nil
}

// GetEditorSchedule возвращает расписание преподавателя-инициатора со всеми блоками,
// включая скрытые от студентов
func (s *Service) GetEditorSchedule(ctx context.Context, actorID uuid.UUID) (*models.ScheduleResponse, error) {
	s.logger.Info("GetEditorSchedule: professor=%s", actorID)

	if err := s.requireProfessor(ctx, "GetEditorSchedule", actorID); err != nil {
		return nil, err
	}

	blocks, err := s.ListBlocks(ctx, actorID)
	if err != nil {
		return nil, err
	}

	week := domain.NewAvailability(s.grid, blocks).Week()
	return models.NewScheduleResponse(actorID.String(), blocks, week, true), nil
}

// Grid возвращает сетку времени сервиса
func (s *Service) Grid() *domain.Grid {
	return s.grid
}

// requireProfessor проверяет по записи профиля, что пользователь преподаватель
func (s *Service) requireProfessor(ctx context.Context, op string, userID uuid.UUID) error {
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
	if !profile.IsProfessor() {
		s.logger.Warn("%s: user=%s with role=%s is not a professor", op, userID, profile.Role)
		return ErrNotProfessor
	}
	return nil
}

// classifyMiss перечитывает блок после условной записи, не затронувшей строк:
// блока нет - ErrBlockNotFound, блок чужой - ErrNotOwner
func (s *Service) classifyMiss(ctx context.Context, op string, actorID, blockID uuid.UUID) error {
	block, err := s.repo.GetByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockNotFound) {
			s.logger.Warn("%s: block id=%s not found", op, blockID)
			return ErrBlockNotFound
		}
		return s.repoError(op, err)
	}
	if block.ProfessorID != actorID {
		s.logger.Warn("%s: block id=%s belongs to professor=%s, not %s", op, blockID, block.ProfessorID, actorID)
		return ErrNotOwner
	}
	// строка появилась между записью и чтением: для вызывающего блок по-прежнему недоступен
	s.logger.Warn("%s: block id=%s changed concurrently", op, blockID)
	return ErrBlockNotFound
}

func (s *Service) invalidate(ctx context.Context, professorID uuid.UUID) {
	if err := s.cache.Invalidate(ctx, professorID); err != nil {
		s.logger.Error("invalidate: failed to drop cached schedule of professor=%s: %v", professorID, err)
	}
}

func (s *Service) repoError(op string, err error) error {
	if errors.Is(err, scheduleRepo.ErrUnavailable) || errors.Is(err, profileRepo.ErrUnavailable) {
		s.logger.Error("%s: storage unavailable: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func normalizeNote(note *string) *string {
	if note == nil {
		return nil
	}
	n := strings.TrimSpace(*note)
	if n == "" {
		return nil
	}
	return &n
}
