package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	profileRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-ConsultationService/internal/service/profiles/models"
	"github.com/m04kA/SMC-ConsultationService/pkg/readretry"
)

// Service сервис профилей и каталога преподавателей
type Service struct {
	repo       ProfileRepository
	txManager  TransactionManager
	readPolicy readretry.Policy
	logger     Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(
	repo ProfileRepository,
	txManager TransactionManager,
	readPolicy readretry.Policy,
	logger Logger,
) *Service {
	readPolicy.Retryable = func(err error) bool {
		return errors.Is(err, profileRepo.ErrUnavailable)
	}

	return &Service{
		repo:       repo,
		txManager:  txManager,
		readPolicy: readPolicy,
		logger:     logger,
	}
}

// Create создает профиль после регистрации у провайдера идентификации.
// Для преподавателя в той же транзакции создается расширение professors.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req *models.CreateProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("Create: creating profile user=%s role=%s", userID, req.Role)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed for user=%s: %v", userID, err)
		return nil, err
	}

	profile := &domain.Profile{
		ID:            userID,
		Role:          domain.Role(req.Role),
		FullName:      strings.TrimSpace(req.FullName),
		Email:         req.Email,
		Department:    trimmed(req.Department),
		Program:       trimmed(req.Program),
		StudentNumber: trimmed(req.StudentNumber),
		TeamsEmail:    trimmed(req.TeamsEmail),
	}

	var ext *domain.Professor
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.repo.CreateProfile(ctx, profile)
		if err != nil {
			return err
		}
		profile = created

		if !profile.IsProfessor() {
			return nil
		}
		ext, err = s.repo.CreateProfessor(ctx, &domain.Professor{
			ID:             userID,
			OfficeLocation: trimmed(req.OfficeLocation),
			Department:     profile.Department,
			Bio:            trimmed(req.Bio),
		})
		return err
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileExists) {
			s.logger.Warn("Create: profile user=%s already exists", userID)
			return nil, ErrProfileExists
		}
		return nil, s.repoError("Create", err)
	}

	s.logger.Info("Create: successfully created profile user=%s", userID)
	return models.FromDomainProfile(profile, ext), nil
}

// Get возвращает профиль пользователя (с расширением для преподавателя)
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*models.ProfileResponse, error) {
	s.logger.Info("Get: fetching profile user=%s", userID)

	profile, err := readretry.Get(ctx, s.readPolicy, func(ctx context.Context) (*domain.Profile, error) {
		return s.repo.GetByID(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("Get: profile user=%s not found", userID)
			return nil, ErrProfileNotFound
		}
		return nil, s.repoError("Get", err)
	}

	if !profile.IsProfessor() {
		return models.FromDomainProfile(profile, nil), nil
	}

	detail, err := readretry.Get(ctx, s.readPolicy, func(ctx context.Context) (*domain.ProfessorDetail, error) {
		return s.repo.GetProfessor(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfessorNotFound) {
			s.logger.Warn("Get: professor extension for user=%s is missing", userID)
			return models.FromDomainProfile(profile, nil), nil
		}
		return nil, s.repoError("Get", err)
	}

	return models.FromDomainProfile(profile, &detail.Professor), nil
}

// Update обновляет профиль владельца. Поля преподавателя пишутся в расширение
// в той же транзакции; кафедра преподавателя хранится в обеих записях.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("Update: updating profile user=%s", userID)

	current, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("Update: profile user=%s not found", userID)
			return nil, ErrProfileNotFound
		}
		return nil, s.repoError("Update", err)
	}

	upd := req.ToDomain()
	if err := validateUpdate(current, upd); err != nil {
		s.logger.Warn("Update: validation failed for user=%s: %v", userID, err)
		return nil, err
	}
	if upd.FullName != nil {
		name := strings.TrimSpace(*upd.FullName)
		upd.FullName = &name
	}

	var (
		profile *domain.Profile
		ext     *domain.Professor
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		profile, err = s.repo.UpdateProfile(ctx, userID, upd)
		if err != nil {
			return err
		}
		if !profile.IsProfessor() {
			return nil
		}
		ext, err = s.repo.UpdateProfessor(ctx, userID, upd)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, profileRepo.ErrProfileNotFound), errors.Is(err, profileRepo.ErrProfessorNotFound):
			s.logger.Warn("Update: profile user=%s vanished during update", userID)
			return nil, ErrProfileNotFound
		case errors.Is(err, profileRepo.ErrProfileExists):
			return nil, ErrProfileExists
		}
		return nil, s.repoError("Update", err)
	}

	s.logger.Info("Update: successfully updated profile user=%s", userID)
	return models.FromDomainProfile(profile, ext), nil
}

// GetProfessor возвращает преподавателя вместе с профилем
func (s *Service) GetProfessor(ctx context.Context, professorID uuid.UUID) (*models.ProfessorResponse, error) {
	s.logger.Info("GetProfessor: fetching professor id=%s", professorID)

	detail, err := readretry.Get(ctx, s.readPolicy, func(ctx context.Context) (*domain.ProfessorDetail, error) {
		return s.repo.GetProfessor(ctx, professorID)
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfessorNotFound) {
			s.logger.Warn("GetProfessor: professor id=%s not found", professorID)
			return nil, ErrProfessorNotFound
		}
		return nil, s.repoError("GetProfessor", err)
	}

	return models.FromDomainProfessor(detail), nil
}

// ListProfessors возвращает каталог преподавателей с необязательным поиском по ФИО и кафедре
func (s *Service) ListProfessors(ctx context.Context, search string) (*models.ProfessorListResponse, error) {
	search = strings.TrimSpace(search)
	s.logger.Info("ListProfessors: search=%q", search)

	if utf8.RuneCountInString(search) > domain.MaxSearchLength {
		return nil, domain.NewValidationError("search", "must be at most %d characters", domain.MaxSearchLength)
	}

	list, err := readretry.Get(ctx, s.readPolicy, func(ctx context.Context) ([]*domain.ProfessorDetail, error) {
		return s.repo.ListProfessors(ctx, search)
	})
	if err != nil {
		return nil, s.repoError("ListProfessors", err)
	}

	s.logger.Info("ListProfessors: found %d professors", len(list))
	return models.FromDomainProfessorList(list), nil
}

func (s *Service) repoError(op string, err error) error {
	if errors.Is(err, profileRepo.ErrUnavailable) {
		s.logger.Error("%s: storage unavailable: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
