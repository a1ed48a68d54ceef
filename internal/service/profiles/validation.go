package profiles

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/service/profiles/models"
)

func validateFullName(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < domain.MinFullNameLength {
		return domain.NewValidationError("fullName", "must be at least %d characters", domain.MinFullNameLength)
	}
	if n > domain.MaxFullNameLength {
		return domain.NewValidationError("fullName", "must be at most %d characters", domain.MaxFullNameLength)
	}
	return nil
}

func validateEmail(field, email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return domain.NewValidationError(field, "invalid email address")
	}
	return nil
}

func validateBio(bio *string) error {
	if bio != nil && utf8.RuneCountInString(*bio) > domain.MaxBioLength {
		return domain.NewValidationError("bio", "must be at most %d characters", domain.MaxBioLength)
	}
	return nil
}

func validateCreate(req *models.CreateProfileRequest) error {
	role := domain.Role(req.Role)
	if !role.IsValid() {
		return domain.NewValidationError("role", "must be %q or %q", domain.RoleStudent, domain.RoleProfessor)
	}
	if err := validateFullName(req.FullName); err != nil {
		return err
	}
	if err := validateEmail("email", req.Email); err != nil {
		return err
	}
	if req.TeamsEmail != nil && *req.TeamsEmail != "" {
		if err := validateEmail("teamsEmail", *req.TeamsEmail); err != nil {
			return err
		}
	}

	if role == domain.RoleStudent && (req.OfficeLocation != nil || req.Bio != nil) {
		return domain.NewValidationError("role", "office location and bio are professor fields")
	}
	if role == domain.RoleProfessor && (req.Program != nil || req.StudentNumber != nil) {
		return domain.NewValidationError("role", "program and student number are student fields")
	}

	return validateBio(req.Bio)
}

func validateUpdate(p *domain.Profile, upd *domain.ProfileUpdate) error {
	if upd.FullName != nil {
		if err := validateFullName(*upd.FullName); err != nil {
			return err
		}
	}
	if upd.Email != nil {
		if err := validateEmail("email", *upd.Email); err != nil {
			return err
		}
	}
	if upd.TeamsEmail != nil && *upd.TeamsEmail != "" {
		if err := validateEmail("teamsEmail", *upd.TeamsEmail); err != nil {
			return err
		}
	}

	if p.IsStudent() {
		if upd.OfficeLocation != nil {
			return domain.NewValidationError("officeLocation", "only professors have an office location")
		}
		if upd.Bio != nil {
			return domain.NewValidationError("bio", "only professors have a bio")
		}
	}
	if p.IsProfessor() {
		if upd.Program != nil {
			return domain.NewValidationError("program", "only students have a program")
		}
		if upd.StudentNumber != nil {
			return domain.NewValidationError("studentNumber", "only students have a student number")
		}
	}

	return validateBio(upd.Bio)
}

// trimmed возвращает nil для пустых строк, иначе обрезанную копию
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
