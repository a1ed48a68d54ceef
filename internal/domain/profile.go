package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role of a user, read from the Profile record (never from the identity token)
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
)

// IsValid reports whether the role is known
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleProfessor
}

// Profile is the identity record created at signup
type Profile struct {
	ID            uuid.UUID
	Role          Role
	FullName      string
	Email         string
	Department    *string
	Program       *string // students only
	StudentNumber *string // students only
	TeamsEmail    *string
	CreatedAt     time.Time
}

// IsProfessor returns true for professor profiles
func (p *Profile) IsProfessor() bool {
	return p.Role == RoleProfessor
}

// IsStudent returns true for student profiles
func (p *Profile) IsStudent() bool {
	return p.Role == RoleStudent
}

// Professor is the professor extension of a Profile (shared id)
type Professor struct {
	ID             uuid.UUID
	OfficeLocation *string
	Department     *string
	Bio            *string
	UpdatedAt      time.Time
}

// ProfessorDetail is a professor together with its profile
type ProfessorDetail struct {
	Professor
	Profile Profile
}

// ProfileUpdate carries the mutable contact/display fields; nil means "unchanged"
type ProfileUpdate struct {
	FullName       *string
	Email          *string
	Department     *string // for professors mirrored into the extension row
	Program        *string
	StudentNumber  *string
	TeamsEmail     *string
	OfficeLocation *string // professor only
	Bio            *string // professor only
}

// HasProfessorFields reports whether the update touches the professor extension
func (u *ProfileUpdate) HasProfessorFields() bool {
	return u.OfficeLocation != nil || u.Bio != nil || u.Department != nil
}
