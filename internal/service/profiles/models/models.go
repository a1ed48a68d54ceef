package models

import (
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// Request модели

// CreateProfileRequest завершение регистрации: создание профиля
type CreateProfileRequest struct {
	Role           string  `json:"role"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Department     *string `json:"department,omitempty"`
	Program        *string `json:"program,omitempty"`
	StudentNumber  *string `json:"studentNumber,omitempty"`
	TeamsEmail     *string `json:"teamsEmail,omitempty"`
	OfficeLocation *string `json:"officeLocation,omitempty"`
	Bio            *string `json:"bio,omitempty"`
}

// UpdateProfileRequest частичное обновление профиля; nil - поле не меняется
type UpdateProfileRequest struct {
	FullName       *string `json:"fullName,omitempty"`
	Email          *string `json:"email,omitempty"`
	Department     *string `json:"department,omitempty"`
	Program        *string `json:"program,omitempty"`
	StudentNumber  *string `json:"studentNumber,omitempty"`
	TeamsEmail     *string `json:"teamsEmail,omitempty"`
	OfficeLocation *string `json:"officeLocation,omitempty"`
	Bio            *string `json:"bio,omitempty"`
}

// ToDomain конвертирует запрос в domain.ProfileUpdate
func (r *UpdateProfileRequest) ToDomain() *domain.ProfileUpdate {
	return &domain.ProfileUpdate{
		FullName:       r.FullName,
		Email:          r.Email,
		Department:     r.Department,
		Program:        r.Program,
		StudentNumber:  r.StudentNumber,
		TeamsEmail:     r.TeamsEmail,
		OfficeLocation: r.OfficeLocation,
		Bio:            r.Bio,
	}
}

// Response модели

// ProfileResponse профиль пользователя
type ProfileResponse struct {
	ID            string              `json:"id"`
	Role          string              `json:"role"`
	FullName      string              `json:"fullName"`
	Email         string              `json:"email"`
	Department    *string             `json:"department,omitempty"`
	Program       *string             `json:"program,omitempty"`
	StudentNumber *string             `json:"studentNumber,omitempty"`
	TeamsEmail    *string             `json:"teamsEmail,omitempty"`
	Professor     *ProfessorExtension `json:"professor,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ProfessorExtension поля расширения преподавателя
type ProfessorExtension struct {
	OfficeLocation *string   `json:"officeLocation,omitempty"`
	Department     *string   `json:"department,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ProfessorResponse карточка преподавателя в каталоге
type ProfessorResponse struct {
	ID             string  `json:"id"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	TeamsEmail     *string `json:"teamsEmail,omitempty"`
	Department     *string `json:"department,omitempty"`
	OfficeLocation *string `json:"officeLocation,omitempty"`
	Bio            *string `json:"bio,omitempty"`
}

// ProfessorListResponse каталог преподавателей
type ProfessorListResponse struct {
	Professors []ProfessorResponse `json:"professors"`
}

// Методы конвертации

// FromDomainProfile конвертирует профиль (и расширение преподавателя, если есть) в DTO
func FromDomainProfile(p *domain.Profile, ext *domain.Professor) *ProfileResponse {
	if p == nil {
		return nil
	}

	resp := &ProfileResponse{
		ID:            p.ID.String(),
		Role:          string(p.Role),
		FullName:      p.FullName,
		Email:         p.Email,
		Department:    p.Department,
		Program:       p.Program,
		StudentNumber: p.StudentNumber,
		TeamsEmail:    p.TeamsEmail,
		CreatedAt:     p.CreatedAt,
	}
	if ext != nil {
		resp.Professor = &ProfessorExtension{
			OfficeLocation: ext.OfficeLocation,
			Department:     ext.Department,
			Bio:            ext.Bio,
			UpdatedAt:      ext.UpdatedAt,
		}
	}

	return resp
}

// FromDomainProfessor конвертирует преподавателя с профилем в DTO.
// Кафедра берется из расширения, а при его отсутствии из профиля.
func FromDomainProfessor(d *domain.ProfessorDetail) *ProfessorResponse {
	if d == nil {
		return nil
	}

	department := d.Professor.Department
	if department == nil {
		department = d.Profile.Department
	}

	return &ProfessorResponse{
		ID:             d.Professor.ID.String(),
		FullName:       d.Profile.FullName,
		Email:          d.Profile.Email,
		TeamsEmail:     d.Profile.TeamsEmail,
		Department:     department,
		OfficeLocation: d.OfficeLocation,
		Bio:            d.Bio,
	}
}

// FromDomainProfessorList конвертирует список преподавателей в DTO
func FromDomainProfessorList(list []*domain.ProfessorDetail) *ProfessorListResponse {
	resp := &ProfessorListResponse{
		Professors: make([]ProfessorResponse, 0, len(list)),
	}
	for _, d := range list {
		if p := FromDomainProfessor(d); p != nil {
			resp.Professors = append(resp.Professors, *p)
		}
	}
	return resp
}
