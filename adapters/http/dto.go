package http

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/khoahotran/portfolio-api/internal/domain/contact"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
)

// Project DTOs

type ProjectRequest struct {
	Title       string  `json:"title" form:"title" binding:"required,max=200"`
	Description string  `json:"description" form:"description" binding:"required"`
	// Image shares its form name with the uploaded file; see formValue.
	Image       string  `json:"image" form:"-"`
	Link        *string `json:"link" form:"link"`
	Order       int     `json:"order" form:"order"`
}

func newProjectRequest(p *project.Project) ProjectRequest {
	return ProjectRequest{
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Link:        p.Link,
		Order:       p.Order,
	}
}

// PublicProjectDTO is what visitors see; it never carries the sort order.
type PublicProjectDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Link        *string   `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
}

type AdminProjectDTO struct {
	PublicProjectDTO
	Order int `json:"order"`
}

func ToPublicProjectDTO(p *project.Project) PublicProjectDTO {
	return PublicProjectDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Link:        p.Link,
		CreatedAt:   p.CreatedAt,
	}
}

func ToAdminProjectDTO(p *project.Project) AdminProjectDTO {
	return AdminProjectDTO{PublicProjectDTO: ToPublicProjectDTO(p), Order: p.Order}
}

// Skill DTOs

type SkillRequest struct {
	Name  string `json:"name" form:"name" binding:"required,max=100"`
	Level string `json:"level" form:"level" binding:"required,max=50"`
	Order int    `json:"order" form:"order"`
}

type SkillDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

type AdminSkillDTO struct {
	SkillDTO
	Order int `json:"order"`
}

func ToSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{ID: s.ID, Name: s.Name, Level: s.Level}
}

func ToAdminSkillDTO(s *skill.Skill) AdminSkillDTO {
	return AdminSkillDTO{SkillDTO: ToSkillDTO(s), Order: s.Order}
}

// Education DTOs

type EducationRequest struct {
	Institution     string       `json:"institution" form:"institution" binding:"required"`
	DegreeTitle     string       `json:"degree_title" form:"degree_title" binding:"required"`
	FieldOfStudy    *string      `json:"field_of_study" form:"field_of_study"`
	StartYear       int          `json:"start_year" form:"start_year" binding:"required"`
	EndYear         *int         `json:"end_year" form:"end_year"`
	MarksPercentage *json.Number `json:"marks_percentage" form:"marks_percentage"`
	Grade           *string      `json:"grade" form:"grade"`
	Description     *string      `json:"description" form:"description"`
	Order           int          `json:"order" form:"order"`
}

func newEducationRequest(e *education.Education) EducationRequest {
	req := EducationRequest{
		Institution:  e.Institution,
		DegreeTitle:  e.DegreeTitle,
		FieldOfStudy: e.FieldOfStudy,
		StartYear:    e.StartYear,
		EndYear:      e.EndYear,
		Grade:        e.Grade,
		Description:  e.Description,
		Order:        e.Order,
	}
	if e.MarksPercentage != nil {
		n := json.Number(formatDecimal(*e.MarksPercentage))
		req.MarksPercentage = &n
	}
	return req
}

// EducationDTO renders marks_percentage as a fixed two-decimal string.
type EducationDTO struct {
	ID              int64     `json:"id"`
	Institution     string    `json:"institution"`
	DegreeTitle     string    `json:"degree_title"`
	FieldOfStudy    *string   `json:"field_of_study"`
	StartYear       int       `json:"start_year"`
	EndYear         *int      `json:"end_year"`
	MarksPercentage *string   `json:"marks_percentage"`
	Grade           *string   `json:"grade"`
	Description     *string   `json:"description"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToEducationDTO(e *education.Education) EducationDTO {
	dto := EducationDTO{
		ID:           e.ID,
		Institution:  e.Institution,
		DegreeTitle:  e.DegreeTitle,
		FieldOfStudy: e.FieldOfStudy,
		StartYear:    e.StartYear,
		EndYear:      e.EndYear,
		Grade:        e.Grade,
		Description:  e.Description,
		Order:        e.Order,
		CreatedAt:    e.CreatedAt,
	}
	if e.MarksPercentage != nil {
		s := formatDecimal(*e.MarksPercentage)
		dto.MarksPercentage = &s
	}
	return dto
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Experience DTOs

type ExperienceRequest struct {
	JobTitle    string  `json:"job_title" form:"job_title" binding:"required,max=200"`
	Company     string  `json:"company" form:"company" binding:"required,max=200"`
	Location    *string `json:"location" form:"location"`
	StartDate   string  `json:"start_date" form:"start_date" binding:"required"`
	EndDate     *string `json:"end_date" form:"end_date"`
	IsCurrent   bool    `json:"is_current" form:"is_current"`
	Description *string `json:"description" form:"description"`
	Order       int     `json:"order" form:"order" binding:"min=0"`
}

func newExperienceRequest(e *experience.Experience) ExperienceRequest {
	req := ExperienceRequest{
		JobTitle:    e.JobTitle,
		Company:     e.Company,
		Location:    e.Location,
		StartDate:   e.StartDate.Format(experience.DateLayout),
		IsCurrent:   e.IsCurrent,
		Description: e.Description,
		Order:       e.Order,
	}
	if e.EndDate != nil {
		end := e.EndDate.Format(experience.DateLayout)
		req.EndDate = &end
	}
	return req
}

type ExperienceDTO struct {
	ID          int64     `json:"id"`
	JobTitle    string    `json:"job_title"`
	Company     string    `json:"company"`
	Location    *string   `json:"location"`
	StartDate   string    `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	IsCurrent   bool      `json:"is_current"`
	Description *string   `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	dto := ExperienceDTO{
		ID:          e.ID,
		JobTitle:    e.JobTitle,
		Company:     e.Company,
		Location:    e.Location,
		StartDate:   e.StartDate.Format(experience.DateLayout),
		IsCurrent:   e.IsCurrent,
		Description: e.Description,
		Order:       e.Order,
		CreatedAt:   e.CreatedAt,
	}
	if e.EndDate != nil {
		end := e.EndDate.Format(experience.DateLayout)
		dto.EndDate = &end
	}
	return dto
}

// Contact DTOs

// ContactRequest only accepts the visitor-supplied fields.
type ContactRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required"`
	Message string `json:"message" form:"message" binding:"required"`
}

type ContactMessageDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func ToContactMessageDTO(m *contact.Message) ContactMessageDTO {
	return ContactMessageDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// Profile DTOs

type ProfileRequest struct {
	ProfileImage *string `json:"profile_image" form:"-"`
}

type ProfileDTO struct {
	ID           int64     `json:"id"`
	ProfileImage *string   `json:"profile_image"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{ID: p.ID, ProfileImage: p.ProfileImage, UpdatedAt: p.UpdatedAt}
}

// Auth DTOs

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" form:"refresh" binding:"required"`
}

type RegisterRequest struct {
	Username  string `json:"username" form:"username" binding:"required,max=150"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password" binding:"required"`
	Password2 string `json:"password2" form:"password2" binding:"required"`
	FirstName string `json:"first_name" form:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" form:"last_name" binding:"max=150"`
}

// RegisteredUserDTO echoes the registration without any password field.
type RegisteredUserDTO struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CurrentUserDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
}

func ToCurrentUserDTO(u *user.User) CurrentUserDTO {
	return CurrentUserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
	}
}
