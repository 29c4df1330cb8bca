package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/models"
)

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type UpdateCoverLetterRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

// ApplicationView flattens an application with its internship for listings.
type ApplicationView struct {
	ID              uuid.UUID                `json:"id"`
	InternshipID    uuid.UUID                `json:"internship_id"`
	InternshipTitle string                   `json:"internship_title"`
	ApplicantID     uuid.UUID                `json:"applicant_id"`
	ApplicantName   string                   `json:"applicant_name,omitempty"`
	ApplicantEmail  string                   `json:"applicant_email,omitempty"`
	CoverLetter     string                   `json:"cover_letter"`
	Status          models.ApplicationStatus `json:"status"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

func NewApplicationView(a *models.Application) ApplicationView {
	return ApplicationView{
		ID:              a.ID,
		InternshipID:    a.InternshipID,
		InternshipTitle: a.Internship.Title,
		ApplicantID:     a.UserID,
		ApplicantName:   a.User.Name,
		ApplicantEmail:  a.User.Email,
		CoverLetter:     a.CoverLetter,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

type ApplicationResponse struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message,omitempty"`
	Application ApplicationView `json:"application"`
}

type ApplicationListResponse struct {
	Success      bool                               `json:"success"`
	Applications []ApplicationView                  `json:"applications"`
	StatusCounts map[models.ApplicationStatus]int64 `json:"status_counts,omitempty"`
	Pagination   Pagination                         `json:"pagination"`
}
