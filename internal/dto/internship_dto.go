package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/models"
	"github.com/shopspring/decimal"
)

type CreateInternshipRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	Stipend     decimal.Decimal `json:"stipend"`
	Deadline    time.Time       `json:"deadline"`
}

// InternshipView is the student-facing shape of a visible posting.
type InternshipView struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	Stipend     decimal.Decimal `json:"stipend"`
	Deadline    time.Time       `json:"deadline"`
	CompanyName string          `json:"company_name"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewInternshipView(i *models.Internship) InternshipView {
	return InternshipView{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Location:    i.Location,
		Stipend:     i.Stipend,
		Deadline:    i.Deadline,
		CompanyName: i.Company.Name,
		CreatedAt:   i.CreatedAt,
	}
}

type InternshipResponse struct {
	Success    bool           `json:"success"`
	Internship InternshipView `json:"internship"`
}

type InternshipListResponse struct {
	Success     bool             `json:"success"`
	Internships []InternshipView `json:"internships"`
	Pagination  Pagination       `json:"pagination"`
}
