package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInternshipNotFound = errors.New("internship not found")
	ErrCampaignInactive   = errors.New("campaign is not active")
	ErrCampaignFull       = errors.New("campaign has reached its internship limit")
)

// InternshipFilters narrows the student-facing listing.
type InternshipFilters struct {
	Search   string
	Location string
	Page     int
	Limit    int
}

type InternshipService struct {
	db *gorm.DB
}

func NewInternshipService(db *gorm.DB) *InternshipService {
	return &InternshipService{db: db}
}

// Create posts an internship under an owned campaign. The campaign must be
// ACTIVE, not past its end date, and below its internship cap.
func (s *InternshipService) Create(userID, campaignID uuid.UUID, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	if req.Title == "" {
		return nil, validation("title is required")
	}
	now := time.Now()
	if !req.Deadline.After(now) {
		return nil, validation("deadline must be in the future")
	}

	company, err := companyForUser(s.db, userID)
	if err != nil {
		return nil, err
	}

	var campaign models.Campaign
	if err := s.db.Where("id = ? AND company_id = ?", campaignID, company.ID).First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}

	var current int64
	if err := s.db.Model(&models.Internship{}).Where("campaign_id = ?", campaignID).Count(&current).Error; err != nil {
		return nil, fmt.Errorf("failed to count internships: %w", err)
	}

	if !campaign.CanAcceptInternships(current, now) {
		if current >= int64(campaign.MaxInternships) {
			return nil, ErrCampaignFull
		}
		return nil, ErrCampaignInactive
	}

	internship := models.Internship{
		ID:          uuid.New(),
		CompanyID:   company.ID,
		CampaignID:  campaignID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Stipend:     req.Stipend,
		Deadline:    req.Deadline,
		IsActive:    true,
	}
	if err := s.db.Create(&internship).Error; err != nil {
		return nil, fmt.Errorf("failed to create internship: %w", err)
	}
	return &internship, nil
}

// ListVisible returns internships students may see: posting active, deadline
// not passed, owning campaign ACTIVE. Pausing or completing a campaign hides
// its internships without touching their own flags.
func (s *InternshipService) ListVisible(filters InternshipFilters) ([]models.Internship, int64, error) {
	now := time.Now()

	query := func() *gorm.DB {
		q := s.db.Model(&models.Internship{}).
			Joins("JOIN campaigns ON campaigns.id = internships.campaign_id").
			Where("internships.is_active = ? AND internships.deadline >= ? AND campaigns.status = ?",
				true, now, models.CampaignActive)
		if filters.Search != "" {
			like := "%" + filters.Search + "%"
			q = q.Where("internships.title ILIKE ? OR internships.description ILIKE ?", like, like)
		}
		if filters.Location != "" {
			q = q.Where("internships.location ILIKE ?", "%"+filters.Location+"%")
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count internships: %w", err)
	}

	var internships []models.Internship
	err := query().
		Preload("Company").
		Order("internships.created_at DESC").
		Limit(filters.Limit).
		Offset((filters.Page - 1) * filters.Limit).
		Find(&internships).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list internships: %w", err)
	}
	return internships, total, nil
}

// GetVisible returns one internship if a student may see it; hidden postings
// are indistinguishable from missing ones.
func (s *InternshipService) GetVisible(internshipID uuid.UUID) (*models.Internship, error) {
	var internship models.Internship
	err := s.db.Preload("Campaign").Preload("Company").
		Where("id = ?", internshipID).
		First(&internship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("failed to load internship: %w", err)
	}
	if !internship.VisibleAt(time.Now()) {
		return nil, ErrInternshipNotFound
	}
	return &internship, nil
}
