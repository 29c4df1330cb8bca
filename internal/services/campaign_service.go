package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrStatusNotSettable = errors.New("campaign status must be ACTIVE, PAUSED or COMPLETED")
)

type CampaignService struct {
	db *gorm.DB
}

func NewCampaignService(db *gorm.DB) *CampaignService {
	return &CampaignService{db: db}
}

// Launch creates the campaign and its payment record in one transaction;
// partial creation must never be observable.
func (s *CampaignService) Launch(userID uuid.UUID, req *dto.LaunchCampaignRequest) (*models.Campaign, error) {
	if req.Title == "" {
		return nil, validation("title is required")
	}
	if !req.Budget.GreaterThan(decimal.Zero) {
		return nil, validation("budget must be greater than zero")
	}
	if req.MaxInternships < 1 {
		return nil, validation("max internships must be at least 1")
	}
	if req.PaymentMethod == "" {
		return nil, validation("payment method is required")
	}
	now := time.Now()
	if !req.EndDate.After(now) {
		return nil, validation("end date must be in the future")
	}

	company, err := companyForUser(s.db, userID)
	if err != nil {
		return nil, err
	}

	startDate := now
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	campaign := models.Campaign{
		ID:             uuid.New(),
		CompanyID:      company.ID,
		Title:          req.Title,
		Description:    req.Description,
		Budget:         req.Budget,
		Status:         models.CampaignActive,
		StartDate:      startDate,
		EndDate:        req.EndDate,
		MaxInternships: req.MaxInternships,
	}
	payment := models.CampaignPayment{
		ID:            uuid.New(),
		CampaignID:    campaign.ID,
		Amount:        req.Budget,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Status:        paymentStatusFor(req.TransactionID),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&campaign).Error; err != nil {
			return err
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch campaign: %w", err)
	}

	campaign.Payment = &payment
	return &campaign, nil
}

func (s *CampaignService) List(userID uuid.UUID) ([]models.Campaign, error) {
	company, err := companyForUser(s.db, userID)
	if err != nil {
		return nil, err
	}

	var campaigns []models.Campaign
	err = s.db.Preload("Payment").
		Where("company_id = ?", company.ID).
		Order("created_at DESC").
		Find(&campaigns).Error
	return campaigns, err
}

func (s *CampaignService) Get(userID, campaignID uuid.UUID) (*models.Campaign, error) {
	company, err := companyForUser(s.db, userID)
	if err != nil {
		return nil, err
	}

	var campaign models.Campaign
	err = s.db.Preload("Payment").
		Where("id = ? AND company_id = ?", campaignID, company.ID).
		First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}
	return &campaign, nil
}

// Update applies the supplied fields to a campaign the company owns. EXPIRED
// is derived by the scheduler and rejected here.
func (s *CampaignService) Update(userID, campaignID uuid.UUID, req *dto.UpdateCampaignRequest) (*models.Campaign, error) {
	campaign, err := s.Get(userID, campaignID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, validation("title cannot be empty")
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if req.Status != nil {
		if !req.Status.SettableByCompany() {
			return nil, ErrStatusNotSettable
		}
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return campaign, nil
	}

	if err := s.db.Model(campaign).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}
