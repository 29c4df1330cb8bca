package dto

import (
	"time"

	"github.com/internlink/internlink-backend/internal/models"
	"github.com/shopspring/decimal"
)

type LaunchCampaignRequest struct {
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Budget         decimal.Decimal `json:"budget"`
	StartDate      *time.Time      `json:"start_date,omitempty"`
	EndDate        time.Time       `json:"end_date"`
	MaxInternships int             `json:"max_internships"`
	PaymentMethod  string          `json:"payment_method"`
	TransactionID  *string         `json:"transaction_id,omitempty"`
}

// UpdateCampaignRequest carries partial updates; nil fields are untouched.
type UpdateCampaignRequest struct {
	Title       *string                `json:"title,omitempty"`
	Description *string                `json:"description,omitempty"`
	EndDate     *time.Time             `json:"end_date,omitempty"`
	Status      *models.CampaignStatus `json:"status,omitempty"`
}

type CampaignResponse struct {
	Success  bool            `json:"success"`
	Campaign models.Campaign `json:"campaign"`
}

type CampaignListResponse struct {
	Success   bool              `json:"success"`
	Campaigns []models.Campaign `json:"campaigns"`
}
