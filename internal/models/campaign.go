package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "ACTIVE"
	CampaignPaused    CampaignStatus = "PAUSED"
	CampaignCompleted CampaignStatus = "COMPLETED"
	CampaignExpired   CampaignStatus = "EXPIRED"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignActive, CampaignPaused, CampaignCompleted, CampaignExpired:
		return true
	}
	return false
}

// SettableByCompany reports whether a company may set this status through the
// edit endpoint. EXPIRED is derived by the scheduler and never set directly.
func (s CampaignStatus) SettableByCompany() bool {
	return s.Valid() && s != CampaignExpired
}

// Campaign is a company's funded container of internship postings, bounded by
// an end date and an internship-count cap.
type Campaign struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"company_id"`
	Title          string          `gorm:"size:255;not null" json:"title"`
	Description    string          `gorm:"type:text" json:"description,omitempty"`
	Budget         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"budget"`
	Status         CampaignStatus  `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	StartDate      time.Time       `gorm:"not null" json:"start_date"`
	EndDate        time.Time       `gorm:"not null" json:"end_date"`
	MaxInternships int             `gorm:"not null" json:"max_internships"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Company Company          `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
	Payment *CampaignPayment `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE" json:"payment,omitempty"`
	Internships []Internship `gorm:"foreignKey:CampaignID" json:"-"`
}

// CanAcceptInternships reports whether a new internship may be created under
// this campaign: status ACTIVE, end date not passed, cap not reached.
func (c *Campaign) CanAcceptInternships(current int64, now time.Time) bool {
	if c.Status != CampaignActive {
		return false
	}
	if now.After(c.EndDate) {
		return false
	}
	return current < int64(c.MaxInternships)
}

// Paid reports whether the campaign's payment has completed.
func (c *Campaign) Paid() bool {
	return c.Payment != nil && c.Payment.Status == PaymentCompleted
}
