package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Internship struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"company_id"`
	CampaignID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"campaign_id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Location    string          `gorm:"size:255" json:"location,omitempty"`
	Stipend     decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"stipend"`
	Deadline    time.Time       `gorm:"not null" json:"deadline"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Company  Company  `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
	Campaign Campaign `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE" json:"-"`
	Applications []Application `gorm:"foreignKey:InternshipID" json:"-"`
}

// VisibleAt reports whether students can see this internship. Visibility is
// the conjunction of the posting's own flag, its deadline, and the owning
// campaign's status; pausing a campaign hides its internships without
// touching IsActive. Campaign must be loaded.
func (i *Internship) VisibleAt(now time.Time) bool {
	return i.IsActive && !now.After(i.Deadline) && i.Campaign.Status == CampaignActive
}
