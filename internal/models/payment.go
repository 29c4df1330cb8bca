package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// CampaignPayment is the 1:1 payment record created together with its
// campaign. The campaign counts as paid only when status is COMPLETED.
type CampaignPayment struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CampaignID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"campaign_id"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"size:50;not null" json:"payment_method"`
	TransactionID *string         `gorm:"size:255" json:"transaction_id,omitempty"`
	Status        PaymentStatus   `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SubscriptionPayment mirrors CampaignPayment for student subscriptions.
type SubscriptionPayment struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SubscriptionID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"subscription_id"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentMethod  string          `gorm:"size:50;not null" json:"payment_method"`
	TransactionID  *string         `gorm:"size:255" json:"transaction_id,omitempty"`
	Status         PaymentStatus   `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
