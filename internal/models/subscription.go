package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionCanceled SubscriptionStatus = "CANCELED"
	SubscriptionExpired  SubscriptionStatus = "EXPIRED"
)

type BillingCycle string

const (
	BillingMonthly BillingCycle = "MONTHLY"
	BillingYearly  BillingCycle = "YEARLY"
)

// Advance returns the end of one billing period starting at t.
func (b BillingCycle) Advance(t time.Time) time.Time {
	if b == BillingYearly {
		return t.AddDate(1, 0, 0)
	}
	return t.AddDate(0, 1, 0)
}

// StudentPlan defines price, billing cycle, and an optional monthly
// application quota. A nil MaxApplicationsPerMonth means unlimited.
type StudentPlan struct {
	ID                      uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name                    string          `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description             string          `gorm:"type:text" json:"description,omitempty"`
	Price                   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	BillingCycle            BillingCycle    `gorm:"size:20;not null;default:'MONTHLY'" json:"billing_cycle"`
	MaxApplicationsPerMonth *int            `json:"max_applications_per_month,omitempty"`
	IsActive                bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// StudentSubscription is a student's plan assignment. Several rows per user
// are tolerated; the most recently created active one is authoritative.
type StudentSubscription struct {
	ID        uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_user_plan" json:"user_id"`
	PlanID    uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_user_plan" json:"plan_id"`
	Status    SubscriptionStatus `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	StartsAt  time.Time          `gorm:"not null" json:"starts_at"`
	EndsAt    time.Time          `gorm:"not null" json:"ends_at"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	User    User                 `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Plan    StudentPlan          `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	Payment *SubscriptionPayment `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE" json:"payment,omitempty"`
}

// ActiveAt reports whether the subscription grants access at now. Active
// state is computed, never stored redundantly.
func (s *StudentSubscription) ActiveAt(now time.Time) bool {
	return s.Status == SubscriptionActive && s.EndsAt.After(now)
}
