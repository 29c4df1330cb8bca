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
	ErrPlanNotFound          = errors.New("plan not found")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrAlreadySubscribed     = errors.New("already subscribed to this plan")
	ErrSubscriptionNotActive = errors.New("subscription is not active")
)

type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

func (s *SubscriptionService) ListPlans() ([]models.StudentPlan, error) {
	var plans []models.StudentPlan
	err := s.db.Where("is_active = ?", true).Order("price ASC").Find(&plans).Error
	return plans, err
}

// Subscribe creates the subscription and its payment record as one unit.
// The payment completes immediately when a transaction id is supplied,
// otherwise it stays pending.
func (s *SubscriptionService) Subscribe(userID uuid.UUID, req *dto.SubscribeRequest) (*models.StudentSubscription, error) {
	if req.PaymentMethod == "" {
		return nil, validation("payment method is required")
	}

	var plan models.StudentPlan
	if err := s.db.Where("id = ? AND is_active = ?", req.PlanID, true).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	now := time.Now()
	sub := models.StudentSubscription{
		ID:       uuid.New(),
		UserID:   userID,
		PlanID:   plan.ID,
		Status:   models.SubscriptionActive,
		StartsAt: now,
		EndsAt:   plan.BillingCycle.Advance(now),
	}
	payment := models.SubscriptionPayment{
		ID:             uuid.New(),
		SubscriptionID: sub.ID,
		Amount:         plan.Price,
		PaymentMethod:  req.PaymentMethod,
		TransactionID:  req.TransactionID,
		Status:         paymentStatusFor(req.TransactionID),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	sub.Plan = plan
	sub.Payment = &payment
	return &sub, nil
}

func (s *SubscriptionService) List(userID uuid.UUID) ([]models.StudentSubscription, error) {
	var subs []models.StudentSubscription
	err := s.db.Preload("Plan").Preload("Payment").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (s *SubscriptionService) Cancel(userID, subscriptionID uuid.UUID) (*models.StudentSubscription, error) {
	var sub models.StudentSubscription
	if err := s.db.Preload("Plan").
		Where("id = ? AND user_id = ?", subscriptionID, userID).
		First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	if sub.Status != models.SubscriptionActive {
		return nil, ErrSubscriptionNotActive
	}

	if err := s.db.Model(&sub).Update("status", models.SubscriptionCanceled).Error; err != nil {
		return nil, fmt.Errorf("failed to cancel subscription: %w", err)
	}
	sub.Status = models.SubscriptionCanceled
	return &sub, nil
}

// latestActiveSubscription picks the authoritative subscription for access
// and quota checks: status ACTIVE, not yet expired, most recently created
// when several qualify. Returns gorm.ErrRecordNotFound when none do.
func latestActiveSubscription(db *gorm.DB, userID uuid.UUID, now time.Time) (*models.StudentSubscription, error) {
	var sub models.StudentSubscription
	err := db.Preload("Plan").
		Where("user_id = ? AND status = ? AND ends_at > ?", userID, models.SubscriptionActive, now).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// paymentStatusFor derives the initial payment status: a supplied
// transaction id means the charge already settled upstream.
func paymentStatusFor(transactionID *string) models.PaymentStatus {
	if transactionID != nil && *transactionID != "" {
		return models.PaymentCompleted
	}
	return models.PaymentPending
}
