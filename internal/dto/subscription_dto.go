package dto

import (
	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/models"
)

type SubscribeRequest struct {
	PlanID        uuid.UUID `json:"plan_id"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID *string   `json:"transaction_id,omitempty"`
}

type PlanListResponse struct {
	Success bool                 `json:"success"`
	Plans   []models.StudentPlan `json:"plans"`
}

type SubscriptionResponse struct {
	Success      bool                       `json:"success"`
	Message      string                     `json:"message,omitempty"`
	Subscription models.StudentSubscription `json:"subscription"`
}

type SubscriptionListResponse struct {
	Success       bool                         `json:"success"`
	Subscriptions []models.StudentSubscription `json:"subscriptions"`
}
