package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/claims"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/services"
)

type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// ListPlans is public so prospective students can see pricing before signup.
func (h *SubscriptionHandler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.subscriptionService.ListPlans()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.PlanListResponse{Success: true, Plans: plans})
}

func (h *SubscriptionHandler) Subscribe(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	sub, err := h.subscriptionService.Subscribe(userID, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SubscriptionResponse{
		Success:      true,
		Message:      "Subscription created",
		Subscription: *sub,
	})
}

func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	subs, err := h.subscriptionService.List(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.SubscriptionListResponse{Success: true, Subscriptions: subs})
}

func (h *SubscriptionHandler) Cancel(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	subscriptionID, err := uuid.Parse(c.Params("subscriptionId"))
	if err != nil {
		return badRequest(c, "Invalid subscription id")
	}

	sub, err := h.subscriptionService.Cancel(userID, subscriptionID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.SubscriptionResponse{
		Success:      true,
		Message:      "Subscription canceled",
		Subscription: *sub,
	})
}
