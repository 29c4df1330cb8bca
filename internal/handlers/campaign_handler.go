package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/claims"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/services"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
}

func NewCampaignHandler(campaignService *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

func (h *CampaignHandler) Launch(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.LaunchCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	campaign, err := h.campaignService.Launch(userID, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CampaignResponse{Success: true, Campaign: *campaign})
}

func (h *CampaignHandler) List(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	campaigns, err := h.campaignService.List(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.CampaignListResponse{Success: true, Campaigns: campaigns})
}

func (h *CampaignHandler) Get(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	campaignID, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return badRequest(c, "Invalid campaign id")
	}

	campaign, err := h.campaignService.Get(userID, campaignID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.CampaignResponse{Success: true, Campaign: *campaign})
}

func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	campaignID, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return badRequest(c, "Invalid campaign id")
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	campaign, err := h.campaignService.Update(userID, campaignID, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.CampaignResponse{Success: true, Campaign: *campaign})
}
