package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/claims"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
	"github.com/internlink/internlink-backend/internal/services"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Apply handles POST /student/internships/:internshipId/apply.
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	internshipID, err := uuid.Parse(c.Params("internshipId"))
	if err != nil {
		return badRequest(c, "Invalid internship id")
	}

	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	application, err := h.applicationService.Apply(userID, internshipID, req.CoverLetter)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ApplicationResponse{
		Success:     true,
		Message:     "Application submitted",
		Application: dto.NewApplicationView(application),
	})
}

func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	page, limit := pageParams(c)
	applications, total, err := h.applicationService.ListByStudent(userID, page, limit)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.ApplicationListResponse{
		Success:      true,
		Applications: applicationViews(applications),
		Pagination:   dto.Pagination{Page: page, Limit: limit, Total: total},
	})
}

func (h *ApplicationHandler) GetMine(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	applicationID, err := uuid.Parse(c.Params("applicationId"))
	if err != nil {
		return badRequest(c, "Invalid application id")
	}

	application, err := h.applicationService.GetForStudent(userID, applicationID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.ApplicationResponse{Success: true, Application: dto.NewApplicationView(application)})
}

// UpdateCoverLetter handles PUT /student/applications/:applicationId.
func (h *ApplicationHandler) UpdateCoverLetter(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	applicationID, err := uuid.Parse(c.Params("applicationId"))
	if err != nil {
		return badRequest(c, "Invalid application id")
	}

	var req dto.UpdateCoverLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	application, err := h.applicationService.UpdateCoverLetter(userID, applicationID, req.CoverLetter)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.ApplicationResponse{Success: true, Application: dto.NewApplicationView(application)})
}

// ListForCampaign handles GET /company/campaigns/:campaignId/applications.
func (h *ApplicationHandler) ListForCampaign(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	campaignID, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return badRequest(c, "Invalid campaign id")
	}

	var statusFilter *models.ApplicationStatus
	if raw := c.Query("status"); raw != "" {
		status := models.ApplicationStatus(raw)
		if !status.Valid() {
			return serviceError(c, services.ErrInvalidStatus)
		}
		statusFilter = &status
	}

	page, limit := pageParams(c)
	applications, total, counts, err := h.applicationService.ListForCampaign(userID, campaignID, statusFilter, page, limit)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.ApplicationListResponse{
		Success:      true,
		Applications: applicationViews(applications),
		StatusCounts: counts,
		Pagination:   dto.Pagination{Page: page, Limit: limit, Total: total},
	})
}

func (h *ApplicationHandler) GetForCompany(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	applicationID, err := uuid.Parse(c.Params("applicationId"))
	if err != nil {
		return badRequest(c, "Invalid application id")
	}

	application, err := h.applicationService.GetForCompany(userID, applicationID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.ApplicationResponse{Success: true, Application: dto.NewApplicationView(application)})
}

// UpdateStatus handles POST /company/applications/:applicationId.
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	applicationID, err := uuid.Parse(c.Params("applicationId"))
	if err != nil {
		return badRequest(c, "Invalid application id")
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	application, err := h.applicationService.UpdateStatus(userID, applicationID, req.Status)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.ApplicationResponse{
		Success:     true,
		Message:     "Application status updated",
		Application: dto.NewApplicationView(application),
	})
}

func applicationViews(applications []models.Application) []dto.ApplicationView {
	views := make([]dto.ApplicationView, 0, len(applications))
	for i := range applications {
		views = append(views, dto.NewApplicationView(&applications[i]))
	}
	return views
}
