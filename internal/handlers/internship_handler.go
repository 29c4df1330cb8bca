package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/claims"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/services"
)

type InternshipHandler struct {
	internshipService *services.InternshipService
}

func NewInternshipHandler(internshipService *services.InternshipService) *InternshipHandler {
	return &InternshipHandler{internshipService: internshipService}
}

// Create handles POST /company/campaigns/:campaignId/internships.
func (h *InternshipHandler) Create(c *fiber.Ctx) error {
	userID, err := claims.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	campaignID, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return badRequest(c, "Invalid campaign id")
	}

	var req dto.CreateInternshipRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	internship, err := h.internshipService.Create(userID, campaignID, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"internship": internship,
	})
}

// Browse handles GET /student/internships for subscribed students.
func (h *InternshipHandler) Browse(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	filters := services.InternshipFilters{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Page:     page,
		Limit:    limit,
	}

	internships, total, err := h.internshipService.ListVisible(filters)
	if err != nil {
		return serviceError(c, err)
	}

	views := make([]dto.InternshipView, 0, len(internships))
	for i := range internships {
		views = append(views, dto.NewInternshipView(&internships[i]))
	}

	return c.JSON(dto.InternshipListResponse{
		Success:     true,
		Internships: views,
		Pagination:  dto.Pagination{Page: page, Limit: limit, Total: total},
	})
}

// Detail handles GET /student/internships/:internshipId.
func (h *InternshipHandler) Detail(c *fiber.Ctx) error {
	internshipID, err := uuid.Parse(c.Params("internshipId"))
	if err != nil {
		return badRequest(c, "Invalid internship id")
	}

	internship, err := h.internshipService.GetVisible(internshipID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.InternshipResponse{Success: true, Internship: dto.NewInternshipView(internship)})
}
