package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/services"
)

// serviceError maps service-layer errors onto the response envelope.
// Unrecognized errors are logged and reported generically.
func serviceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	var ve *services.ValidationError
	var qe *services.QuotaExceededError
	switch {
	case errors.As(err, &ve),
		errors.Is(err, services.ErrCoverLetterLength),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrEditLocked),
		errors.Is(err, services.ErrInternshipClosed),
		errors.Is(err, services.ErrCampaignInactive),
		errors.Is(err, services.ErrDeadlinePassed),
		errors.Is(err, services.ErrStatusNotSettable),
		errors.Is(err, services.ErrSubscriptionNotActive):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
		message = err.Error()
	case errors.As(err, &qe),
		errors.Is(err, services.ErrSubscriptionRequired),
		errors.Is(err, services.ErrNotOwner):
		status = fiber.StatusForbidden
		message = err.Error()
	case errors.Is(err, services.ErrCampaignNotFound),
		errors.Is(err, services.ErrInternshipNotFound),
		errors.Is(err, services.ErrApplicationNotFound),
		errors.Is(err, services.ErrPlanNotFound),
		errors.Is(err, services.ErrSubscriptionNotFound),
		errors.Is(err, services.ErrCompanyNotFound):
		status = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrDuplicateApplication),
		errors.Is(err, services.ErrAlreadySubscribed),
		errors.Is(err, services.ErrCampaignFull):
		status = fiber.StatusConflict
		message = err.Error()
	default:
		slog.Error("unexpected service error", "method", c.Method(), "path", c.Path(), "error", err.Error())
	}

	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Message: message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: message})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Success: false, Message: "Unauthorized"})
}

// pageParams reads and clamps pagination query params.
func pageParams(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
