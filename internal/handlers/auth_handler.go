package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-backend/internal/config"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/middleware"
	"github.com/internlink/internlink-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func (h *AuthHandler) StudentSignup(c *fiber.Ctx) error {
	var req dto.StudentSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.StudentSignup(&req)
	if err != nil {
		return serviceError(c, err)
	}

	h.setAuthCookie(c, middleware.CookieStudent, resp.Token)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) StudentLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.StudentLogin(&req)
	if err != nil {
		return serviceError(c, err)
	}

	h.setAuthCookie(c, middleware.CookieStudent, resp.Token)
	return c.JSON(resp)
}

func (h *AuthHandler) StudentLogout(c *fiber.Ctx) error {
	h.clearAuthCookie(c, middleware.CookieStudent)
	return c.JSON(dto.MessageResponse{Success: true, Message: "Logged out successfully"})
}

func (h *AuthHandler) CompanySignup(c *fiber.Ctx) error {
	var req dto.CompanySignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.CompanySignup(&req)
	if err != nil {
		return serviceError(c, err)
	}

	h.setAuthCookie(c, middleware.CookieCompany, resp.Token)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) CompanyLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.CompanyLogin(&req)
	if err != nil {
		return serviceError(c, err)
	}

	h.setAuthCookie(c, middleware.CookieCompany, resp.Token)
	return c.JSON(resp)
}

func (h *AuthHandler) CompanyLogout(c *fiber.Ctx) error {
	h.clearAuthCookie(c, middleware.CookieCompany)
	return c.JSON(dto.MessageResponse{Success: true, Message: "Logged out successfully"})
}

func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, name, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.TokenExpiry),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) clearAuthCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
