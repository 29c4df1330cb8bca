package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-backend/internal/claims"
	"github.com/internlink/internlink-backend/internal/config"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
)

// Auth tokens travel in role-specific httpOnly cookies.
const (
	CookieStudent = "studentToken"
	CookieCompany = "companyToken"
)

// Protected verifies the signed token carried in the named cookie and stores
// the decoded claims in context. An unset signing secret is a deployment
// fault and is reported as a server error on every request.
func Protected(cfg *config.Config, cookie string) fiber.Handler {
	if cfg.JWTSecret == "" {
		return func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Success: false,
				Message: "Server misconfigured: token signing secret is not set",
			})
		}
	}
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		TokenLookup: "cookie:" + cookie,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// RequireRole rejects requests whose decoded role claim does not match the
// guarded surface.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims.Role(c) != role {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false,
				Message: "Forbidden: " + string(role) + " account required",
			})
		}
		return c.Next()
	}
}

// SubscribedStudent gates the internship browse/apply surface on the
// subscription flag baked into the student token at login time.
func SubscribedStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !claims.HasActiveSubscription(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false,
				Message: "An active subscription is required to access internships",
			})
		}
		return c.Next()
	}
}
