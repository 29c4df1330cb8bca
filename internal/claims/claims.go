// Package claims extracts decoded token claims from the Fiber request
// context. The role-specific flags are baked into the token at signup/login
// and are not re-checked against the database on every request; they stay
// stale until the next login.
package claims

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/models"
)

func mapClaims(c *fiber.Ctx) jwt.MapClaims {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

// UserID extracts the user UUID from the sub claim.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims := mapClaims(c)
	if claims == nil {
		return uuid.Nil, errors.New("invalid token in context")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}

func Email(c *fiber.Ctx) string {
	if claims := mapClaims(c); claims != nil {
		if email, ok := claims["email"].(string); ok {
			return email
		}
	}
	return ""
}

func Role(c *fiber.Ctx) models.Role {
	if claims := mapClaims(c); claims != nil {
		if role, ok := claims["role"].(string); ok {
			return models.Role(role)
		}
	}
	return ""
}

// HasActiveSubscription reads the student flag frozen at login time.
func HasActiveSubscription(c *fiber.Ctx) bool {
	if claims := mapClaims(c); claims != nil {
		if v, ok := claims["has_active_subscription"].(bool); ok {
			return v
		}
	}
	return false
}

// HasActiveCampaigns reads the company flag frozen at login time.
func HasActiveCampaigns(c *fiber.Ctx) bool {
	if claims := mapClaims(c); claims != nil {
		if v, ok := claims["has_active_campaigns"].(bool); ok {
			return v
		}
	}
	return false
}
