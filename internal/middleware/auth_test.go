package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/config"
	"github.com/internlink/internlink-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func testConfig() *config.Config {
	return &config.Config{JWTSecret: testSecret}
}

func issueToken(t *testing.T, secret string, role models.Role, subscribed bool, expiry time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   uuid.New().String(),
		"email": "guard@test.example",
		"role":  string(role),
		"iat":   now.Unix(),
		"exp":   now.Add(expiry).Unix(),
	}
	if role == models.RoleStudent {
		claims["has_active_subscription"] = subscribed
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func guardedApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append(handlers, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/guarded", chain...)
	return app
}

func request(t *testing.T, app *fiber.App, cookie, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/guarded", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookie, Value: token})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestProtectedRejectsMissingCookie(t *testing.T) {
	app := guardedApp(Protected(testConfig(), CookieStudent))
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, CookieStudent, ""))
}

func TestProtectedRejectsMalformedToken(t *testing.T) {
	app := guardedApp(Protected(testConfig(), CookieStudent))
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, CookieStudent, "not-a-token"))
}

func TestProtectedRejectsExpiredToken(t *testing.T) {
	app := guardedApp(Protected(testConfig(), CookieStudent))
	token := issueToken(t, testSecret, models.RoleStudent, true, -time.Hour)
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, CookieStudent, token))
}

func TestProtectedRejectsWrongSignature(t *testing.T) {
	app := guardedApp(Protected(testConfig(), CookieStudent))
	token := issueToken(t, "some-other-secret", models.RoleStudent, true, time.Hour)
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, CookieStudent, token))
}

func TestProtectedIgnoresOtherCookie(t *testing.T) {
	app := guardedApp(Protected(testConfig(), CookieCompany))
	token := issueToken(t, testSecret, models.RoleStudent, true, time.Hour)
	// Valid student token presented under the student cookie name cannot pass
	// a guard reading the company cookie.
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, CookieStudent, token))
}

func TestProtectedAcceptsValidToken(t *testing.T) {
	app := guardedApp(Protected(testConfig(), CookieStudent))
	token := issueToken(t, testSecret, models.RoleStudent, true, time.Hour)
	assert.Equal(t, fiber.StatusOK, request(t, app, CookieStudent, token))
}

func TestProtectedFailsClosedWithoutSecret(t *testing.T) {
	app := guardedApp(Protected(&config.Config{}, CookieStudent))
	token := issueToken(t, testSecret, models.RoleStudent, true, time.Hour)
	assert.Equal(t, fiber.StatusInternalServerError, request(t, app, CookieStudent, token))
}

func TestRequireRole(t *testing.T) {
	app := guardedApp(Protected(testConfig(), CookieStudent), RequireRole(models.RoleStudent))

	student := issueToken(t, testSecret, models.RoleStudent, true, time.Hour)
	assert.Equal(t, fiber.StatusOK, request(t, app, CookieStudent, student))

	company := issueToken(t, testSecret, models.RoleCompany, false, time.Hour)
	assert.Equal(t, fiber.StatusForbidden, request(t, app, CookieStudent, company))
}

func TestSubscribedStudentGate(t *testing.T) {
	app := guardedApp(
		Protected(testConfig(), CookieStudent),
		RequireRole(models.RoleStudent),
		SubscribedStudent(),
	)

	subscribed := issueToken(t, testSecret, models.RoleStudent, true, time.Hour)
	assert.Equal(t, fiber.StatusOK, request(t, app, CookieStudent, subscribed))

	unsubscribed := issueToken(t, testSecret, models.RoleStudent, false, time.Hour)
	assert.Equal(t, fiber.StatusForbidden, request(t, app, CookieStudent, unsubscribed))
}
