package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/internlink/internlink-backend/internal/config"
	"github.com/internlink/internlink-backend/internal/handlers"
	"github.com/internlink/internlink-backend/internal/middleware"
	"github.com/internlink/internlink-backend/internal/models"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	campaignHandler *handlers.CampaignHandler,
	internshipHandler *handlers.InternshipHandler,
	applicationHandler *handlers.ApplicationHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
) {
	// General rate limit: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", handlers.Health)

	// Signup/login rate limit: 10 req/min per IP (stricter)
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	// Company surface
	company := app.Group("/company")
	company.Post("/signup", authLimiter, authHandler.CompanySignup)
	company.Post("/login", authLimiter, authHandler.CompanyLogin)
	company.Post("/logout", authHandler.CompanyLogout)

	companyAuth := []fiber.Handler{
		middleware.Protected(cfg, middleware.CookieCompany),
		middleware.RequireRole(models.RoleCompany),
	}

	campaigns := company.Group("/campaigns", companyAuth...)
	campaigns.Post("/", campaignHandler.Launch)
	campaigns.Get("/", campaignHandler.List)
	campaigns.Get("/:campaignId", campaignHandler.Get)
	campaigns.Put("/:campaignId", campaignHandler.Update)
	campaigns.Post("/:campaignId/internships", internshipHandler.Create)
	campaigns.Get("/:campaignId/applications", applicationHandler.ListForCampaign)

	companyApplications := company.Group("/applications", companyAuth...)
	companyApplications.Get("/:applicationId", applicationHandler.GetForCompany)
	companyApplications.Post("/:applicationId", applicationHandler.UpdateStatus)

	// Student surface
	student := app.Group("/student")
	student.Post("/signup", authLimiter, authHandler.StudentSignup)
	student.Post("/login", authLimiter, authHandler.StudentLogin)
	student.Post("/logout", authHandler.StudentLogout)

	// Plans stay public so pricing is visible before signup.
	student.Get("/plans", subscriptionHandler.ListPlans)

	studentAuth := []fiber.Handler{
		middleware.Protected(cfg, middleware.CookieStudent),
		middleware.RequireRole(models.RoleStudent),
	}

	subscriptions := student.Group("/subscriptions", studentAuth...)
	subscriptions.Post("/", subscriptionHandler.Subscribe)
	subscriptions.Get("/", subscriptionHandler.List)
	subscriptions.Delete("/:subscriptionId", subscriptionHandler.Cancel)

	// Browsing and applying require the subscription flag on top of auth.
	internships := student.Group("/internships", append(studentAuth, middleware.SubscribedStudent())...)
	internships.Get("/", internshipHandler.Browse)
	internships.Get("/:internshipId", internshipHandler.Detail)
	internships.Post("/:internshipId/apply", applicationHandler.Apply)

	// Own applications remain reachable after a subscription lapses.
	applications := student.Group("/applications", studentAuth...)
	applications.Get("/", applicationHandler.ListMine)
	applications.Get("/:applicationId", applicationHandler.GetMine)
	applications.Put("/:applicationId", applicationHandler.UpdateCoverLetter)
}
