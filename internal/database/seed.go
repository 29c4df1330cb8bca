package database

import (
	"fmt"
	"log/slog"

	"github.com/internlink/internlink-backend/internal/models"
	"github.com/shopspring/decimal"
)

func intPtr(n int) *int { return &n }

// SeedPlans inserts the default student plans when the table is empty, so a
// fresh deployment has a purchasable catalog.
func SeedPlans() error {
	var count int64
	if err := DB.Model(&models.StudentPlan{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count plans: %w", err)
	}
	if count > 0 {
		return nil
	}

	plans := []models.StudentPlan{
		{
			Name:                    "Starter",
			Description:             "Browse internships and apply to up to 10 per month.",
			Price:                   decimal.NewFromFloat(9.99),
			BillingCycle:            models.BillingMonthly,
			MaxApplicationsPerMonth: intPtr(10),
			IsActive:                true,
		},
		{
			Name:         "Unlimited",
			Description:  "Unlimited applications, billed monthly.",
			Price:        decimal.NewFromFloat(24.99),
			BillingCycle: models.BillingMonthly,
			IsActive:     true,
		},
		{
			Name:         "Unlimited Annual",
			Description:  "Unlimited applications, billed yearly.",
			Price:        decimal.NewFromFloat(199.99),
			BillingCycle: models.BillingYearly,
			IsActive:     true,
		},
	}
	if err := DB.Create(&plans).Error; err != nil {
		return fmt.Errorf("failed to seed plans: %w", err)
	}
	slog.Info("seeded default student plans", "count", len(plans))
	return nil
}
