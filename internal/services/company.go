package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/models"
	"gorm.io/gorm"
)

var ErrCompanyNotFound = errors.New("company not found")

// companyForUser resolves the company owned by an authenticated COMPANY user.
func companyForUser(db *gorm.DB, userID uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := db.Where("user_id = ?", userID).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to load company: %w", err)
	}
	return &company, nil
}
