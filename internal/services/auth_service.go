package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/config"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) StudentSignup(req *dto.StudentSignupRequest) (*dto.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		return nil, validation("name and email required, password must be at least 8 characters")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleStudent,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.authResponse(&user, nil)
}

func (s *AuthService) StudentLogin(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ? AND role = ?", req.Email, models.RoleStudent).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(&user, nil)
}

// CompanySignup creates the user and its company record as one unit; a
// half-created company account must never be observable.
func (s *AuthService) CompanySignup(req *dto.CompanySignupRequest) (*dto.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.CompanyName == "" || len(req.Password) < 8 {
		return nil, validation("name, email and company name required, password must be at least 8 characters")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleCompany,
	}
	company := models.Company{
		ID:          uuid.New(),
		Name:        req.CompanyName,
		Website:     req.Website,
		Description: req.Description,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		company.UserID = user.ID
		return tx.Create(&company).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create company account: %w", err)
	}

	return s.authResponse(&user, &company)
}

func (s *AuthService) CompanyLogin(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ? AND role = ?", req.Email, models.RoleCompany).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	var company models.Company
	if err := s.db.Where("user_id = ?", user.ID).First(&company).Error; err != nil {
		return nil, fmt.Errorf("company record missing for user %s: %w", user.ID, err)
	}

	return s.authResponse(&user, &company)
}

// authResponse signs a token with the role-specific flag computed against the
// current database state. The flag is frozen into the token from here on.
func (s *AuthService) authResponse(user *models.User, company *models.Company) (*dto.AuthResponse, error) {
	flag := false
	switch user.Role {
	case models.RoleStudent:
		if _, err := latestActiveSubscription(s.db, user.ID, time.Now()); err == nil {
			flag = true
		}
	case models.RoleCompany:
		if company != nil {
			flag = s.hasActiveCampaigns(company.ID)
		}
	}

	token, err := signToken(s.cfg.JWTSecret, s.cfg.TokenExpiry, user, flag)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.AuthResponse{
		Success: true,
		Token:   token,
		User:    *user,
		Company: company,
	}, nil
}

func (s *AuthService) hasActiveCampaigns(companyID uuid.UUID) bool {
	var count int64
	s.db.Model(&models.Campaign{}).
		Where("company_id = ? AND status = ? AND end_date > ?", companyID, models.CampaignActive, time.Now()).
		Count(&count)
	return count > 0
}

// signToken issues an HS256 token carrying identity, role, and the
// role-specific access flag.
func signToken(secret string, expiry time.Duration, user *models.User, flag bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(expiry).Unix(),
	}
	switch user.Role {
	case models.RoleStudent:
		claims["has_active_subscription"] = flag
	case models.RoleCompany:
		claims["has_active_campaigns"] = flag
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
