package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/internlink/internlink-backend/internal/models"
	"gorm.io/gorm"
)

const (
	minCoverLetterLen = 50
	maxCoverLetterLen = 2000
)

var (
	ErrCoverLetterLength    = errors.New("cover letter must be between 50 and 2000 characters")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrInternshipClosed     = errors.New("internship is no longer accepting applications")
	ErrDeadlinePassed       = errors.New("application deadline has passed")
	ErrDuplicateApplication = errors.New("you have already applied to this internship")
	ErrSubscriptionRequired = errors.New("an active subscription is required to apply")
	ErrNotOwner             = errors.New("application belongs to another company")
	ErrInvalidStatus        = errors.New("status must be PENDING, SHORTLISTED, ACCEPTED or REJECTED")
	ErrInvalidTransition    = errors.New("accepted applications can no longer be updated")
	ErrEditLocked           = errors.New("only pending applications can be edited")
)

// QuotaExceededError reports the student's current usage against the plan cap.
type QuotaExceededError struct {
	Used  int64
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("monthly application limit reached (%d/%d)", e.Used, e.Limit)
}

type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// checkApplyEligibility evaluates the apply preconditions in their fixed
// order, returning the first failure. internship is nil when the target does
// not exist and must carry its Campaign otherwise; sub is nil when the
// student holds no subscription at all.
func checkApplyEligibility(
	coverLetter string,
	internship *models.Internship,
	hasExisting bool,
	sub *models.StudentSubscription,
	monthlyUsed int64,
	now time.Time,
) error {
	letter := strings.TrimSpace(coverLetter)
	if n := utf8.RuneCountInString(letter); n < minCoverLetterLen || n > maxCoverLetterLen {
		return ErrCoverLetterLength
	}
	if internship == nil {
		return ErrInternshipNotFound
	}
	if !internship.IsActive {
		return ErrInternshipClosed
	}
	if internship.Campaign.Status != models.CampaignActive {
		return ErrCampaignInactive
	}
	if now.After(internship.Deadline) {
		return ErrDeadlinePassed
	}
	if hasExisting {
		return ErrDuplicateApplication
	}
	if sub == nil || !sub.ActiveAt(now) {
		return ErrSubscriptionRequired
	}
	if limit := sub.Plan.MaxApplicationsPerMonth; limit != nil && monthlyUsed >= int64(*limit) {
		return &QuotaExceededError{Used: monthlyUsed, Limit: *limit}
	}
	return nil
}

// monthStart returns the first instant of the calendar month containing now;
// the monthly quota window resets there.
func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// Apply runs the eligibility gate and creates the application. This is the
// sole creation path for applications. A unique-index violation from a
// concurrent apply is reported as a duplicate, not a server error.
func (s *ApplicationService) Apply(userID, internshipID uuid.UUID, coverLetter string) (*models.Application, error) {
	now := time.Now()

	var internship *models.Internship
	var loaded models.Internship
	err := s.db.Preload("Campaign").Where("id = ?", internshipID).First(&loaded).Error
	switch {
	case err == nil:
		internship = &loaded
	case errors.Is(err, gorm.ErrRecordNotFound):
		internship = nil
	default:
		return nil, fmt.Errorf("failed to load internship: %w", err)
	}

	var existing int64
	if err := s.db.Model(&models.Application{}).
		Where("internship_id = ? AND user_id = ?", internshipID, userID).
		Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}

	sub, err := latestActiveSubscription(s.db, userID, now)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	var monthlyUsed int64
	if err := s.db.Model(&models.Application{}).
		Where("user_id = ? AND created_at >= ?", userID, monthStart(now)).
		Count(&monthlyUsed).Error; err != nil {
		return nil, fmt.Errorf("failed to count monthly applications: %w", err)
	}

	if err := checkApplyEligibility(coverLetter, internship, existing > 0, sub, monthlyUsed, now); err != nil {
		return nil, err
	}

	application := models.Application{
		ID:           uuid.New(),
		InternshipID: internshipID,
		UserID:       userID,
		CoverLetter:  strings.TrimSpace(coverLetter),
		Status:       models.ApplicationPending,
	}
	if err := s.db.Create(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateApplication
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	application.Internship = *internship
	return &application, nil
}

// UpdateStatus overwrites an application's status on behalf of the owning
// company. ACCEPTED is terminal; no other transition restrictions apply.
func (s *ApplicationService) UpdateStatus(userID, applicationID uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	company, err := companyForUser(s.db, userID)
	if err != nil {
		return nil, err
	}

	var application models.Application
	err = s.db.Preload("Internship").Preload("User").
		Where("id = ?", applicationID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}

	if application.Internship.CompanyID != company.ID {
		return nil, ErrNotOwner
	}
	if !models.CanTransition(application.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.db.Model(&application).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	application.Status = status
	return &application, nil
}

// UpdateCoverLetter lets a student revise their own pending application.
func (s *ApplicationService) UpdateCoverLetter(userID, applicationID uuid.UUID, coverLetter string) (*models.Application, error) {
	letter := strings.TrimSpace(coverLetter)
	if n := utf8.RuneCountInString(letter); n < minCoverLetterLen || n > maxCoverLetterLen {
		return nil, ErrCoverLetterLength
	}

	var application models.Application
	err := s.db.Preload("Internship").
		Where("id = ? AND user_id = ?", applicationID, userID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}

	if application.Status != models.ApplicationPending {
		return nil, ErrEditLocked
	}

	if err := s.db.Model(&application).Update("cover_letter", letter).Error; err != nil {
		return nil, fmt.Errorf("failed to update cover letter: %w", err)
	}
	application.CoverLetter = letter
	return &application, nil
}

func (s *ApplicationService) ListByStudent(userID uuid.UUID, page, limit int) ([]models.Application, int64, error) {
	var total int64
	if err := s.db.Model(&models.Application{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	var applications []models.Application
	err := s.db.Preload("Internship").Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&applications).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, total, nil
}

func (s *ApplicationService) GetForStudent(userID, applicationID uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := s.db.Preload("Internship").Preload("User").
		Where("id = ? AND user_id = ?", applicationID, userID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}
	return &application, nil
}

func (s *ApplicationService) GetForCompany(userID, applicationID uuid.UUID) (*models.Application, error) {
	company, err := companyForUser(s.db, userID)
	if err != nil {
		return nil, err
	}

	var application models.Application
	err = s.db.Preload("Internship").Preload("User").
		Where("id = ?", applicationID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}
	if application.Internship.CompanyID != company.ID {
		return nil, ErrNotOwner
	}
	return &application, nil
}

// ListForCampaign returns a company's applications for one campaign with an
// unfiltered status-count summary alongside the (optionally filtered) page.
func (s *ApplicationService) ListForCampaign(
	userID, campaignID uuid.UUID,
	statusFilter *models.ApplicationStatus,
	page, limit int,
) ([]models.Application, int64, map[models.ApplicationStatus]int64, error) {
	company, err := companyForUser(s.db, userID)
	if err != nil {
		return nil, 0, nil, err
	}

	var campaign models.Campaign
	if err := s.db.Where("id = ? AND company_id = ?", campaignID, company.ID).First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil, ErrCampaignNotFound
		}
		return nil, 0, nil, fmt.Errorf("failed to load campaign: %w", err)
	}

	base := func() *gorm.DB {
		return s.db.Model(&models.Application{}).
			Joins("JOIN internships ON internships.id = applications.internship_id").
			Where("internships.campaign_id = ?", campaignID)
	}

	type statusCount struct {
		Status models.ApplicationStatus
		Count  int64
	}
	var rows []statusCount
	if err := base().
		Select("applications.status AS status, COUNT(*) AS count").
		Group("applications.status").
		Scan(&rows).Error; err != nil {
		return nil, 0, nil, fmt.Errorf("failed to summarize applications: %w", err)
	}
	counts := make(map[models.ApplicationStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}

	filtered := func() *gorm.DB {
		q := base()
		if statusFilter != nil {
			q = q.Where("applications.status = ?", *statusFilter)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, nil, fmt.Errorf("failed to count applications: %w", err)
	}

	var applications []models.Application
	err = filtered().
		Preload("Internship").Preload("User").
		Order("applications.created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&applications).Error
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, total, counts, nil
}
