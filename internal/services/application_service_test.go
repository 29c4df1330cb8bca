package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/internlink/internlink-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLetter() string {
	return strings.Repeat("a", 120)
}

func openInternship(now time.Time) *models.Internship {
	return &models.Internship{
		IsActive: true,
		Deadline: now.Add(7 * 24 * time.Hour),
		Campaign: models.Campaign{Status: models.CampaignActive},
	}
}

func unlimitedSub(now time.Time) *models.StudentSubscription {
	return &models.StudentSubscription{
		Status: models.SubscriptionActive,
		EndsAt: now.Add(30 * 24 * time.Hour),
		Plan:   models.StudentPlan{Name: "Unlimited"},
	}
}

func cappedSub(now time.Time, limit int) *models.StudentSubscription {
	sub := unlimitedSub(now)
	sub.Plan.MaxApplicationsPerMonth = &limit
	return sub
}

func TestCheckApplyEligibilityPasses(t *testing.T) {
	now := time.Now()
	err := checkApplyEligibility(validLetter(), openInternship(now), false, unlimitedSub(now), 0, now)
	assert.NoError(t, err)
}

func TestCheckApplyEligibilityCoverLetterBounds(t *testing.T) {
	now := time.Now()
	internship := openInternship(now)
	sub := unlimitedSub(now)

	cases := []struct {
		name   string
		letter string
		want   error
	}{
		{"empty", "", ErrCoverLetterLength},
		{"49 runes", strings.Repeat("x", 49), ErrCoverLetterLength},
		{"50 runes", strings.Repeat("x", 50), nil},
		{"2000 runes", strings.Repeat("x", 2000), nil},
		{"2001 runes", strings.Repeat("x", 2001), ErrCoverLetterLength},
		{"50 runes multibyte", strings.Repeat("ş", 50), nil},
		{"whitespace padding does not count", "  " + strings.Repeat("x", 49) + "  ", ErrCoverLetterLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkApplyEligibility(tc.letter, internship, false, sub, 0, now)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestCheckApplyEligibilityInternshipState(t *testing.T) {
	now := time.Now()
	sub := unlimitedSub(now)

	t.Run("missing internship", func(t *testing.T) {
		err := checkApplyEligibility(validLetter(), nil, false, sub, 0, now)
		assert.ErrorIs(t, err, ErrInternshipNotFound)
	})

	t.Run("deactivated internship", func(t *testing.T) {
		internship := openInternship(now)
		internship.IsActive = false
		err := checkApplyEligibility(validLetter(), internship, false, sub, 0, now)
		assert.ErrorIs(t, err, ErrInternshipClosed)
	})

	t.Run("campaign no longer active", func(t *testing.T) {
		for _, status := range []models.CampaignStatus{models.CampaignPaused, models.CampaignCompleted, models.CampaignExpired} {
			internship := openInternship(now)
			internship.Campaign.Status = status
			err := checkApplyEligibility(validLetter(), internship, false, sub, 0, now)
			assert.ErrorIs(t, err, ErrCampaignInactive, "campaign %s", status)
		}
	})

	t.Run("deadline passed", func(t *testing.T) {
		internship := openInternship(now)
		internship.Deadline = now.Add(-time.Minute)
		err := checkApplyEligibility(validLetter(), internship, false, sub, 0, now)
		assert.ErrorIs(t, err, ErrDeadlinePassed)
	})

	t.Run("deadline instant still open", func(t *testing.T) {
		internship := openInternship(now)
		internship.Deadline = now
		err := checkApplyEligibility(validLetter(), internship, false, sub, 0, now)
		assert.NoError(t, err)
	})
}

func TestCheckApplyEligibilityDuplicate(t *testing.T) {
	now := time.Now()
	err := checkApplyEligibility(validLetter(), openInternship(now), true, unlimitedSub(now), 0, now)
	assert.ErrorIs(t, err, ErrDuplicateApplication)
}

func TestCheckApplyEligibilitySubscription(t *testing.T) {
	now := time.Now()
	internship := openInternship(now)

	t.Run("no subscription at all", func(t *testing.T) {
		err := checkApplyEligibility(validLetter(), internship, false, nil, 0, now)
		assert.ErrorIs(t, err, ErrSubscriptionRequired)
	})

	t.Run("lapsed subscription", func(t *testing.T) {
		sub := unlimitedSub(now)
		sub.EndsAt = now.Add(-time.Hour)
		err := checkApplyEligibility(validLetter(), internship, false, sub, 0, now)
		assert.ErrorIs(t, err, ErrSubscriptionRequired)
	})

	t.Run("canceled subscription", func(t *testing.T) {
		sub := unlimitedSub(now)
		sub.Status = models.SubscriptionCanceled
		err := checkApplyEligibility(validLetter(), internship, false, sub, 0, now)
		assert.ErrorIs(t, err, ErrSubscriptionRequired)
	})
}

func TestCheckApplyEligibilityQuota(t *testing.T) {
	now := time.Now()
	internship := openInternship(now)

	t.Run("under cap", func(t *testing.T) {
		err := checkApplyEligibility(validLetter(), internship, false, cappedSub(now, 10), 9, now)
		assert.NoError(t, err)
	})

	t.Run("at cap", func(t *testing.T) {
		err := checkApplyEligibility(validLetter(), internship, false, cappedSub(now, 10), 10, now)
		var qe *QuotaExceededError
		require.True(t, errors.As(err, &qe))
		assert.Equal(t, int64(10), qe.Used)
		assert.Equal(t, 10, qe.Limit)
		assert.Equal(t, "monthly application limit reached (10/10)", qe.Error())
	})

	t.Run("nil cap means unlimited", func(t *testing.T) {
		err := checkApplyEligibility(validLetter(), internship, false, unlimitedSub(now), 100000, now)
		assert.NoError(t, err)
	})
}

// The gate reports the first failure in its fixed order: a request failing
// several preconditions surfaces the cover-letter error before any other.
func TestCheckApplyEligibilityOrdering(t *testing.T) {
	now := time.Now()

	err := checkApplyEligibility("short", nil, true, nil, 0, now)
	assert.ErrorIs(t, err, ErrCoverLetterLength)

	err = checkApplyEligibility(validLetter(), nil, true, nil, 0, now)
	assert.ErrorIs(t, err, ErrInternshipNotFound)

	err = checkApplyEligibility(validLetter(), openInternship(now), true, nil, 0, now)
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	err = checkApplyEligibility(validLetter(), openInternship(now), false, nil, 0, now)
	assert.ErrorIs(t, err, ErrSubscriptionRequired)
}

func TestMonthStart(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2026, time.August, 23, 17, 45, 12, 0, loc)

	got := monthStart(now)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())

	firstInstant := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, firstInstant, monthStart(firstInstant))
}
