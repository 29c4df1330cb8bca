package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInternshipVisibleAt(t *testing.T) {
	now := time.Now()
	base := Internship{
		IsActive: true,
		Deadline: now.Add(24 * time.Hour),
		Campaign: Campaign{Status: CampaignActive},
	}

	t.Run("visible when active with future deadline under active campaign", func(t *testing.T) {
		i := base
		assert.True(t, i.VisibleAt(now))
	})

	t.Run("deadline instant itself is still visible", func(t *testing.T) {
		i := base
		i.Deadline = now
		assert.True(t, i.VisibleAt(now))
	})

	t.Run("hidden after deadline", func(t *testing.T) {
		i := base
		i.Deadline = now.Add(-time.Second)
		assert.False(t, i.VisibleAt(now))
	})

	t.Run("hidden when deactivated", func(t *testing.T) {
		i := base
		i.IsActive = false
		assert.False(t, i.VisibleAt(now))
	})

	t.Run("hidden when campaign not active", func(t *testing.T) {
		for _, status := range []CampaignStatus{CampaignPaused, CampaignCompleted, CampaignExpired} {
			i := base
			i.Campaign.Status = status
			assert.False(t, i.VisibleAt(now), "campaign %s", status)
		}
	})
}
