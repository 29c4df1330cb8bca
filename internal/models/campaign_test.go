package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCampaignStatusSettableByCompany(t *testing.T) {
	assert.True(t, CampaignActive.SettableByCompany())
	assert.True(t, CampaignPaused.SettableByCompany())
	assert.True(t, CampaignCompleted.SettableByCompany())
	assert.False(t, CampaignExpired.SettableByCompany())
	assert.False(t, CampaignStatus("RUNNING").SettableByCompany())
}

func TestCampaignCanAcceptInternships(t *testing.T) {
	now := time.Now()
	campaign := Campaign{
		Status:         CampaignActive,
		EndDate:        now.Add(30 * 24 * time.Hour),
		MaxInternships: 3,
	}

	assert.True(t, campaign.CanAcceptInternships(0, now))
	assert.True(t, campaign.CanAcceptInternships(2, now))
	assert.False(t, campaign.CanAcceptInternships(3, now), "cap reached")
	assert.False(t, campaign.CanAcceptInternships(4, now))

	paused := campaign
	paused.Status = CampaignPaused
	assert.False(t, paused.CanAcceptInternships(0, now))

	ended := campaign
	ended.EndDate = now.Add(-time.Hour)
	assert.False(t, ended.CanAcceptInternships(0, now))
}

func TestCampaignPaid(t *testing.T) {
	var campaign Campaign
	assert.False(t, campaign.Paid(), "no payment loaded")

	campaign.Payment = &CampaignPayment{Status: PaymentPending}
	assert.False(t, campaign.Paid())

	campaign.Payment.Status = PaymentCompleted
	assert.True(t, campaign.Paid())
}
