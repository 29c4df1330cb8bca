package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBillingCycleAdvance(t *testing.T) {
	start := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC), BillingMonthly.Advance(start))
	assert.Equal(t, time.Date(2027, time.March, 15, 10, 0, 0, 0, time.UTC), BillingYearly.Advance(start))

	// Month-end normalization follows AddDate: Jan 31 + 1 month lands in March.
	jan31 := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC), BillingMonthly.Advance(jan31))
}

func TestSubscriptionActiveAt(t *testing.T) {
	now := time.Now()
	sub := StudentSubscription{
		Status: SubscriptionActive,
		EndsAt: now.Add(time.Hour),
	}

	assert.True(t, sub.ActiveAt(now))

	expired := sub
	expired.EndsAt = now.Add(-time.Minute)
	assert.False(t, expired.ActiveAt(now), "past end date")

	boundary := sub
	boundary.EndsAt = now
	assert.False(t, boundary.ActiveAt(now), "access ends exactly at EndsAt")

	canceled := sub
	canceled.Status = SubscriptionCanceled
	assert.False(t, canceled.ActiveAt(now))

	swept := sub
	swept.Status = SubscriptionExpired
	assert.False(t, swept.ActiveAt(now))
}
