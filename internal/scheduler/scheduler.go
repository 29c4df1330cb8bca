package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/internlink/internlink-backend/internal/models"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Scheduler runs the background sweeps that derive EXPIRED states and
// enforce log retention. EXPIRED is never set through the API.
type Scheduler struct {
	cron *cron.Cron
	db   *gorm.DB
}

func New(db *gorm.DB) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo))
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.Recover(cronLogger))),
		db:   db,
	}
}

// Start registers the sweeps and launches the cron loop. Expiry jobs run
// hourly so a lapsed campaign or subscription is corrected within the hour;
// log retention runs once a day.
func (s *Scheduler) Start() {
	register := func(spec, name string, job func()) {
		if _, err := s.cron.AddFunc(spec, job); err != nil {
			slog.Error("failed to schedule job", "job", name, "error", err)
			return
		}
		slog.Info("scheduled job", "job", name, "schedule", spec)
	}

	register("@hourly", "campaign expiry", s.expireCampaigns)
	register("@hourly", "subscription expiry", s.expireSubscriptions)
	register("@daily", "log retention", s.cleanupLogs)

	s.cron.Start()
}

// Stop halts scheduling and returns a context that completes once any
// running job finishes.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) expireCampaigns() {
	result := s.db.Model(&models.Campaign{}).
		Where("status = ? AND end_date < ?", models.CampaignActive, time.Now()).
		Update("status", models.CampaignExpired)
	if result.Error != nil {
		slog.Error("campaign expiry sweep failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("campaign expiry sweep completed", "expired", result.RowsAffected)
	}
}

func (s *Scheduler) expireSubscriptions() {
	result := s.db.Model(&models.StudentSubscription{}).
		Where("status = ? AND ends_at < ?", models.SubscriptionActive, time.Now()).
		Update("status", models.SubscriptionExpired)
	if result.Error != nil {
		slog.Error("subscription expiry sweep failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("subscription expiry sweep completed", "expired", result.RowsAffected)
	}
}

func (s *Scheduler) cleanupLogs() {
	cutoff := time.Now().AddDate(0, 0, -30)
	result := s.db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
}
