package services

import (
	"time"

	"github.com/devyhq/devy-backend/internal/models"
	"github.com/devyhq/devy-backend/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// retentionGrace keeps dead tokens around briefly so rotation chains remain
// inspectable for support and audit before the purge removes them.
const retentionGrace = 30 * 24 * time.Hour

// TokenCleanupService deletes long-dead refresh tokens on a schedule. This is
// storage hygiene only; token validation never relies on the purge running.
type TokenCleanupService struct {
	db   *gorm.DB
	cron *cron.Cron
}

func NewTokenCleanupService(db *gorm.DB) *TokenCleanupService {
	return &TokenCleanupService{db: db}
}

// Start schedules a daily purge at 03:30.
func (s *TokenCleanupService) Start() {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc("30 3 * * *", func() {
		if _, err := s.PurgeNow(); err != nil {
			logger.Error().Err(err).Msg("refresh token purge failed")
		}
	}); err != nil {
		logger.Error().Err(err).Msg("failed to schedule refresh token purge")
		return
	}
	s.cron.Start()
	logger.Info().Msg("refresh token cleanup scheduler started")
}

func (s *TokenCleanupService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// PurgeNow removes tokens expired or revoked longer than the grace period ago
// and returns how many rows were deleted.
func (s *TokenCleanupService) PurgeNow() (int64, error) {
	cutoff := time.Now().Add(-retentionGrace)
	res := s.db.
		Where("expires_at < ? OR revoked_at < ?", cutoff, cutoff).
		Delete(&models.RefreshToken{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		logger.Info().Int64("deleted", res.RowsAffected).Msg("purged dead refresh tokens")
	}
	return res.RowsAffected, nil
}
