package services

import (
	"testing"
	"time"

	"github.com/devyhq/devy-backend/internal/models"
)

func TestTokenCleanup_PurgeNow(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenCleanupService(db)

	user := models.User{Email: "purge@example.com", PasswordHash: "x", FullName: "Purge Test"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	longDead := time.Now().Add(-retentionGrace - 24*time.Hour)
	recentlyRevoked := time.Now().Add(-time.Hour)

	tokens := []models.RefreshToken{
		// Long expired: purged.
		{UserID: user.ID, TokenHash: HashRefreshToken("t1"), ExpiresAt: longDead},
		// Revoked long ago: purged.
		{UserID: user.ID, TokenHash: HashRefreshToken("t2"), ExpiresAt: time.Now().Add(time.Hour), RevokedAt: &longDead},
		// Revoked recently: inside the grace window, kept.
		{UserID: user.ID, TokenHash: HashRefreshToken("t3"), ExpiresAt: time.Now().Add(time.Hour), RevokedAt: &recentlyRevoked},
		// Live: kept.
		{UserID: user.ID, TokenHash: HashRefreshToken("t4"), ExpiresAt: time.Now().Add(time.Hour)},
	}
	for i := range tokens {
		if err := db.Create(&tokens[i]).Error; err != nil {
			t.Fatalf("failed to seed token %d: %v", i, err)
		}
	}

	deleted, err := svc.PurgeNow()
	if err != nil {
		t.Fatalf("PurgeNow() error = %v", err)
	}
	if deleted != 2 {
		t.Errorf("PurgeNow() deleted %d rows, expected 2", deleted)
	}

	var remaining int64
	db.Model(&models.RefreshToken{}).Count(&remaining)
	if remaining != 2 {
		t.Errorf("%d tokens remain, expected 2", remaining)
	}

	var live models.RefreshToken
	if err := db.Where("token_hash = ?", HashRefreshToken("t4")).First(&live).Error; err != nil {
		t.Error("live token should survive the purge")
	}
}

func TestTokenCleanup_StartStop(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenCleanupService(db)

	svc.Start()
	svc.Stop()
}
