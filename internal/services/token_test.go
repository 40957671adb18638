package services

import (
	"errors"
	"testing"
	"time"

	"github.com/devyhq/devy-backend/internal/models"
)

func TestHashRefreshToken_Deterministic(t *testing.T) {
	a := HashRefreshToken("some-opaque-value")
	b := HashRefreshToken("some-opaque-value")
	if a != b {
		t.Error("hashing the same value twice should be stable")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, expected 64 hex chars", len(a))
	}
	if a == "some-opaque-value" {
		t.Error("hash must not equal the input")
	}
}

func TestTokenIssuer_RefreshValue(t *testing.T) {
	issuer := NewTokenIssuer(&testJWTConfig)

	first, err := issuer.RefreshValue()
	if err != nil {
		t.Fatalf("RefreshValue() error = %v", err)
	}
	second, err := issuer.RefreshValue()
	if err != nil {
		t.Fatalf("RefreshValue() error = %v", err)
	}

	if len(first) != 64 {
		t.Errorf("refresh value length = %d, expected 64 hex chars", len(first))
	}
	if first == second {
		t.Error("consecutive refresh values must differ")
	}
}

func TestTokenIssuer_RefreshLifetime(t *testing.T) {
	issuer := NewTokenIssuer(&testJWTConfig)
	if got := issuer.RefreshLifetime(); got != 168*time.Hour {
		t.Errorf("RefreshLifetime() = %v, expected 168h", got)
	}
}

func TestRefreshTokenStore_ValidateLifecycle(t *testing.T) {
	db := newTestDB(t)
	store := NewRefreshTokenStore(db)

	user := models.User{Email: "store@example.com", PasswordHash: "x", FullName: "Store Test"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	if err := store.Insert(user.ID, "token-one", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	stored, err := store.Validate("token-one")
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if stored.UserID != user.ID {
		t.Errorf("Validate() UserID = %v, expected %v", stored.UserID, user.ID)
	}
	if stored.TokenHash != HashRefreshToken("token-one") {
		t.Error("store must persist the hash, not the raw value")
	}

	if err := store.Revoke("token-one"); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}
	if _, err := store.Validate("token-one"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("revoked Validate() = %v, expected ErrInvalidRefreshToken", err)
	}

	// Revoking twice is a no-op, not an error.
	if err := store.Revoke("token-one"); err != nil {
		t.Errorf("second Revoke() error = %v", err)
	}
}

func TestRefreshTokenStore_ValidateUniformFailures(t *testing.T) {
	db := newTestDB(t)
	store := NewRefreshTokenStore(db)

	user := models.User{Email: "store@example.com", PasswordHash: "x", FullName: "Store Test"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	if err := store.Insert(user.ID, "expired-token", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"unknown token", "never-issued"},
		{"expired token", "expired-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Validate(tt.token)
			if !errors.Is(err, ErrInvalidRefreshToken) {
				t.Errorf("Validate(%q) = %v, expected ErrInvalidRefreshToken", tt.token, err)
			}
		})
	}
}

func TestRefreshTokenStore_Rotate(t *testing.T) {
	db := newTestDB(t)
	store := NewRefreshTokenStore(db)

	user := models.User{Email: "rotate@example.com", PasswordHash: "x", FullName: "Rotate Test"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	if err := store.Insert(user.ID, "old-token", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	expiresAt := time.Now().Add(time.Hour)
	if err := store.Rotate("old-token", "new-token", user.ID, expiresAt); err != nil {
		t.Fatalf("Rotate() error = %v", err)
	}

	var old models.RefreshToken
	if err := db.Where("token_hash = ?", HashRefreshToken("old-token")).First(&old).Error; err != nil {
		t.Fatalf("old token missing: %v", err)
	}
	if old.RevokedAt == nil {
		t.Error("predecessor should be revoked after rotation")
	}
	if old.ReplacedByTokenHash == nil || *old.ReplacedByTokenHash != HashRefreshToken("new-token") {
		t.Error("predecessor should point at its successor")
	}

	if _, err := store.Validate("new-token"); err != nil {
		t.Errorf("successor should validate, got %v", err)
	}

	// A second rotation of the consumed token fails and leaves no orphan.
	if err := store.Rotate("old-token", "another-token", user.ID, expiresAt); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("rotating a consumed token = %v, expected ErrInvalidRefreshToken", err)
	}
	var orphans int64
	db.Model(&models.RefreshToken{}).Where("token_hash = ?", HashRefreshToken("another-token")).Count(&orphans)
	if orphans != 0 {
		t.Error("a failed rotation must not persist its successor")
	}
}
