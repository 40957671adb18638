package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func init() {
	SetJWTConfig("test-secret-key-for-testing", "devy-api", "devy-clients")
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "dev@example.com", 60)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if token == "" {
		t.Error("GenerateToken() returned empty token")
	}

	if len(token) < 50 {
		t.Errorf("token seems too short: %d chars", len(token))
	}
}

func TestGenerateToken_DifferentTokens(t *testing.T) {
	token1, _ := GenerateToken(uuid.New(), "a@example.com", 60)
	token2, _ := GenerateToken(uuid.New(), "b@example.com", 60)

	if token1 == token2 {
		t.Error("different users should produce different tokens")
	}
}

func TestParseToken(t *testing.T) {
	userID := uuid.New()
	email := "dev@example.com"

	token, _ := GenerateToken(userID, email, 60)

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	gotID, err := claims.UserID()
	if err != nil {
		t.Fatalf("claims.UserID() error = %v", err)
	}
	if gotID != userID {
		t.Errorf("UserID = %s, expected %s", gotID, userID)
	}
	if claims.Email != email {
		t.Errorf("Email = %q, expected %q", claims.Email, email)
	}
	if claims.Issuer != "devy-api" {
		t.Errorf("Issuer = %q, expected %q", claims.Issuer, "devy-api")
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != "devy-clients" {
		t.Errorf("Audience = %v, expected [devy-clients]", claims.Audience)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	invalidTokens := []string{
		"",
		"invalid",
		"not.a.token",
		"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid.signature",
	}

	for _, token := range invalidTokens {
		_, err := ParseToken(token)
		if err == nil {
			t.Errorf("ParseToken(%q) should return error", token)
		}
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	SetJWTConfig("original-secret", "devy-api", "devy-clients")
	token, _ := GenerateToken(uuid.New(), "dev@example.com", 60)

	SetJWTConfig("different-secret", "devy-api", "devy-clients")
	_, err := ParseToken(token)

	SetJWTConfig("test-secret-key-for-testing", "devy-api", "devy-clients")

	if err == nil {
		t.Error("ParseToken should fail with wrong secret")
	}
}

func TestParseToken_WrongIssuer(t *testing.T) {
	SetJWTConfig("test-secret-key-for-testing", "someone-else", "devy-clients")
	token, _ := GenerateToken(uuid.New(), "dev@example.com", 60)

	SetJWTConfig("test-secret-key-for-testing", "devy-api", "devy-clients")
	_, err := ParseToken(token)

	if err == nil {
		t.Error("ParseToken should reject a token from another issuer")
	}
}

func TestGenerateToken_Expiration(t *testing.T) {
	token, _ := GenerateToken(uuid.New(), "dev@example.com", 60)
	claims, _ := ParseToken(token)

	expiresAt := claims.ExpiresAt.Time
	now := time.Now()

	if expiresAt.Before(now) {
		t.Error("token should not be expired immediately")
	}

	expectedExpiry := now.Add(60 * time.Minute)
	diff := expiresAt.Sub(expectedExpiry)
	if diff < -time.Minute || diff > time.Minute {
		t.Errorf("expiration time is off by more than 1 minute: %v", diff)
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, _ := GenerateToken(uuid.New(), "dev@example.com", -1)

	if _, err := ParseToken(token); err == nil {
		t.Error("ParseToken should reject an expired token")
	}
}
