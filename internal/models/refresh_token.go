package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is one link in a refresh-credential rotation chain. The opaque
// token value handed to the client is never stored; only its SHA-256 hash is.
// A token is usable iff RevokedAt is null and ExpiresAt is in the future.
type RefreshToken struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	UserID              uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	TokenHash           string     `gorm:"uniqueIndex;size:64;not null" json:"-"`
	ExpiresAt           time.Time  `gorm:"index;not null" json:"expires_at"`
	RevokedAt           *time.Time `gorm:"index" json:"revoked_at,omitempty"`
	ReplacedByTokenHash *string    `gorm:"size:64" json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }

// Active reports whether the token can still be exchanged at the given time.
func (t *RefreshToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
