package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/devyhq/devy-backend/internal/config"
	"github.com/devyhq/devy-backend/internal/models"
	"github.com/devyhq/devy-backend/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenIssuer mints signed access tokens and opaque refresh values.
type TokenIssuer interface {
	AccessToken(user *models.User) (string, error)
	RefreshValue() (string, error)
	RefreshLifetime() time.Duration
}

// RefreshTokenStore persists and rotates refresh credentials.
type RefreshTokenStore interface {
	// Validate returns the stored credential for an opaque token value, or
	// ErrInvalidRefreshToken when the token is unknown, revoked or expired.
	// The three cases are indistinguishable to the caller.
	Validate(token string) (*models.RefreshToken, error)
	Insert(userID uuid.UUID, token string, expiresAt time.Time) error
	// Revoke marks the credential revoked. Already-revoked tokens are a no-op.
	Revoke(token string) error
	// Rotate atomically inserts the successor and revokes the predecessor,
	// recording the successor hash on the revoked row. When a concurrent
	// rotation already consumed the predecessor, nothing is persisted and
	// ErrInvalidRefreshToken is returned.
	Rotate(oldToken, newToken string, userID uuid.UUID, expiresAt time.Time) error
}

// HashRefreshToken maps an opaque refresh value onto its storage form.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

type jwtTokenIssuer struct {
	cfg *config.JWTConfig
}

func NewTokenIssuer(cfg *config.JWTConfig) TokenIssuer {
	return &jwtTokenIssuer{cfg: cfg}
}

func (i *jwtTokenIssuer) AccessToken(user *models.User) (string, error) {
	return utils.GenerateToken(user.ID, user.Email, i.cfg.AccessExpireMinutes)
}

// RefreshValue returns 256 bits of randomness, hex-encoded. The value carries
// no semantics; it is only meaningful through the server-side lookup.
func (i *jwtTokenIssuer) RefreshValue() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (i *jwtTokenIssuer) RefreshLifetime() time.Duration {
	return time.Duration(i.cfg.RefreshExpireHours) * time.Hour
}

type gormRefreshTokenStore struct {
	db *gorm.DB
}

func NewRefreshTokenStore(db *gorm.DB) RefreshTokenStore {
	return &gormRefreshTokenStore{db: db}
}

func (s *gormRefreshTokenStore) Validate(token string) (*models.RefreshToken, error) {
	if token == "" {
		return nil, ErrInvalidRefreshToken
	}

	var stored models.RefreshToken
	err := s.db.Where("token_hash = ?", HashRefreshToken(token)).First(&stored).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if !stored.Active(time.Now()) {
		return nil, ErrInvalidRefreshToken
	}
	return &stored, nil
}

func (s *gormRefreshTokenStore) Insert(userID uuid.UUID, token string, expiresAt time.Time) error {
	record := models.RefreshToken{
		UserID:    userID,
		TokenHash: HashRefreshToken(token),
		ExpiresAt: expiresAt,
	}
	return s.db.Create(&record).Error
}

func (s *gormRefreshTokenStore) Revoke(token string) error {
	if token == "" {
		return nil
	}
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", HashRefreshToken(token)).
		Update("revoked_at", time.Now()).Error
}

func (s *gormRefreshTokenStore) Rotate(oldToken, newToken string, userID uuid.UUID, expiresAt time.Time) error {
	oldHash := HashRefreshToken(oldToken)
	newHash := HashRefreshToken(newToken)
	now := time.Now()

	return s.db.Transaction(func(tx *gorm.DB) error {
		successor := models.RefreshToken{
			UserID:    userID,
			TokenHash: newHash,
			ExpiresAt: expiresAt,
		}
		if err := tx.Create(&successor).Error; err != nil {
			return err
		}

		// Conditional revoke: only the request that flips revoked_at from
		// NULL wins; a racing rotation of the same token sees zero rows and
		// rolls back its successor.
		res := tx.Model(&models.RefreshToken{}).
			Where("token_hash = ? AND revoked_at IS NULL", oldHash).
			Updates(map[string]interface{}{
				"revoked_at":             now,
				"replaced_by_token_hash": newHash,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidRefreshToken
		}
		return nil
	})
}
