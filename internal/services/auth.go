package services

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/devyhq/devy-backend/internal/models"
	"github.com/devyhq/devy-backend/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordHasher is the one-way hashing contract used by the orchestrator.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type bcryptHasher struct{}

func NewPasswordHasher() PasswordHasher { return bcryptHasher{} }

func (bcryptHasher) Hash(password string) (string, error) {
	return utils.HashPassword(password)
}

func (bcryptHasher) Verify(password, hash string) bool {
	return utils.CheckPassword(password, hash)
}

// AuthService orchestrates registration, login and refresh over its four
// collaborators. All business failures come back as the sentinel errors from
// errors.go; only infrastructure failures surface as anything else.
type AuthService struct {
	accounts AccountRepository
	tokens   RefreshTokenStore
	issuer   TokenIssuer
	hasher   PasswordHasher
}

func NewAuthService(accounts AccountRepository, tokens RefreshTokenStore, issuer TokenIssuer, hasher PasswordHasher) *AuthService {
	return &AuthService{
		accounts: accounts,
		tokens:   tokens,
		issuer:   issuer,
		hasher:   hasher,
	}
}

type RegisterRequest struct {
	Email            string  `json:"email" binding:"required"`
	Password         string  `json:"password" binding:"required"`
	FullName         string  `json:"full_name" binding:"required"`
	MobileNumber     *string `json:"mobile_number"`
	CountryCode      *string `json:"country_code"`
	CityID           *uint   `json:"city_id"`
	CountryID        *uint   `json:"country_id"`
	WorkPreferenceID *uint   `json:"work_preference_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResult is the uniform success payload of all three flows.
type AuthResult struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

// UserResponse is the account view returned by the API. Reference-data names
// are denormalized so clients need no follow-up lookups.
type UserResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Email              string     `json:"email"`
	FullName           string     `json:"full_name"`
	MobileNumber       *string    `json:"mobile_number,omitempty"`
	CountryCode        *string    `json:"country_code,omitempty"`
	CityID             *uint      `json:"city_id,omitempty"`
	CityName           *string    `json:"city_name,omitempty"`
	CountryID          *uint      `json:"country_id,omitempty"`
	CountryName        *string    `json:"country_name,omitempty"`
	WorkPreferenceID   *uint      `json:"work_preference_id,omitempty"`
	WorkPreferenceName *string    `json:"work_preference_name,omitempty"`
	ProfileImageURL    *string    `json:"profile_image_url,omitempty"`
	VideoIntroURL      *string    `json:"video_intro_url,omitempty"`
	IsActive           bool       `json:"is_active"`
	IsEmailVerified    bool       `json:"is_email_verified"`
	LastLoginAt        *time.Time `json:"last_login_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func NewUserResponse(u *models.User) *UserResponse {
	resp := &UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		FullName:         u.FullName,
		MobileNumber:     u.MobileNumber,
		CountryCode:      u.CountryCode,
		CityID:           u.CityID,
		CountryID:        u.CountryID,
		WorkPreferenceID: u.WorkPreferenceID,
		ProfileImageURL:  u.ProfileImageURL,
		VideoIntroURL:    u.VideoIntroURL,
		IsActive:         u.IsActive,
		IsEmailVerified:  u.IsEmailVerified,
		LastLoginAt:      u.LastLoginAt,
		CreatedAt:        u.CreatedAt,
	}
	if u.City != nil {
		resp.CityName = &u.City.Name
	}
	if u.Country != nil {
		resp.CountryName = &u.Country.Name
	}
	if u.WorkPreference != nil {
		resp.WorkPreferenceName = &u.WorkPreference.Name
	}
	return resp
}

// NormalizeEmail lowercases and trims an address; comparisons and storage
// always use this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateRegistration(req *RegisterRequest) *ValidationError {
	var problems []string

	email := NormalizeEmail(req.Email)
	switch {
	case email == "":
		problems = append(problems, "Email is required")
	case len(email) > 255:
		problems = append(problems, "Email must not exceed 255 characters")
	case !emailPattern.MatchString(email):
		problems = append(problems, "Invalid email format")
	}

	if req.Password == "" {
		problems = append(problems, "Password is required")
	} else {
		if len(req.Password) < 8 {
			problems = append(problems, "Password must be at least 8 characters")
		}
		var upper, lower, digit bool
		for _, r := range req.Password {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		if !upper {
			problems = append(problems, "Password must contain at least one uppercase letter")
		}
		if !lower {
			problems = append(problems, "Password must contain at least one lowercase letter")
		}
		if !digit {
			problems = append(problems, "Password must contain at least one number")
		}
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		problems = append(problems, "Full name is required")
	} else if len(fullName) > 255 {
		problems = append(problems, "Full name must not exceed 255 characters")
	}

	if req.MobileNumber != nil && len(*req.MobileNumber) > 20 {
		problems = append(problems, "Mobile number must not exceed 20 characters")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Register creates an account and starts its first refresh chain.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResult, error) {
	if verr := validateRegistration(req); verr != nil {
		return nil, verr
	}

	email := NormalizeEmail(req.Email)

	// Pre-check is an optimization; the unique index decides races.
	if _, err := s.accounts.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:            email,
		PasswordHash:     hash,
		FullName:         strings.TrimSpace(req.FullName),
		MobileNumber:     req.MobileNumber,
		CountryCode:      req.CountryCode,
		CityID:           req.CityID,
		CountryID:        req.CountryID,
		WorkPreferenceID: req.WorkPreferenceID,
		IsActive:         true,
		IsEmailVerified:  false,
	}
	if err := s.accounts.Create(user); err != nil {
		return nil, err
	}

	// Reload with associations for the response view.
	created, err := s.accounts.FindByID(user.ID)
	if err != nil {
		return nil, err
	}

	return s.issueCredentials(created)
}

// Login authenticates and starts a fresh refresh chain. Unknown email and
// wrong password are deliberately the same failure.
func (s *AuthService) Login(req *LoginRequest) (*AuthResult, error) {
	user, err := s.accounts.FindByEmail(NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	now := time.Now()
	if err := s.accounts.UpdateLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	return s.issueCredentials(user)
}

// Refresh exchanges a valid refresh credential for a new pair, consuming the
// old one. Unknown, expired and already-rotated tokens fail identically.
func (s *AuthService) Refresh(req *RefreshRequest) (*AuthResult, error) {
	stored, err := s.tokens.Validate(req.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.accounts.FindByID(stored.UserID)
	if err != nil {
		// Owner gone since issuance: fail closed with the uniform error.
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidRefreshToken
	}

	access, err := s.issuer.AccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.issuer.RefreshValue()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.issuer.RefreshLifetime())
	if err := s.tokens.Rotate(req.RefreshToken, refresh, user.ID, expiresAt); err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         NewUserResponse(user),
	}, nil
}

// issueCredentials mints an access/refresh pair and persists the refresh
// credential. A hash collision in the token space is vanishingly unlikely but
// retry-worthy, not user-facing.
func (s *AuthService) issueCredentials(user *models.User) (*AuthResult, error) {
	access, err := s.issuer.AccessToken(user)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.issuer.RefreshLifetime())

	var refresh string
	for attempt := 0; attempt < 3; attempt++ {
		refresh, err = s.issuer.RefreshValue()
		if err != nil {
			return nil, err
		}
		err = s.tokens.Insert(user.ID, refresh, expiresAt)
		if err == nil {
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         NewUserResponse(user),
	}, nil
}
