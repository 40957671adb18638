package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered developer account.
type User struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email                  string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash           string     `gorm:"size:255;not null" json:"-"`
	FullName               string     `gorm:"size:255;not null" json:"full_name"`
	MobileNumber           *string    `gorm:"size:20" json:"mobile_number,omitempty"`
	CountryCode            *string    `gorm:"size:10" json:"country_code,omitempty"`
	CityID                 *uint      `gorm:"index" json:"city_id,omitempty"`
	CountryID              *uint      `gorm:"index" json:"country_id,omitempty"`
	WorkPreferenceID       *uint      `gorm:"index" json:"work_preference_id,omitempty"`
	ProfileImageURL        *string    `gorm:"size:500" json:"profile_image_url,omitempty"`
	VideoIntroURL          *string    `gorm:"size:500" json:"video_intro_url,omitempty"`
	IsActive               bool       `gorm:"default:true" json:"is_active"`
	IsEmailVerified        bool       `gorm:"default:false" json:"is_email_verified"`
	EmailVerificationToken *string    `gorm:"size:255" json:"-"`
	PasswordResetToken     *string    `gorm:"size:255" json:"-"`
	PasswordResetExpires   *time.Time `json:"-"`
	LastLoginAt            *time.Time `json:"last_login_at,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`

	City           *City           `gorm:"foreignKey:CityID" json:"city,omitempty"`
	Country        *Country        `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	WorkPreference *WorkPreference `gorm:"foreignKey:WorkPreferenceID" json:"work_preference,omitempty"`
	Profile        *UserProfile    `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (User) TableName() string { return "users" }

// BeforeCreate assigns a UUID when none was set by the caller.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
