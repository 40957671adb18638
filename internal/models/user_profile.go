package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the extended developer profile, one per user.
// Skills and preferred technologies are stored as JSON arrays.
type UserProfile struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	UserID                uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Bio                   *string   `gorm:"size:2000" json:"bio,omitempty"`
	Skills                *string   `gorm:"size:2000" json:"skills,omitempty"`
	ExperienceYears       *int      `json:"experience_years,omitempty"`
	LinkedInURL           *string   `gorm:"size:500" json:"linkedin_url,omitempty"`
	GitHubURL             *string   `gorm:"size:500" json:"github_url,omitempty"`
	PortfolioURL          *string   `gorm:"size:500" json:"portfolio_url,omitempty"`
	ResumeURL             *string   `gorm:"size:500" json:"resume_url,omitempty"`
	PreferredTechnologies *string   `gorm:"size:2000" json:"preferred_technologies,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }
