package models

import "time"

// City is reference data, scoped to a country.
type City struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	CountryID     uint      `gorm:"index;not null" json:"country_id"`
	StateProvince *string   `gorm:"size:100" json:"state_province,omitempty"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Country *Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}

func (City) TableName() string { return "cities" }
