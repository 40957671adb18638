package models

import "time"

// Country is reference data for registration forms.
type Country struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Code      string    `gorm:"uniqueIndex;size:2;not null" json:"code"`
	PhoneCode string    `gorm:"size:10" json:"phone_code"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Cities []City `gorm:"foreignKey:CountryID" json:"cities,omitempty"`
}

func (Country) TableName() string { return "countries" }
