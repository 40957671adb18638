package services

import (
	"github.com/devyhq/devy-backend/internal/models"
	"gorm.io/gorm"
)

// LocationService serves the reference data behind the registration form.
type LocationService struct {
	db *gorm.DB
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{db: db}
}

type CountryDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	PhoneCode string `json:"phone_code"`
}

type CityDTO struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	CountryID     uint    `json:"country_id"`
	CountryName   string  `json:"country_name"`
	StateProvince *string `json:"state_province,omitempty"`
}

type WorkPreferenceDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// LocationData bundles everything the registration form needs in one call.
type LocationData struct {
	Countries       []CountryDTO        `json:"countries"`
	WorkPreferences []WorkPreferenceDTO `json:"work_preferences"`
}

func (s *LocationService) GetCountries() ([]CountryDTO, error) {
	var countries []models.Country
	err := s.db.Where("is_active = ?", true).Order("name").Find(&countries).Error
	if err != nil {
		return nil, err
	}

	dtos := make([]CountryDTO, 0, len(countries))
	for _, c := range countries {
		dtos = append(dtos, CountryDTO{ID: c.ID, Name: c.Name, Code: c.Code, PhoneCode: c.PhoneCode})
	}
	return dtos, nil
}

func (s *LocationService) GetCitiesByCountry(countryID uint) ([]CityDTO, error) {
	var cities []models.City
	err := s.db.Preload("Country").
		Where("country_id = ? AND is_active = ?", countryID, true).
		Order("name").
		Find(&cities).Error
	if err != nil {
		return nil, err
	}

	dtos := make([]CityDTO, 0, len(cities))
	for _, c := range cities {
		dto := CityDTO{ID: c.ID, Name: c.Name, CountryID: c.CountryID, StateProvince: c.StateProvince}
		if c.Country != nil {
			dto.CountryName = c.Country.Name
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (s *LocationService) GetWorkPreferences() ([]WorkPreferenceDTO, error) {
	var prefs []models.WorkPreference
	err := s.db.Where("is_active = ?", true).Order("sort_order").Find(&prefs).Error
	if err != nil {
		return nil, err
	}

	dtos := make([]WorkPreferenceDTO, 0, len(prefs))
	for _, p := range prefs {
		dtos = append(dtos, WorkPreferenceDTO{ID: p.ID, Name: p.Name, Description: p.Description})
	}
	return dtos, nil
}

func (s *LocationService) GetLocationData() (*LocationData, error) {
	countries, err := s.GetCountries()
	if err != nil {
		return nil, err
	}
	prefs, err := s.GetWorkPreferences()
	if err != nil {
		return nil, err
	}
	return &LocationData{Countries: countries, WorkPreferences: prefs}, nil
}
