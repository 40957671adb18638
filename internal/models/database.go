package models

import (
	"fmt"

	"github.com/devyhq/devy-backend/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&Country{},
		&City{},
		&WorkPreference{},
		&User{},
		&UserProfile{},
		&RefreshToken{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedReferenceData inserts the default countries, cities and work
// preferences used by the registration form. Existing rows are left alone.
func SeedReferenceData() error {
	return SeedReferenceDataOn(DB)
}

// SeedReferenceDataOn is the injectable variant used by tests.
func SeedReferenceDataOn(db *gorm.DB) error {
	var countryCount int64
	db.Model(&Country{}).Count(&countryCount)
	if countryCount == 0 {
		countries := []Country{
			{Name: "United States", Code: "US", PhoneCode: "+1"},
			{Name: "United Kingdom", Code: "GB", PhoneCode: "+44"},
			{Name: "Germany", Code: "DE", PhoneCode: "+49"},
			{Name: "India", Code: "IN", PhoneCode: "+91"},
			{Name: "Singapore", Code: "SG", PhoneCode: "+65"},
		}
		if err := db.Create(&countries).Error; err != nil {
			return err
		}

		cities := []City{
			{Name: "New York", CountryID: countries[0].ID},
			{Name: "San Francisco", CountryID: countries[0].ID},
			{Name: "London", CountryID: countries[1].ID},
			{Name: "Berlin", CountryID: countries[2].ID},
			{Name: "Bangalore", CountryID: countries[3].ID},
			{Name: "Singapore", CountryID: countries[4].ID},
		}
		if err := db.Create(&cities).Error; err != nil {
			return err
		}
	}

	var prefCount int64
	db.Model(&WorkPreference{}).Count(&prefCount)
	if prefCount == 0 {
		prefs := []WorkPreference{
			{Name: "Remote", SortOrder: 1},
			{Name: "Hybrid", SortOrder: 2},
			{Name: "On-site", SortOrder: 3},
			{Name: "Freelance", SortOrder: 4},
		}
		if err := db.Create(&prefs).Error; err != nil {
			return err
		}
	}

	return nil
}
