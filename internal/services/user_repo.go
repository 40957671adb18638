package services

import (
	"errors"
	"time"

	"github.com/devyhq/devy-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountRepository is the persistence contract for user accounts. Lookups
// that feed API views preload the reference-data associations.
type AccountRepository interface {
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	// Create inserts the account. A unique-constraint violation on the email
	// column is reported as ErrEmailTaken; the index is the authoritative
	// duplicate guard, not the caller's pre-check.
	Create(user *models.User) error
	Save(user *models.User) error
	UpdateLastLogin(id uuid.UUID, at time.Time) error
	Delete(id uuid.UUID) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
}

type gormAccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &gormAccountRepository{db: db}
}

func (r *gormAccountRepository) withAssociations() *gorm.DB {
	return r.db.
		Preload("City.Country").
		Preload("City").
		Preload("Country").
		Preload("WorkPreference")
}

func (r *gormAccountRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.withAssociations().Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormAccountRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.withAssociations().Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormAccountRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *gormAccountRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *gormAccountRepository) UpdateLastLogin(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}

func (r *gormAccountRepository) Delete(id uuid.UUID) error {
	res := r.db.Where("id = ?", id).Delete(&models.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *gormAccountRepository) List(offset, limit int) ([]models.User, error) {
	var users []models.User
	err := r.withAssociations().
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *gormAccountRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
