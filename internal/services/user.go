package services

import (
	"strings"
	"time"

	"github.com/devyhq/devy-backend/pkg/response"
	"github.com/google/uuid"
)

// UserService covers the account surface outside the auth flows: lookup,
// listing, profile updates and deletion.
type UserService struct {
	accounts AccountRepository
}

func NewUserService(accounts AccountRepository) *UserService {
	return &UserService{accounts: accounts}
}

// UpdateUserRequest carries a partial profile update; nil fields are left
// untouched.
type UpdateUserRequest struct {
	FullName         *string `json:"full_name"`
	MobileNumber     *string `json:"mobile_number"`
	CountryCode      *string `json:"country_code"`
	CityID           *uint   `json:"city_id"`
	CountryID        *uint   `json:"country_id"`
	WorkPreferenceID *uint   `json:"work_preference_id"`
	ProfileImageURL  *string `json:"profile_image_url"`
	VideoIntroURL    *string `json:"video_intro_url"`
}

func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.accounts.FindByID(id)
	if err != nil {
		return nil, err
	}
	return NewUserResponse(user), nil
}

// List returns users newest-first with the total count for paging.
func (s *UserService) List(pageNumber, pageSize int) (*response.PagedResult, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	total, err := s.accounts.Count()
	if err != nil {
		return nil, err
	}

	users, err := s.accounts.List((pageNumber-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	views := make([]*UserResponse, 0, len(users))
	for i := range users {
		views = append(views, NewUserResponse(&users[i]))
	}

	paged := response.NewPagedResult(views, pageNumber, pageSize, total)
	return &paged, nil
}

func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	user, err := s.accounts.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil && strings.TrimSpace(*req.FullName) != "" {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.MobileNumber != nil {
		user.MobileNumber = req.MobileNumber
	}
	if req.CountryCode != nil {
		user.CountryCode = req.CountryCode
	}
	if req.CityID != nil {
		user.CityID = req.CityID
	}
	if req.CountryID != nil {
		user.CountryID = req.CountryID
	}
	if req.WorkPreferenceID != nil {
		user.WorkPreferenceID = req.WorkPreferenceID
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = req.ProfileImageURL
	}
	if req.VideoIntroURL != nil {
		user.VideoIntroURL = req.VideoIntroURL
	}
	user.UpdatedAt = time.Now()

	if err := s.accounts.Save(user); err != nil {
		return nil, err
	}

	updated, err := s.accounts.FindByID(id)
	if err != nil {
		return nil, err
	}
	return NewUserResponse(updated), nil
}

func (s *UserService) Delete(id uuid.UUID) error {
	return s.accounts.Delete(id)
}
