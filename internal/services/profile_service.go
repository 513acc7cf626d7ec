package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/recruitwarx/portal/internal/app"
	"github.com/recruitwarx/portal/internal/dtos"
	"github.com/recruitwarx/portal/internal/models"
	"gorm.io/gorm"
)

type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// Get returns the user's profile with the completeness percentage and the
// structured experience/education blobs decoded for display.
func (s *ProfileService) Get(userID uint) (*dtos.ProfileView, error) {
	var user models.User
	err := s.DB.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: profile", app.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}

	view := &dtos.ProfileView{
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Email:             user.Email,
		Phone:             user.Phone,
		Location:          user.Location,
		Bio:               user.Bio,
		Role:              string(user.Role),
		Skills:            user.Skills,
		ProfileCompletion: completion(&user),
		WorkExperience:    []dtos.ExperienceItem{},
		Education:         []dtos.EducationItem{},
	}

	// Malformed blobs degrade to empty lists rather than failing the read.
	if user.WorkExperience != "" {
		var items []dtos.ExperienceItem
		if json.Unmarshal([]byte(user.WorkExperience), &items) == nil {
			view.WorkExperience = items
		}
	}
	if user.Education != "" {
		var items []dtos.EducationItem
		if json.Unmarshal([]byte(user.Education), &items) == nil {
			view.Education = items
		}
	}
	return view, nil
}

// Update writes the editable profile fields.
func (s *ProfileService) Update(userID uint, req *dtos.UpdateProfileRequest) error {
	var taken int64
	err := s.DB.Model(&models.User{}).
		Where("email = ? AND id <> ?", req.Email, userID).
		Count(&taken).Error
	if err != nil {
		return fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	if taken > 0 {
		return fmt.Errorf("%w: email already in use", app.ErrConflict)
	}

	res := s.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"email":      req.Email,
		"phone":      req.Phone,
		"location":   req.Location,
		"bio":        req.Bio,
	})
	if res.Error != nil {
		return fmt.Errorf("%w: %v", app.ErrDatastore, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: profile", app.ErrNotFound)
	}
	return nil
}

// Completion returns the completeness percentage for a user id.
func (s *ProfileService) Completion(userID uint) (int, error) {
	var user models.User
	err := s.DB.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: profile", app.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	return completion(&user), nil
}

// completion is the share of the seven checklist fields that are filled,
// rounded to a whole percent. 100 means every field is populated.
func completion(u *models.User) int {
	fields := []string{u.FirstName, u.LastName, u.Email, u.Phone, u.Location, u.Bio, u.Skills}
	filled := 0
	for _, f := range fields {
		if f != "" {
			filled++
		}
	}
	return int(float64(filled)/float64(len(fields))*100 + 0.5)
}
