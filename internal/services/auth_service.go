package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/recruitwarx/portal/internal/app"
	"github.com/recruitwarx/portal/internal/dtos"
	"github.com/recruitwarx/portal/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Login resolves an active user by username or email and verifies the
// password. Unknown identifier and bad password are the same failure;
// the client cannot tell which half was wrong.
func (s *AuthService) Login(identifier, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("(username = ? OR email = ?) AND is_active = ?", identifier, identifier, true).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: invalid username or password", app.ErrUnauthorized)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, fmt.Errorf("%w: invalid username or password", app.ErrUnauthorized)
	}

	now := time.Now()
	if err := s.DB.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	user.LastLogin = &now
	return &user, nil
}

// Register creates a new user unless the username or email is taken.
func (s *AuthService) Register(req *dtos.RegisterRequest) (*models.User, error) {
	var count int64
	err := s.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", req.Username, req.Email).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: username or email already exists", app.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		Role:      models.Role(req.Role),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		IsActive:  true,
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	return user, nil
}
