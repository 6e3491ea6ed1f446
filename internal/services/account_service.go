package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Mahesh20s/job-portal/internal/apperr"
	"github.com/Mahesh20s/job-portal/internal/auth"
	"github.com/Mahesh20s/job-portal/internal/dtos"
	"github.com/Mahesh20s/job-portal/internal/models"
)

type AccountService struct {
	DB *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{
		DB: db,
	}
}

// Register creates the account and its profile in one transaction. A failure
// anywhere leaves no rows behind.
func (s *AccountService) Register(req *dtos.RegisterRequest) (*models.User, error) {
	var n int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, apperr.Conflict("This email is already registered.").WithDetail("field", "email")
	}
	if err := s.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, apperr.Conflict("A user with that username already exists.").WithDetail("field", "username")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := &models.UserProfile{
			UserID:     user.ID,
			IsEmployer: req.IsEmployer,
		}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		user.Profile = profile
		return nil
	})
	if err != nil {
		// Concurrent duplicate slipped past the pre-checks; the unique
		// indexes hold the line.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("This email is already registered.").WithDetail("field", "email")
		}
		return nil, err
	}
	return user, nil
}

// Login checks the credentials. The error is identical for an unknown
// username and a wrong password.
func (s *AccountService) Login(req *dtos.LoginRequest) (*models.User, error) {
	var user models.User
	err := s.DB.Preload("Profile").Where("username = ?", req.Username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Unauthorized("Invalid username or password.")
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperr.Unauthorized("Invalid username or password.")
	}
	return &user, nil
}
