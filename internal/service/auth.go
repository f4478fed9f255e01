package service

import (
	"errors"
	"regexp"

	"gorm.io/gorm"

	"github.com/foodplanner/backend/internal/models"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrUserNotFound = errors.New("user not found")
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// AuthService owns account creation and credential verification. Passwords
// are stored and compared verbatim; VerifyCredentials is the single place a
// hashing scheme could be introduced without touching callers.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Signup creates a new account. Username and email must each be unused; the
// email must match the accepted address format.
func (s *AuthService) Signup(username, email, password string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: password,
	}
	return s.db.Create(&user).Error
}

// VerifyCredentials reports whether the username exists with exactly the
// given password.
func (s *AuthService) VerifyCredentials(username, password string) (bool, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Password == password, nil
}

// UserExists reports whether a username is registered.
func (s *AuthService) UserExists(username string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
