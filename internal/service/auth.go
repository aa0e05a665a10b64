package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"food_delivery/internal/domain"
	"food_delivery/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PasswordCost is the bcrypt work factor for stored passwords
const PasswordCost = 10

// AuthService registers users and issues tokens for both principals
type AuthService struct {
	db          *gorm.DB
	userSecret  string
	adminSecret string
}

// NewAuthService returns an AuthService signing with the given secrets
func NewAuthService(db *gorm.DB, userSecret, adminSecret string) *AuthService {
	return &AuthService{db: db, userSecret: userSecret, adminSecret: adminSecret}
}

// Register creates a user. Username is checked before email, so a taken
// username is reported even when the email is also taken.
func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	username, email = normalizeUsername(username), strings.TrimSpace(email) // Same form Login looks up
	if username == "" || email == "" || password == "" {
		return newError(ErrValidation, "All fields are required")
	}
	db := s.db.WithContext(ctx) // Scope queries to the request
	if err := s.checkTaken(db, username, email); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost) // Hash the password
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{Username: username, Email: email, Password: string(hash), Cart: []domain.CartLine{}} // New users start with an empty cart
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent registration won the unique index after our checks
			if conflict := s.checkTaken(db, username, email); conflict != nil {
				return conflict
			}
			return newError(ErrConflict, "Username already exists")
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// checkTaken reports which of username or email is already registered
func (s *AuthService) checkTaken(db *gorm.DB, username, email string) error {
	taken, err := exists(db, &domain.User{}, "username = ?", username)
	if err != nil {
		return err
	}
	if taken {
		return newError(ErrConflict, "Username already exists")
	}
	if taken, err = exists(db, &domain.User{}, "email = ?", email); err != nil {
		return err
	}
	if taken {
		return newError(ErrConflict, "Email already registered")
	}
	return nil
}

// Login verifies user credentials and returns a signed user token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("username = ?", normalizeUsername(username)).First(&user).Error // Find user by username
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", newError(ErrNotFound, "Invalid username") // Unknown username
	}
	if err != nil {
		return "", err // Store failure
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", newError(ErrUnauthorized, "Username and password do not match")
	}
	return utils.GenerateUserJWT(user.ID, user.Username, s.userSecret) // Issue a 24h user token
}

// AdminLogin verifies admin credentials and returns a signed admin token
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	var admin domain.AdminUser
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error // Find admin by username
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", newError(ErrUnauthorized, "Invalid username")
	}
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", newError(ErrUnauthorized, "Invalid password")
	}
	return utils.GenerateAdminJWT(admin.Username, s.adminSecret) // Issue a 24h admin token
}

// normalizeUsername is the single form usernames are stored and looked up in
func normalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// exists reports whether any row of model matches query
func exists(db *gorm.DB, model any, query string, args ...any) (bool, error) {
	var n int64
	if err := db.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
