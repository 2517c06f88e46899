// Package services holds the application logic between controllers and
// repositories. Services accept small store interfaces so tests can swap in
// fakes, and return apperr errors for everything a client can cause.
package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/auth"
)

// AuthUsers is the slice of the user repository the auth service needs.
type AuthUsers interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

// AuthService registers and authenticates users and manages their profiles.
type AuthService struct {
	users AuthUsers
}

func NewAuthService(users AuthUsers) *AuthService {
	return &AuthService{users: users}
}

// Register creates a customer account and returns the user with a signed
// token. Admin accounts are seeded, never registered through the API.
func (s *AuthService) Register(ctx context.Context, name, email, password, phone string) (models.User, string, error) {
	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return models.User{}, "", apperr.Conflict("User already exists")
	case !errors.Is(err, repositories.ErrNotFound):
		return models.User{}, "", fmt.Errorf("register: lookup email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("register: hash password: %w", err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleCustomer,
		Phone:    phone,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		// The unique email index can still fire under a racing register.
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.User{}, "", apperr.Conflict("User already exists")
		}
		return models.User{}, "", fmt.Errorf("register: create user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return models.User{}, "", fmt.Errorf("register: sign token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a signed token. The
// same message is used for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.User{}, "", apperr.Authentication("Invalid email or password")
		}
		return models.User{}, "", fmt.Errorf("login: lookup email: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", apperr.Authentication("Invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return models.User{}, "", fmt.Errorf("login: sign token: %w", err)
	}
	return user, token, nil
}

// ProfileUpdate carries the optional fields of a profile update. Nil and
// empty fields are left untouched.
type ProfileUpdate struct {
	Name      string
	Email     string
	Phone     string
	Password  string
	Addresses []models.Address
}

// UpdateProfile applies a partial update to the caller's own account.
func (s *AuthService) UpdateProfile(ctx context.Context, user models.User, update ProfileUpdate) (models.User, error) {
	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Email != "" {
		user.Email = update.Email
	}
	if update.Phone != "" {
		user.Phone = update.Phone
	}
	if update.Addresses != nil {
		user.Addresses = update.Addresses
	}
	if update.Password != "" {
		hash, err := auth.HashPassword(update.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("update profile: hash password: %w", err)
		}
		user.Password = hash
	}

	if err := s.users.Update(ctx, &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.User{}, apperr.Conflict("Email already in use")
		}
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}
