package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emre/grievancehub/internal/app/models"
	"github.com/emre/grievancehub/internal/pkg/apperrors"
	"github.com/emre/grievancehub/internal/pkg/auth"
	"github.com/emre/grievancehub/internal/pkg/validation"
)

// AuthService handles staff registration and login
type AuthService struct {
	users      UserStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
	}
}

// TokenResult is a successful login outcome
type TokenResult struct {
	AccessToken string
	ExpiresIn   int
	User        *models.User
}

// Register creates a staff account
func (s *AuthService) Register(ctx context.Context, email, password, fullName string, role models.RoleType) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !validation.CompiledPatterns.Email.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email", apperrors.ErrValidationFailed)
	}

	if len(password) < validation.PasswordMinLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}

	nameOK := validation.NewStringValidation(fullName).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate()
	if !nameOK {
		return nil, fmt.Errorf("%w: invalid full name", apperrors.ErrValidationFailed)
	}

	if role == "" {
		role = models.RoleStaff
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(fullName),
		RoleType:     role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password collapse into the same error so the response does not leak
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &TokenResult{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		User:        user,
	}, nil
}
