// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expensevault/expensevault/internal/auth"
	"github.com/expensevault/expensevault/internal/metrics"
	"github.com/expensevault/expensevault/internal/model"
	"github.com/expensevault/expensevault/internal/repository"
)

// Auth service errors.
var (
	ErrFullNameRequired = errors.New("full name is required")
	ErrInvalidEmail     = errors.New("valid email is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrEmailTaken       = errors.New("user already exists")
	// ErrInvalidCredentials is deliberately the same for an unknown
	// email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// emailRegex is a shape check (local@domain.tld), not full RFC 5322.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// AuthService handles registration and login.
type AuthService struct {
	repo    *repository.Repository
	tokens  *auth.TokenService
	metrics metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.Repository, tokens *auth.TokenService, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		repo:    repo,
		tokens:  tokens,
		metrics: recorder,
	}
}

// RegisterInput defines input for creating an account.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// ValidateRegisterInput checks signup fields in order: full name,
// email shape, password length.
func ValidateRegisterInput(input RegisterInput) error {
	if strings.TrimSpace(input.FullName) == "" {
		return ErrFullNameRequired
	}
	if !emailRegex.MatchString(input.Email) {
		return ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Register creates an account and returns it with a fresh bearer token.
// A duplicate email is reported as ErrEmailTaken whether the pre-check
// or the insert-time unique constraint catches it.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	if err := ValidateRegisterInput(input); err != nil {
		return nil, "", err
	}

	if _, err := s.repo.GetUserByEmail(ctx, input.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		FullName:     strings.TrimSpace(input.FullName),
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		// A concurrent signup may win between the pre-check and the
		// insert; the unique index reports it the same way.
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncUserRegistered()

	return user, token, nil
}

// Login authenticates by email and password and returns the user with
// a fresh bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginFailed()
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.metrics.IncLoginFailed()
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncLoginSucceeded()

	return user, token, nil
}
