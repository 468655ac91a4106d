// Package app holds the application services and business logic.
package app

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"tasktrack/internal/domain"
	"tasktrack/internal/token"
)

// AuthResult carries the credentials issued after a successful registration
// or login.
type AuthResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *domain.User `json:"user"`
}

// AuthService coordinates registration, login, and existence checks over the
// user repository, the password hasher, and the token issuer.
type AuthService struct {
	users  domain.UserRepository
	tokens *token.Issuer
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, tokens *token.Issuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account and issues a token for it.
//
// The username lookup here is advisory: it catches the common case early,
// but two concurrent registrations can both pass it. The store's uniqueness
// constraint is the final authority and Create surfaces its rejection as
// ErrDuplicateUsername.
func (s *AuthService) Register(ctx context.Context, username, password, firstName, lastName string) (*AuthResult, error) {
	err := validation.Errors{
		"username": validation.Validate(username, validation.Required, validation.RuneLength(1, 50)),
		// bcrypt operates on at most 72 bytes of input, so this bound is
		// deliberately byte-based.
		"password":  validation.Validate(password, validation.Required, validation.Length(1, 72)),
		"firstName": validation.Validate(firstName, validation.RuneLength(0, 100)),
		"lastName":  validation.Validate(lastName, validation.RuneLength(0, 100)),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	existing, err := s.users.GetActiveByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateUsername
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	return s.issue(user)
}

// Login verifies the credentials and issues a token. An unknown username and
// a wrong password fail identically so the response does not reveal which
// field was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	err := validation.Errors{
		"username": validation.Validate(username, validation.Required),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	user, err := s.users.GetActiveByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil || !VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

// UserExists reports whether an active account with the given username
// exists. Absence is a normal answer, not an error.
func (s *AuthService) UserExists(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}
	user, err := s.users.GetActiveByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("look up user: %w", err)
	}
	return user != nil, nil
}

func (s *AuthService) issue(user *domain.User) (*AuthResult, error) {
	tok, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: tok, ExpiresAt: expiresAt, User: user}, nil
}
