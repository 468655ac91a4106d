package app

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"tasktrack/internal/domain"
)

// UserService handles profile operations. The target of every operation must
// be the authenticated subject itself; acting on any other account is
// forbidden regardless of whether it exists.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// Get returns the caller's own profile.
func (s *UserService) Get(ctx context.Context, subjectID, targetID int64) (*domain.User, error) {
	if subjectID != targetID {
		return nil, domain.ErrForbidden
	}
	user, err := s.users.GetActiveByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// Update changes the caller's own profile fields.
func (s *UserService) Update(ctx context.Context, subjectID, targetID int64, firstName, lastName string) (*domain.User, error) {
	if subjectID != targetID {
		return nil, domain.ErrForbidden
	}
	err := validation.Errors{
		"firstName": validation.Validate(firstName, validation.RuneLength(0, 100)),
		"lastName":  validation.Validate(lastName, validation.RuneLength(0, 100)),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	user, err := s.users.GetActiveByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete soft-deletes the caller's own account. The row is kept so tasks
// that reference it stay historically consistent.
func (s *UserService) Delete(ctx context.Context, subjectID, targetID int64) error {
	if subjectID != targetID {
		return domain.ErrForbidden
	}
	user, err := s.users.GetActiveByID(ctx, targetID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := s.users.SoftDeleteUser(ctx, targetID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
