// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// User represents a registered account in the system. PasswordHash is never
// serialized; the JSON view of a User is the public profile.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	IsDeleted    bool      `json:"-"`
}

// UserRepository defines the port for user persistence operations.
//
// The GetActive* lookups exclude soft-deleted rows and return (nil, nil) when
// no matching user exists. Create returns ErrDuplicateUsername when the
// store's uniqueness constraint rejects the insert; that constraint, not the
// caller's pre-check, is the authority on uniqueness.
type UserRepository interface {
	GetActiveByUsername(ctx context.Context, username string) (*User, error)
	GetActiveByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, user *User) error
	SoftDeleteUser(ctx context.Context, id int64) error
}
