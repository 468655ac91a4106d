package domain

import "errors"

// Error taxonomy shared by services and adapters. Services classify failures
// with these sentinels; the HTTP adapter translates them to status codes.
var (
	// ErrInvalidInput indicates missing or malformed request data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateUsername indicates the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials indicates a failed login. It is deliberately the
	// same for an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrTokenExpired indicates the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid indicates a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrForbidden indicates an authenticated caller acting on a resource
	// it does not own.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound indicates the resource is absent or owned by another user.
	ErrNotFound = errors.New("not found")
)
