package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"tasktrack/internal/domain"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// Interface assertions.
var _ domain.UserRepository = (*DB)(nil)

const userColumns = "id, username, password_hash, first_name, last_name, created_at, updated_at, is_deleted"

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.CreatedAt, &u.UpdatedAt, &u.IsDeleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetActiveByUsername retrieves a non-deleted user by username.
func (d *DB) GetActiveByUsername(ctx context.Context, username string) (*domain.User, error) {
	return scanUser(d.sql.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = $1 AND is_deleted = FALSE",
		username,
	))
}

// GetActiveByID retrieves a non-deleted user by ID.
func (d *DB) GetActiveByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(d.sql.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1 AND is_deleted = FALSE",
		id,
	))
}

// Create inserts a new user. The unique constraint on username is the
// authority on duplicates; its violation surfaces as ErrDuplicateUsername.
func (d *DB) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := scanUser(d.sql.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash, first_name, last_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+userColumns,
		user.Username, user.PasswordHash, user.FirstName, user.LastName,
		user.CreatedAt.UTC(), user.UpdatedAt.UTC(),
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, err
	}
	return created, nil
}

// Update persists profile field changes for an active user.
func (d *DB) Update(ctx context.Context, user *domain.User) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE users SET first_name = $1, last_name = $2, updated_at = $3 WHERE id = $4 AND is_deleted = FALSE",
		user.FirstName, user.LastName, user.UpdatedAt.UTC(), user.ID,
	)
	return err
}

// SoftDeleteUser marks a user deleted. The row is kept because tasks
// reference it.
func (d *DB) SoftDeleteUser(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE users SET is_deleted = TRUE, updated_at = $1 WHERE id = $2",
		time.Now().UTC(), id,
	)
	return err
}
