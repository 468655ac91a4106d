// Package memory implements in-memory repositories for development and
// testing. They enforce the same contracts as the postgres adapter: username
// uniqueness, owner scoping, and soft-delete filtering.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"tasktrack/internal/domain"
)

// DB implements the domain repositories in memory.
type DB struct {
	mu    sync.Mutex
	users []*domain.User
	tasks []*domain.Task

	userIDCounter int64
	taskIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.TaskRepository = (*DB)(nil)

// --- UserRepository ---

// GetActiveByUsername returns the non-deleted user with the given username.
func (db *DB) GetActiveByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username && !u.IsDeleted {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetActiveByID returns the non-deleted user with the given id.
func (db *DB) GetActiveByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id && !u.IsDeleted {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Create adds a user, rejecting duplicate usernames. The check and the
// insert happen under one lock, which is the in-memory stand-in for the
// store-level unique constraint. Like that constraint, the check spans
// soft-deleted rows: deleting an account does not free its username.
func (db *DB) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == user.Username {
			return nil, domain.ErrDuplicateUsername
		}
	}

	db.userIDCounter++
	cp := *user
	cp.ID = db.userIDCounter
	db.users = append(db.users, &cp)

	out := cp
	return &out, nil
}

// Update persists profile changes for an active user.
func (db *DB) Update(ctx context.Context, user *domain.User) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == user.ID && !u.IsDeleted {
			u.FirstName = user.FirstName
			u.LastName = user.LastName
			u.UpdatedAt = user.UpdatedAt
			return nil
		}
	}
	return nil
}

// SoftDeleteUser flags a user as deleted without removing the record.
func (db *DB) SoftDeleteUser(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			u.IsDeleted = true
			u.UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

// --- TaskRepository ---

// GetActiveTask returns the non-deleted task if it belongs to userID.
func (db *DB) GetActiveTask(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, t := range db.tasks {
		if t.ID == taskID && t.UserID == userID && !t.IsDeleted {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

// ListActiveTasks lists the owner's non-deleted tasks, newest first.
func (db *DB) ListActiveTasks(ctx context.Context, userID int64, completed *bool) ([]domain.Task, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := []domain.Task{}
	for _, t := range db.tasks {
		if t.UserID != userID || t.IsDeleted {
			continue
		}
		if completed != nil && t.IsCompleted != *completed {
			continue
		}
		result = append(result, *t)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// CreateTask adds a task.
func (db *DB) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.taskIDCounter++
	cp := *task
	cp.ID = db.taskIDCounter
	db.tasks = append(db.tasks, &cp)

	out := cp
	return &out, nil
}

// UpdateTask persists task changes scoped to the owner.
func (db *DB) UpdateTask(ctx context.Context, task *domain.Task) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, t := range db.tasks {
		if t.ID == task.ID && t.UserID == task.UserID && !t.IsDeleted {
			t.Title = task.Title
			t.Description = task.Description
			t.IsCompleted = task.IsCompleted
			t.UpdatedAt = task.UpdatedAt
			return nil
		}
	}
	return nil
}

// SoftDeleteTask flags an owned task as deleted.
func (db *DB) SoftDeleteTask(ctx context.Context, userID, taskID int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, t := range db.tasks {
		if t.ID == taskID && t.UserID == userID {
			t.IsDeleted = true
			t.UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}
