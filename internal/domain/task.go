package domain

import (
	"context"
	"time"
)

// Task represents a to-do item owned by exactly one user. UserID is set at
// creation time and never changes.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	IsDeleted   bool      `json:"-"`
}

// TaskRepository defines the port for task persistence operations.
//
// Every lookup is scoped to the owning user: a task that exists but belongs
// to someone else is indistinguishable from one that does not exist, so the
// repository returns (nil, nil) for both. Soft-deleted tasks are excluded.
type TaskRepository interface {
	GetActiveTask(ctx context.Context, userID, taskID int64) (*Task, error)
	ListActiveTasks(ctx context.Context, userID int64, completed *bool) ([]Task, error)
	CreateTask(ctx context.Context, task *Task) (*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	SoftDeleteTask(ctx context.Context, userID, taskID int64) error
}
