package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tasktrack/internal/domain"
)

var _ domain.TaskRepository = (*DB)(nil)

const taskColumns = "id, title, description, is_completed, user_id, created_at, updated_at, is_deleted"

// GetActiveTask retrieves a non-deleted task scoped to its owner. A task
// owned by someone else scans as no rows, same as an absent one.
func (d *DB) GetActiveTask(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	var t domain.Task
	err := d.sql.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = $1 AND user_id = $2 AND is_deleted = FALSE",
		taskID, userID,
	).Scan(&t.ID, &t.Title, &t.Description, &t.IsCompleted, &t.UserID,
		&t.CreatedAt, &t.UpdatedAt, &t.IsDeleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListActiveTasks returns the owner's non-deleted tasks, newest first,
// optionally filtered by completion state.
func (d *DB) ListActiveTasks(ctx context.Context, userID int64, completed *bool) ([]domain.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks WHERE user_id = $1 AND is_deleted = FALSE"
	args := []any{userID}
	if completed != nil {
		query += " AND is_completed = $2"
		args = append(args, *completed)
	}
	query += " ORDER BY created_at DESC"

	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.IsCompleted, &t.UserID,
			&t.CreatedAt, &t.UpdatedAt, &t.IsDeleted); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CreateTask inserts a new task.
func (d *DB) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	var t domain.Task
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO tasks (title, description, is_completed, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+taskColumns,
		task.Title, task.Description, task.IsCompleted, task.UserID,
		task.CreatedAt.UTC(), task.UpdatedAt.UTC(),
	).Scan(&t.ID, &t.Title, &t.Description, &t.IsCompleted, &t.UserID,
		&t.CreatedAt, &t.UpdatedAt, &t.IsDeleted)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTask persists field changes, still scoped to the owner.
func (d *DB) UpdateTask(ctx context.Context, task *domain.Task) error {
	_, err := d.sql.ExecContext(ctx,
		`UPDATE tasks SET title = $1, description = $2, is_completed = $3, updated_at = $4
		 WHERE id = $5 AND user_id = $6 AND is_deleted = FALSE`,
		task.Title, task.Description, task.IsCompleted, task.UpdatedAt.UTC(),
		task.ID, task.UserID,
	)
	return err
}

// SoftDeleteTask marks an owned task deleted; later queries skip it.
func (d *DB) SoftDeleteTask(ctx context.Context, userID, taskID int64) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE tasks SET is_deleted = TRUE, updated_at = $1 WHERE id = $2 AND user_id = $3",
		time.Now().UTC(), taskID, userID,
	)
	return err
}
