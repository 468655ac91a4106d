package app

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"tasktrack/internal/domain"
)

// TaskService encapsulates to-do item use cases. Every operation is scoped
// to the authenticated owner: a task belonging to another user behaves
// exactly like a task that does not exist.
type TaskService struct {
	tasks domain.TaskRepository
}

// NewTaskService creates a TaskService backed by the given repository.
func NewTaskService(tasks domain.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

func validateTaskFields(title, description string) error {
	err := validation.Errors{
		"title":       validation.Validate(title, validation.Required, validation.RuneLength(1, 100)),
		"description": validation.Validate(description, validation.RuneLength(0, 255)),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	return nil
}

// Create stores a new task. The owner is always the authenticated subject;
// any client-supplied owner value never reaches this method.
func (s *TaskService) Create(ctx context.Context, ownerID int64, title, description string) (*domain.Task, error) {
	if err := validateTaskFields(title, description); err != nil {
		return nil, err
	}

	now := time.Now()
	task, err := s.tasks.CreateTask(ctx, &domain.Task{
		Title:       title,
		Description: description,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Get returns the task with the given id if the caller owns it.
func (s *TaskService) Get(ctx context.Context, ownerID, taskID int64) (*domain.Task, error) {
	if taskID <= 0 {
		return nil, fmt.Errorf("%w: invalid task id", domain.ErrInvalidInput)
	}
	task, err := s.tasks.GetActiveTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	return task, nil
}

// List returns the caller's tasks, optionally filtered by completion state.
// A nil filter returns everything that is not soft-deleted.
func (s *TaskService) List(ctx context.Context, ownerID int64, completed *bool) ([]domain.Task, error) {
	items, err := s.tasks.ListActiveTasks(ctx, ownerID, completed)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return items, nil
}

// Update modifies an existing task after an ownership-scoped load.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID int64, title, description string, isCompleted bool) (*domain.Task, error) {
	if err := validateTaskFields(title, description); err != nil {
		return nil, err
	}

	task, err := s.Get(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Title = title
	task.Description = description
	task.IsCompleted = isCompleted
	task.UpdatedAt = time.Now()

	if err := s.tasks.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete soft-deletes a task after an ownership-scoped load.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	if _, err := s.Get(ctx, ownerID, taskID); err != nil {
		return err
	}
	if err := s.tasks.SoftDeleteTask(ctx, ownerID, taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
