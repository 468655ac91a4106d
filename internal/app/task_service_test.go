package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tasktrack/internal/domain"
)

type mockTaskRepo struct {
	getFn        func(ctx context.Context, userID, taskID int64) (*domain.Task, error)
	listFn       func(ctx context.Context, userID int64, completed *bool) ([]domain.Task, error)
	createFn     func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	updateFn     func(ctx context.Context, task *domain.Task) error
	softDeleteFn func(ctx context.Context, userID, taskID int64) error
}

func (m *mockTaskRepo) GetActiveTask(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, taskID)
	}
	return nil, nil
}

func (m *mockTaskRepo) ListActiveTasks(ctx context.Context, userID int64, completed *bool) ([]domain.Task, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, completed)
	}
	return nil, nil
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if m.createFn != nil {
		return m.createFn(ctx, task)
	}
	created := *task
	created.ID = 1
	return &created, nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, task *domain.Task) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, task)
	}
	return nil
}

func (m *mockTaskRepo) SoftDeleteTask(ctx context.Context, userID, taskID int64) error {
	if m.softDeleteFn != nil {
		return m.softDeleteFn(ctx, userID, taskID)
	}
	return nil
}

func TestTaskService_Create_ForcesOwner(t *testing.T) {
	ctx := context.Background()
	var stored *domain.Task

	repo := &mockTaskRepo{
		createFn: func(ctx context.Context, task *domain.Task) (*domain.Task, error) {
			created := *task
			created.ID = 10
			stored = &created
			return &created, nil
		},
	}
	svc := NewTaskService(repo)

	task, err := svc.Create(ctx, 5, "buy milk", "two liters")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if task.ID != 10 {
		t.Errorf("task id = %d, want 10", task.ID)
	}
	if stored.UserID != 5 {
		t.Errorf("owner = %d, want the authenticated subject 5", stored.UserID)
	}
	if stored.IsCompleted {
		t.Error("new task must start incomplete")
	}
}

func TestTaskService_Create_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(&mockTaskRepo{})

	cases := []struct{ title, description string }{
		{"", "desc"},
		{strings.Repeat("t", 101), ""},
		{"ok", strings.Repeat("d", 256)},
	}
	for _, c := range cases {
		if _, err := svc.Create(ctx, 1, c.title, c.description); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Create(%q, %q): expected ErrInvalidInput, got %v", c.title, c.description, err)
		}
	}
}

func TestTaskService_Create_TitleLimitCountsCharacters(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(&mockTaskRepo{})

	if _, err := svc.Create(ctx, 1, strings.Repeat("ü", 100), ""); err != nil {
		t.Errorf("100-rune title rejected: %v", err)
	}
	if _, err := svc.Create(ctx, 1, strings.Repeat("ü", 101), ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("101-rune title: expected ErrInvalidInput, got %v", err)
	}
}

func TestTaskService_Get_OtherUsersTaskIsNotFound(t *testing.T) {
	ctx := context.Background()
	owned := &domain.Task{ID: 1, Title: "secret plans", UserID: 1}

	// Repository scoping: a lookup by the wrong owner returns nothing.
	repo := &mockTaskRepo{
		getFn: func(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
			if taskID == owned.ID && userID == owned.UserID {
				return owned, nil
			}
			return nil, nil
		},
	}
	svc := NewTaskService(repo)

	got, err := svc.Get(ctx, 1, 1)
	if err != nil || got.Title != "secret plans" {
		t.Fatalf("owner load failed: %v, %v", got, err)
	}

	_, err = svc.Get(ctx, 2, 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("cross-user access: expected ErrNotFound, got %v", err)
	}
	if errors.Is(err, domain.ErrForbidden) {
		t.Fatal("cross-user access must not be distinguishable as forbidden")
	}

	_, err = svc.Get(ctx, 1, 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("absent task: expected ErrNotFound, got %v", err)
	}
}

func TestTaskService_Get_InvalidID(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(&mockTaskRepo{})

	if _, err := svc.Get(ctx, 1, 0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTaskService_Update_ChecksOwnershipFirst(t *testing.T) {
	ctx := context.Background()
	updated := false

	repo := &mockTaskRepo{
		getFn: func(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
			if userID == 1 && taskID == 2 {
				return &domain.Task{ID: 2, Title: "old", UserID: 1}, nil
			}
			return nil, nil
		},
		updateFn: func(ctx context.Context, task *domain.Task) error {
			updated = true
			if task.Title != "new" || !task.IsCompleted {
				t.Errorf("update payload not applied: %+v", task)
			}
			return nil
		},
	}
	svc := NewTaskService(repo)

	if _, err := svc.Update(ctx, 9, 2, "new", "", true); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("non-owner update: expected ErrNotFound, got %v", err)
	}
	if updated {
		t.Fatal("repository update ran for a non-owner")
	}

	task, err := svc.Update(ctx, 1, 2, "new", "", true)
	if err != nil {
		t.Fatalf("owner update error: %v", err)
	}
	if !updated || task.Title != "new" {
		t.Errorf("owner update not applied: %+v", task)
	}
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()
	deleted := false

	repo := &mockTaskRepo{
		getFn: func(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
			if userID == 1 && taskID == 3 {
				return &domain.Task{ID: 3, UserID: 1}, nil
			}
			return nil, nil
		},
		softDeleteFn: func(ctx context.Context, userID, taskID int64) error {
			deleted = true
			return nil
		},
	}
	svc := NewTaskService(repo)

	if err := svc.Delete(ctx, 2, 3); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("non-owner delete: expected ErrNotFound, got %v", err)
	}
	if deleted {
		t.Fatal("soft delete ran for a non-owner")
	}

	if err := svc.Delete(ctx, 1, 3); err != nil {
		t.Fatalf("owner delete error: %v", err)
	}
	if !deleted {
		t.Error("soft delete did not run for the owner")
	}
}

func TestTaskService_List_PassesFilter(t *testing.T) {
	ctx := context.Background()
	var gotFilter *bool

	repo := &mockTaskRepo{
		listFn: func(ctx context.Context, userID int64, completed *bool) ([]domain.Task, error) {
			gotFilter = completed
			return []domain.Task{{ID: 1, UserID: userID}}, nil
		},
	}
	svc := NewTaskService(repo)

	done := true
	items, err := svc.List(ctx, 1, &done)
	if err != nil || len(items) != 1 {
		t.Fatalf("List = %v, %v", items, err)
	}
	if gotFilter == nil || !*gotFilter {
		t.Error("completion filter not forwarded to the repository")
	}

	if _, err := svc.List(ctx, 1, nil); err != nil {
		t.Fatalf("List without filter error: %v", err)
	}
	if gotFilter != nil {
		t.Error("nil filter not forwarded as nil")
	}
}
