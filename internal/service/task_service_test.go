package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskboard/internal/models"
)

// mockTaskRepo is a lightweight in-test mock for repository.TaskRepo.
type mockTaskRepo struct {
	CreateFn          func(t models.Task) error
	ListByOwnerFn     func(ownerID string) ([]models.Task, error)
	GetByIDAndOwnerFn func(id, ownerID string) (*models.Task, error)
	UpdateFn          func(t models.Task) error
	DeleteFn          func(id, ownerID string) (bool, error)

	created []models.Task
	updated []models.Task

	lastGetID      string
	lastGetOwner   string
	lastDeleteID   string
	lastDeleteOwn  string
	lastListOwner  string
	deleteCalled   int
	getCalledCount int
}

func (m *mockTaskRepo) Create(_ context.Context, t models.Task) error {
	m.created = append(m.created, t)
	if m.CreateFn != nil {
		return m.CreateFn(t)
	}
	return nil
}

func (m *mockTaskRepo) ListByOwner(_ context.Context, ownerID string) ([]models.Task, error) {
	m.lastListOwner = ownerID
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ownerID)
	}
	return nil, nil
}

func (m *mockTaskRepo) GetByIDAndOwner(_ context.Context, id, ownerID string) (*models.Task, error) {
	m.getCalledCount++
	m.lastGetID = id
	m.lastGetOwner = ownerID
	if m.GetByIDAndOwnerFn != nil {
		return m.GetByIDAndOwnerFn(id, ownerID)
	}
	return nil, nil
}

func (m *mockTaskRepo) Update(_ context.Context, t models.Task) error {
	m.updated = append(m.updated, t)
	if m.UpdateFn != nil {
		return m.UpdateFn(t)
	}
	return nil
}

func (m *mockTaskRepo) Delete(_ context.Context, id, ownerID string) (bool, error) {
	m.deleteCalled++
	m.lastDeleteID = id
	m.lastDeleteOwn = ownerID
	if m.DeleteFn != nil {
		return m.DeleteFn(id, ownerID)
	}
	return false, nil
}

func strPtr(s string) *string { return &s }

func TestTaskService_Create_SetsOwnerAndID(t *testing.T) {
	repo := &mockTaskRepo{}
	svc := NewTaskService(repo)

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	task, err := svc.Create(context.Background(), "user-a", CreateTaskInput{
		Title:       "Buy milk",
		Description: "2% milk",
		Status:      models.StatusToDo,
		Priority:    models.PriorityLow,
		DueDate:     &due,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if task.ID == "" {
		t.Fatal("expected generated id")
	}
	if task.Owner != "user-a" {
		t.Fatalf("expected owner user-a, got %q", task.Owner)
	}
	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
	if len(repo.created) != 1 || repo.created[0].ID != task.ID {
		t.Fatalf("expected persisted task to match returned one: %+v", repo.created)
	}
}

func TestTaskService_List_PassesOwner(t *testing.T) {
	repo := &mockTaskRepo{
		ListByOwnerFn: func(ownerID string) ([]models.Task, error) {
			return []models.Task{{ID: "task-1", Owner: ownerID}}, nil
		},
	}
	svc := NewTaskService(repo)

	tasks, err := svc.List(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastListOwner != "user-a" {
		t.Fatalf("expected owner-filtered query, got %q", repo.lastListOwner)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
}

func TestTaskService_Update_MergesOnlyProvidedFields(t *testing.T) {
	stored := models.Task{
		ID:          "task-1",
		Title:       "Buy milk",
		Description: "2% milk",
		Status:      models.StatusToDo,
		Priority:    models.PriorityLow,
		Owner:       "user-a",
	}
	repo := &mockTaskRepo{
		GetByIDAndOwnerFn: func(id, ownerID string) (*models.Task, error) {
			cp := stored
			return &cp, nil
		},
	}
	svc := NewTaskService(repo)

	got, err := svc.Update(context.Background(), "user-a", "task-1", UpdateTaskInput{
		Title:  strPtr("Buy oat milk"),
		Status: strPtr(models.StatusInProgress),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if got.Title != "Buy oat milk" || got.Status != models.StatusInProgress {
		t.Fatalf("provided fields not applied: %+v", got)
	}
	// untouched fields keep their stored values
	if got.Description != "2% milk" || got.Priority != models.PriorityLow {
		t.Fatalf("absent fields must keep stored values: %+v", got)
	}
	if got.Owner != "user-a" {
		t.Fatalf("owner must never change, got %q", got.Owner)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected one Update call, got %d", len(repo.updated))
	}
}

func TestTaskService_Update_OwnerScoped(t *testing.T) {
	repo := &mockTaskRepo{
		GetByIDAndOwnerFn: func(id, ownerID string) (*models.Task, error) {
			// task-1 belongs to user-a only
			if id == "task-1" && ownerID == "user-a" {
				return &models.Task{ID: id, Owner: ownerID, Title: "Buy milk"}, nil
			}
			return nil, nil
		},
	}
	svc := NewTaskService(repo)

	// another user guessing the id gets not-found, not access
	_, err := svc.Update(context.Background(), "user-b", "task-1", UpdateTaskInput{
		Title: strPtr("Hijacked"),
	})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for foreign task, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatal("no write may happen for a foreign task")
	}
}

func TestTaskService_UpdateStatus(t *testing.T) {
	stored := models.Task{ID: "task-1", Status: models.StatusToDo, Owner: "user-a"}
	repo := &mockTaskRepo{
		GetByIDAndOwnerFn: func(id, ownerID string) (*models.Task, error) {
			if id == stored.ID && ownerID == stored.Owner {
				cp := stored
				return &cp, nil
			}
			return nil, nil
		},
	}
	svc := NewTaskService(repo)

	got, err := svc.UpdateStatus(context.Background(), "user-a", "task-1", models.StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if got.Status != models.StatusCompleted {
		t.Fatalf("expected Completed, got %q", got.Status)
	}

	// setting the same status again is idempotent
	stored.Status = models.StatusCompleted
	again, err := svc.UpdateStatus(context.Background(), "user-a", "task-1", models.StatusCompleted)
	if err != nil {
		t.Fatalf("repeat UpdateStatus returned error: %v", err)
	}
	if again.Status != models.StatusCompleted {
		t.Fatalf("expected Completed after repeat, got %q", again.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), "user-a", "ghost", models.StatusCompleted); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_Delete(t *testing.T) {
	repo := &mockTaskRepo{
		DeleteFn: func(id, ownerID string) (bool, error) {
			return id == "task-1" && ownerID == "user-a", nil
		},
	}
	svc := NewTaskService(repo)

	if err := svc.Delete(context.Background(), "user-a", "task-1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if repo.lastDeleteID != "task-1" || repo.lastDeleteOwn != "user-a" {
		t.Fatalf("delete must be owner-scoped: id=%q owner=%q", repo.lastDeleteID, repo.lastDeleteOwn)
	}

	// unknown id and foreign owner both surface as not-found
	if err := svc.Delete(context.Background(), "user-a", "ghost"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), "user-b", "task-1"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for foreign owner, got %v", err)
	}
}

func TestTaskService_Delete_RepoError(t *testing.T) {
	repo := &mockTaskRepo{
		DeleteFn: func(id, ownerID string) (bool, error) {
			return false, errors.New("db down")
		},
	}
	svc := NewTaskService(repo)

	err := svc.Delete(context.Background(), "user-a", "task-1")
	if err == nil || errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected raw repo error, got %v", err)
	}
}
