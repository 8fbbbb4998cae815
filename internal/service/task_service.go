package service

import (
	"context"
	"errors"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/repository"

	"github.com/google/uuid"
)

// ErrTaskNotFound means no task of the calling owner matches the id.
// Another user's task id is indistinguishable from a nonexistent one.
var ErrTaskNotFound = errors.New("task not found")

// CreateTaskInput is the validated payload for a new task.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
}

// UpdateTaskInput carries partial-update semantics: nil fields keep the
// stored value.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}

// TaskService implements the owner-scoped task lifecycle.
type TaskService struct {
	taskRepo repository.TaskRepo
}

func NewTaskService(repo repository.TaskRepo) *TaskService {
	return &TaskService{taskRepo: repo}
}

var _ Tasks = (*TaskService)(nil)

// Create persists a new task owned by ownerID and returns it with its
// generated id.
func (s *TaskService) Create(ctx context.Context, ownerID string, in CreateTaskInput) (models.Task, error) {
	now := time.Now().UTC()
	t := models.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		Owner:       ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.taskRepo.Create(ctx, t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// List returns all tasks of ownerID, never anyone else's.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]models.Task, error) {
	return s.taskRepo.ListByOwner(ctx, ownerID)
}

// Update applies the provided fields to an owned task, keeping the rest.
func (s *TaskService) Update(ctx context.Context, ownerID, id string, in UpdateTaskInput) (models.Task, error) {
	t, err := s.taskRepo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return models.Task{}, err
	}
	if t == nil {
		return models.Task{}, ErrTaskNotFound
	}

	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	t.UpdatedAt = time.Now().UTC()

	if err := s.taskRepo.Update(ctx, *t); err != nil {
		return models.Task{}, err
	}
	return *t, nil
}

// UpdateStatus sets only the status of an owned task. Setting the same
// status again is a no-op write.
func (s *TaskService) UpdateStatus(ctx context.Context, ownerID, id, status string) (models.Task, error) {
	t, err := s.taskRepo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return models.Task{}, err
	}
	if t == nil {
		return models.Task{}, ErrTaskNotFound
	}

	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	if err := s.taskRepo.Update(ctx, *t); err != nil {
		return models.Task{}, err
	}
	return *t, nil
}

// Delete removes an owned task permanently.
func (s *TaskService) Delete(ctx context.Context, ownerID, id string) error {
	deleted, err := s.taskRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}
