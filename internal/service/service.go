package service

import (
	"context"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/repository"
)

// Authorization covers credential handling, token lifecycle and profile
// lookup for the authenticated user.
type Authorization interface {
	SignUp(ctx context.Context, username, email, password string) (string, error)
	GenerateToken(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (string, error)
	UserInfo(ctx context.Context, id string) (*models.User, error)
}

// Tasks exposes the owner-scoped task lifecycle. Every method takes the
// authenticated owner id; handlers must never pass ids from request
// bodies here.
type Tasks interface {
	Create(ctx context.Context, ownerID string, in CreateTaskInput) (models.Task, error)
	List(ctx context.Context, ownerID string) ([]models.Task, error)
	Update(ctx context.Context, ownerID, id string, in UpdateTaskInput) (models.Task, error)
	UpdateStatus(ctx context.Context, ownerID, id, status string) (models.Task, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// AuthConfig carries the process-wide auth knobs, injected from main so
// business logic never reads ambient configuration.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration // 0 disables expiry claims
	BcryptCost int           // 0 means bcrypt.DefaultCost
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Tasks
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, authCfg),
		Tasks:         NewTaskService(repos.Tasks),
	}
}
