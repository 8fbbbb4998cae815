package repository

import (
	"context"
	"database/sql"

	"taskboard/internal/models"
	"taskboard/internal/repository/db"
)

type Authorization interface {
	Create(ctx context.Context, u models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t models.Task) error
	ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Task, error)
	Update(ctx context.Context, t models.Task) error
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}

type Repository struct {
	Auth  Authorization
	Tasks TaskRepo
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Auth:  NewUserRepository(sqlDB),
		Tasks: NewTaskSQLite(sqlDB),
	}
}

// InitDB opens the SQLite file and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
