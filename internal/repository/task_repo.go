package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taskboard/internal/models"
)

type TaskSQLite struct {
	db *sql.DB
}

func NewTaskSQLite(db *sql.DB) *TaskSQLite { return &TaskSQLite{db: db} }

// Ensure implementation of TaskRepo interface at compile time.
var _ TaskRepo = (*TaskSQLite)(nil)

const (
	insertTaskSQL = `
		INSERT INTO tasks (id, title, description, status, priority, due_date, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	selectTasksByOwnerSQL = `
		SELECT id, title, description, status, priority, due_date, owner_id, created_at, updated_at
		FROM tasks WHERE owner_id = ?
	`

	selectTaskByIDAndOwnerSQL = `
		SELECT id, title, description, status, priority, due_date, owner_id, created_at, updated_at
		FROM tasks WHERE id = ? AND owner_id = ?
	`

	updateTaskSQL = `
		UPDATE tasks
		SET title = ?, description = ?, status = ?, priority = ?, due_date = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?
	`

	deleteTaskSQL = `DELETE FROM tasks WHERE id = ? AND owner_id = ?`
)

// nullIfEmpty stores optional text columns as NULL rather than "".
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullIfNilTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

// Create inserts a new task row.
func (r *TaskSQLite) Create(ctx context.Context, t models.Task) error {
	_, err := r.db.ExecContext(ctx, insertTaskSQL,
		t.ID,
		t.Title,
		t.Description,
		t.Status,
		nullIfEmpty(t.Priority),
		nullIfNilTime(t.DueDate),
		t.Owner,
		t.CreatedAt.UTC(),
		t.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert task %q: %w", t.ID, err)
	}
	return nil
}

// ListByOwner returns every task belonging to ownerID. Order is
// unspecified; clients sort on their side.
func (r *TaskSQLite) ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTasksByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select tasks for owner %q: %w", ownerID, err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return tasks, nil
}

// GetByIDAndOwner fetches one task scoped to its owner. Returns
// (nil, nil) if no owned task matches.
func (r *TaskSQLite) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, selectTaskByIDAndOwnerSQL, id, ownerID)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select task %q: %w", id, err)
	}
	return &t, nil
}

// Update rewrites the mutable columns of an owned task.
func (r *TaskSQLite) Update(ctx context.Context, t models.Task) error {
	_, err := r.db.ExecContext(ctx, updateTaskSQL,
		t.Title,
		t.Description,
		t.Status,
		nullIfEmpty(t.Priority),
		nullIfNilTime(t.DueDate),
		t.UpdatedAt.UTC(),
		t.ID,
		t.Owner,
	)
	if err != nil {
		return fmt.Errorf("update task %q: %w", t.ID, err)
	}
	return nil
}

// Delete removes an owned task and reports whether a row was deleted.
func (r *TaskSQLite) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteTaskSQL, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete task %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for task %q: %w", id, err)
	}
	return n > 0, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (models.Task, error) {
	var (
		t        models.Task
		priority sql.NullString
		dueDate  sql.NullTime
	)
	if err := s.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Status,
		&priority,
		&dueDate,
		&t.Owner,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return models.Task{}, err
	}
	if priority.Valid {
		t.Priority = priority.String
	}
	if dueDate.Valid {
		d := dueDate.Time.UTC()
		t.DueDate = &d
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}
