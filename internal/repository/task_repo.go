package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taskmanager/internal/models"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Ensure implementation of Tasks interface at compile time.
var _ Tasks = (*TaskRepository)(nil)

const (
	insertTaskSQL = `
		INSERT INTO tasks (title, description, status, assignee_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	selectAllTasksSQL = `
		SELECT id, title, description, status, assignee_id, created_at, updated_at
		FROM tasks ORDER BY id ASC
	`
	selectTaskByIDSQL = `
		SELECT id, title, description, status, assignee_id, created_at, updated_at
		FROM tasks WHERE id = ?
	`
	updateTaskSQL = `
		UPDATE tasks SET title = ?, description = ?, status = ?, updated_at = ?
		WHERE id = ?
	`
	deleteTaskSQL = `DELETE FROM tasks WHERE id = ?`
)

// Create inserts a new task row and returns its ID. Timestamps are persisted
// as UTC; zero values are defaulted to now.
func (r *TaskRepository) Create(ctx context.Context, t models.Task) (int, error) {
	now := time.Now().UTC()
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := t.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	res, err := r.db.ExecContext(ctx, insertTaskSQL,
		t.Title,
		t.Description,
		t.Status,
		t.AssigneeID,
		createdAt.UTC(),
		updatedAt.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert task %q: %w", t.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for task %q: %w", t.Title, err)
	}
	return int(lastID), nil
}

// List returns all tasks ordered by id.
func (r *TaskRepository) List(ctx context.Context) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectAllTasksSQL)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	out := make([]models.Task, 0, 32)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Status,
			&t.AssigneeID,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		t.CreatedAt = t.CreatedAt.UTC()
		t.UpdatedAt = t.UpdatedAt.UTC()
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return out, nil
}

// GetByID fetches a task by id. Returns (nil, nil) if not found.
func (r *TaskRepository) GetByID(ctx context.Context, id int) (*models.Task, error) {
	var t models.Task
	err := r.db.QueryRowContext(ctx, selectTaskByIDSQL, id).Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.AssigneeID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select task %d: %w", id, err)
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return &t, nil
}

// Update overwrites the mutable columns of a task and returns the affected
// row count. updatedAt is supplied by the service, never by the client.
func (r *TaskRepository) Update(ctx context.Context, id int, patch models.TaskPatch, updatedAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, updateTaskSQL,
		patch.Title,
		patch.Description,
		patch.Status,
		updatedAt.UTC(),
		id,
	)
	if err != nil {
		return 0, fmt.Errorf("update task %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for task %d update: %w", id, err)
	}
	return affected, nil
}

// Delete removes a task row and returns the affected row count.
func (r *TaskRepository) Delete(ctx context.Context, id int) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteTaskSQL, id)
	if err != nil {
		return 0, fmt.Errorf("delete task %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for task %d delete: %w", id, err)
	}
	return affected, nil
}
