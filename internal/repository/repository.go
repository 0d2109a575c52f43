package repository

import (
	"context"
	"database/sql"
	"time"

	"taskmanager/internal/models"
)

type Users interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
	List() ([]models.User, error)
}

type Tasks interface {
	Create(ctx context.Context, t models.Task) (int, error)
	List(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id int) (*models.Task, error)
	Update(ctx context.Context, id int, patch models.TaskPatch, updatedAt time.Time) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type Activity interface {
	Append(ctx context.Context, a models.Activity) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.Activity, error)
}

type Repository struct {
	Users    Users
	Tasks    Tasks
	Activity Activity
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Tasks:    NewTaskRepository(db),
		Activity: NewActivityRepository(db),
	}
}
