package service

import (
	"context"
	"time"

	"taskmanager/internal/logger"
	"taskmanager/internal/models"
	"taskmanager/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Tasks exposes the task lifecycle: create, read, update, delete.
type Tasks interface {
	Create(ctx context.Context, t models.Task, actorID int) (int, error)
	List(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id int) (*models.Task, error)
	Update(ctx context.Context, id int, patch models.TaskPatch, actorID int) (int64, error)
	Delete(ctx context.Context, id int, actorID int) (int64, error)
}

// Users exposes read-only access to registered accounts.
type Users interface {
	List() ([]models.User, error)
}

// ActivityFilter narrows an activity listing by time range and/or event type.
type ActivityFilter struct {
	From time.Time
	To   time.Time
	Type string
}

// Activity exposes the append-only task audit log with filtering access.
type Activity interface {
	List(ctx context.Context, f ActivityFilter) ([]models.Activity, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Tasks
	Users
	Activity
	Authorization

	Hub *Hub
}

// AuthConfig carries the token/hashing knobs loaded from configuration.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, authCfg AuthConfig, log *logger.Logger) *Service {
	hub := NewHub()
	return &Service{
		Tasks:         NewTaskService(repos.Tasks, repos.Activity, hub, log),
		Users:         NewUserService(repos.Users),
		Activity:      NewActivityService(repos.Activity),
		Authorization: NewAuthService(repos.Users, authCfg),
		Hub:           hub,
	}
}
