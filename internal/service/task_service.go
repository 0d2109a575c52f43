package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskmanager/internal/logger"
	"taskmanager/internal/models"
	"taskmanager/internal/repository"
)

// Activity entry types recorded for task mutations.
const (
	ActivityTaskCreated = "TASK_CREATED"
	ActivityTaskUpdated = "TASK_UPDATED"
	ActivityTaskDeleted = "TASK_DELETED"
)

var (
	errEmptyTitle  = fmt.Errorf("%w: title must not be empty", models.ErrValidation)
	errEmptyStatus = fmt.Errorf("%w: status must not be empty", models.ErrValidation)
)

type TaskService struct {
	taskRepo     repository.Tasks
	activityRepo repository.Activity
	hub          *Hub
	log          *logger.Logger
}

func NewTaskService(taskRepo repository.Tasks, activityRepo repository.Activity, hub *Hub, log *logger.Logger) *TaskService {
	return &TaskService{taskRepo: taskRepo, activityRepo: activityRepo, hub: hub, log: log}
}

// Create inserts a task. created_at/updated_at are caller-supplied at
// creation; zero values fall back to server time in the repository.
func (s *TaskService) Create(ctx context.Context, t models.Task, actorID int) (int, error) {
	if err := validateTaskFields(t.Title, t.Status); err != nil {
		return 0, err
	}

	id, err := s.taskRepo.Create(ctx, t)
	if err != nil {
		return 0, err
	}
	t.ID = id

	s.recordActivity(ctx, ActivityTaskCreated, id, actorID, fmt.Sprintf("task %q created", t.Title))
	s.hub.Broadcast(TaskEvent{Type: ActivityTaskCreated, TaskID: id, Task: &t})
	return id, nil
}

func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	return s.taskRepo.List(ctx)
}

// GetByID returns the task or models.ErrTaskNotFound.
func (s *TaskService) GetByID(ctx context.Context, id int) (*models.Task, error) {
	t, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, models.ErrTaskNotFound
	}
	return t, nil
}

// Update overwrites the mutable fields of a task. updated_at is always set
// to the current server time, regardless of anything the caller sent. A
// missing row surfaces as models.ErrTaskNotFound rather than a silent
// zero-row success.
func (s *TaskService) Update(ctx context.Context, id int, patch models.TaskPatch, actorID int) (int64, error) {
	if err := validateTaskFields(patch.Title, patch.Status); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	affected, err := s.taskRepo.Update(ctx, id, patch, now)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, models.ErrTaskNotFound
	}

	s.recordActivity(ctx, ActivityTaskUpdated, id, actorID, fmt.Sprintf("task %d updated", id))
	s.hub.Broadcast(TaskEvent{Type: ActivityTaskUpdated, TaskID: id})
	return affected, nil
}

// Delete removes a task row; a missing row surfaces as models.ErrTaskNotFound.
func (s *TaskService) Delete(ctx context.Context, id int, actorID int) (int64, error) {
	affected, err := s.taskRepo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, models.ErrTaskNotFound
	}

	s.recordActivity(ctx, ActivityTaskDeleted, id, actorID, fmt.Sprintf("task %d deleted", id))
	s.hub.Broadcast(TaskEvent{Type: ActivityTaskDeleted, TaskID: id})
	return affected, nil
}

// recordActivity appends to the audit log best-effort: a failed append must
// not fail the mutation that already committed, but it must leave a trace.
func (s *TaskService) recordActivity(ctx context.Context, typ string, taskID, actorID int, detail string) {
	err := s.activityRepo.Append(ctx, models.Activity{
		Type:    typ,
		TaskID:  taskID,
		ActorID: actorID,
		Detail:  detail,
	})
	if err != nil && s.log != nil {
		s.log.Errorw("activity_append_failed", "err", err, "type", typ, "task_id", taskID)
	}
}

func validateTaskFields(title, status string) error {
	if strings.TrimSpace(title) == "" {
		return errEmptyTitle
	}
	if strings.TrimSpace(status) == "" {
		return errEmptyStatus
	}
	return nil
}
