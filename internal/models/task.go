package models

import "time"

// Task is a single tracked work item.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"` // e.g. "pending" | "in progress" | "done"
	AssigneeID  int       `json:"assignee_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskPatch carries the mutable fields of an update. UpdatedAt is always
// stamped server-side, never taken from the caller.
type TaskPatch struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
