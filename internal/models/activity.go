package models

import "time"

// Activity is a single entry in the append-only task audit log.
type Activity struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Type       string    `json:"type"` // TASK_CREATED | TASK_UPDATED | TASK_DELETED
	TaskID     int       `json:"task_id"`
	ActorID    int       `json:"actor_id"`
	Detail     string    `json:"detail,omitempty"`
}
