package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"taskmanager/internal/models"

	"github.com/google/uuid"
)

type ActivityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository { return &ActivityRepository{db: db} }

var _ Activity = (*ActivityRepository)(nil)

const insertActivitySQL = `
	INSERT INTO task_activity (id, occurred_at, type, task_id, actor_id, detail)
	VALUES (?, ?, ?, ?, ?, ?)
`

// Append inserts a new activity entry. If ID or OccurredAt are empty, they're set.
func (r *ActivityRepository) Append(ctx context.Context, a models.Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now().UTC()
	} else {
		a.OccurredAt = a.OccurredAt.UTC()
	}

	// Bind occurred_at as time.Time so the driver serializes it the same
	// way as the range predicates in List; mixing layouts breaks the
	// lexicographic comparison at exact boundaries.
	_, err := r.db.ExecContext(ctx, insertActivitySQL,
		a.ID,
		a.OccurredAt,
		strings.ToUpper(strings.TrimSpace(a.Type)),
		a.TaskID,
		a.ActorID,
		a.Detail,
	)
	if err != nil {
		return fmt.Errorf("insert activity for task %d: %w", a.TaskID, err)
	}
	return nil
}

// List returns activity filtered by [from, to] (inclusive) and/or type, ordered ASC.
func (r *ActivityRepository) List(ctx context.Context, from, to time.Time, typ string) ([]models.Activity, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	q := `SELECT id, occurred_at, type, task_id, actor_id, detail FROM task_activity`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select activity: %w", err)
	}
	defer rows.Close()

	out := make([]models.Activity, 0, 64)
	for rows.Next() {
		var a models.Activity
		var detail sql.NullString
		if err := rows.Scan(&a.ID, &a.OccurredAt, &a.Type, &a.TaskID, &a.ActorID, &detail); err != nil {
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		a.OccurredAt = a.OccurredAt.UTC()
		if detail.Valid {
			a.Detail = detail.String
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity rows: %w", err)
	}
	return out, nil
}
