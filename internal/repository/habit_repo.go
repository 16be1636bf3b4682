package repository

import (
	"context"
	"database/sql"
	"time"

	"ecotrack/internal/models"

	"github.com/google/uuid"
)

type HabitSQLite struct {
	db *sql.DB
}

func NewHabitSQLite(db *sql.DB) *HabitSQLite { return &HabitSQLite{db: db} }

var _ HabitRepo = (*HabitSQLite)(nil)

// Append inserts a habit log. Missing LogID or LoggedAt are set.
func (r *HabitSQLite) Append(ctx context.Context, l models.HabitLog) error {
	if l.LogID == "" {
		l.LogID = uuid.NewString()
	}
	if l.LoggedAt.IsZero() {
		l.LoggedAt = time.Now().UTC()
	} else {
		l.LoggedAt = l.LoggedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO habit_logs (id, action, count, logged_at)
		VALUES (?, ?, ?, ?)
	`,
		l.LogID,
		l.Action,
		l.Count,
		l.LoggedAt.Format("2006-01-02 15:04:05"),
	)

	return err
}

// List returns all habit logs, newest first.
func (r *HabitSQLite) List(ctx context.Context) ([]models.HabitLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, action, count, logged_at
		FROM habit_logs ORDER BY logged_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.HabitLog, 0, 32)
	for rows.Next() {
		var l models.HabitLog
		if err := rows.Scan(&l.LogID, &l.Action, &l.Count, &l.LoggedAt); err != nil {
			return nil, err
		}
		l.LoggedAt = l.LoggedAt.UTC()
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Prune drops all but the keep most recent logs.
func (r *HabitSQLite) Prune(ctx context.Context, keep int) error {
	if keep <= 0 {
		_, err := r.db.ExecContext(ctx, `DELETE FROM habit_logs`)
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM habit_logs WHERE id NOT IN (
			SELECT id FROM habit_logs ORDER BY logged_at DESC, id DESC LIMIT ?
		)
	`, keep)
	return err
}
