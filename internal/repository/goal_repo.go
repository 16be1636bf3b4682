package repository

import (
	"context"
	"database/sql"
	"time"

	"ecotrack/internal/models"

	"github.com/google/uuid"
)

type GoalSQLite struct {
	db *sql.DB
}

func NewGoalSQLite(db *sql.DB) *GoalSQLite { return &GoalSQLite{db: db} }

var _ GoalRepo = (*GoalSQLite)(nil)

func (r *GoalSQLite) Create(ctx context.Context, g models.Goal) error {
	if g.GoalID == "" {
		g.GoalID = uuid.NewString()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	} else {
		g.CreatedAt = g.CreatedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO goals (id, title, target_pct, due, progress, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		g.GoalID,
		g.Title,
		g.TargetPct,
		g.Due,
		g.Progress,
		g.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	return err
}

// List returns goals oldest first (the order they were pledged).
func (r *GoalSQLite) List(ctx context.Context) ([]models.Goal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, target_pct, due, progress, created_at
		FROM goals ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Goal
	for rows.Next() {
		var g models.Goal
		var due sql.NullString
		if err := rows.Scan(&g.GoalID, &g.Title, &g.TargetPct, &due, &g.Progress, &g.CreatedAt); err != nil {
			return nil, err
		}
		g.Due = due.String
		g.CreatedAt = g.CreatedAt.UTC()
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
