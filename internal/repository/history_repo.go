package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"ecotrack/internal/models"

	"github.com/google/uuid"
)

type HistorySQLite struct {
	db *sql.DB
}

func NewHistorySQLite(db *sql.DB) *HistorySQLite { return &HistorySQLite{db: db} }

var _ HistoryRepo = (*HistorySQLite)(nil)

// Append inserts a new entry. If EntryID or OccurredAt are empty,
// they're set.
func (r *HistorySQLite) Append(ctx context.Context, e models.CalculationEntry) error {
	if e.EntryID == "" {
		e.EntryID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	// marshal metadata if present
	var metaPtr *string
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calc_history (id, occurred_at, category, kilograms, meta)
		VALUES (?, ?, ?, ?, ?)
	`,
		e.EntryID,
		e.OccurredAt.Format("2006-01-02 15:04:05"),
		strings.ToLower(strings.TrimSpace(e.Category)),
		e.Kilograms,
		metaPtr,
	)

	return err
}

// List returns all entries ordered oldest first.
func (r *HistorySQLite) List(ctx context.Context) ([]models.CalculationEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, occurred_at, category, kilograms, meta
		FROM calc_history ORDER BY occurred_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.CalculationEntry, 0, 64)
	for rows.Next() {
		var e models.CalculationEntry
		var metaStr sql.NullString
		if err := rows.Scan(&e.EntryID, &e.OccurredAt, &e.Category, &e.Kilograms, &metaStr); err != nil {
			return nil, err
		}
		e.OccurredAt = e.OccurredAt.UTC()

		if metaStr.Valid && metaStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
				e.Metadata = v
			} else {
				e.Metadata = metaStr.String // keep raw if malformed
			}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Prune drops all but the keep most recent entries (oldest evicted
// first).
func (r *HistorySQLite) Prune(ctx context.Context, keep int) error {
	if keep <= 0 {
		_, err := r.db.ExecContext(ctx, `DELETE FROM calc_history`)
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM calc_history WHERE id NOT IN (
			SELECT id FROM calc_history ORDER BY occurred_at DESC, id DESC LIMIT ?
		)
	`, keep)
	return err
}
