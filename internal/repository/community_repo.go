package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"ecotrack/internal/models"

	"github.com/google/uuid"
)

type CommunitySQLite struct {
	db *sql.DB
}

func NewCommunitySQLite(db *sql.DB) *CommunitySQLite { return &CommunitySQLite{db: db} }

var _ CommunityRepo = (*CommunitySQLite)(nil)

// Add inserts a story. Missing StoryID/PostedAt are filled in; an
// empty name is stored as "Anonymous".
func (r *CommunitySQLite) Add(ctx context.Context, s models.CommunityStory) error {
	if s.StoryID == "" {
		s.StoryID = uuid.NewString()
	}
	if s.PostedAt.IsZero() {
		s.PostedAt = time.Now().UTC()
	} else {
		s.PostedAt = s.PostedAt.UTC()
	}
	name := strings.TrimSpace(s.Name)
	if name == "" {
		name = "Anonymous"
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO community_stories (id, name, story, impact_kg, posted_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		s.StoryID,
		name,
		s.Text,
		s.ImpactKg,
		s.PostedAt.Format("2006-01-02 15:04:05"),
	)
	return err
}

// List returns the newest stories first, at most limit.
func (r *CommunitySQLite) List(ctx context.Context, limit int) ([]models.CommunityStory, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, story, impact_kg, posted_at
		FROM community_stories ORDER BY posted_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.CommunityStory, 0, limit)
	for rows.Next() {
		var s models.CommunityStory
		if err := rows.Scan(&s.StoryID, &s.Name, &s.Text, &s.ImpactKg, &s.PostedAt); err != nil {
			return nil, err
		}
		s.PostedAt = s.PostedAt.UTC()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// TotalImpact sums the avoided-CO2 claims across all stories.
func (r *CommunitySQLite) TotalImpact(ctx context.Context) (float64, error) {
	var total sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `SELECT SUM(impact_kg) FROM community_stories`).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

// Prune drops all but the keep newest stories.
func (r *CommunitySQLite) Prune(ctx context.Context, keep int) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM community_stories WHERE id NOT IN (
			SELECT id FROM community_stories ORDER BY posted_at DESC, id DESC LIMIT ?
		)
	`, keep)
	return err
}
