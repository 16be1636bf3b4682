package repository

import (
	"context"
	"database/sql"

	"ecotrack/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// ProfileRepo persists the single baseline profile row.
type ProfileRepo interface {
	Save(ctx context.Context, p models.BaselineProfile) error
	// Load returns the stored profile; ok is false when none exists yet.
	Load(ctx context.Context) (p models.BaselineProfile, ok bool, err error)
}

// HistoryRepo is the append-only calculation log.
type HistoryRepo interface {
	Append(ctx context.Context, e models.CalculationEntry) error
	// List returns entries oldest-to-newest.
	List(ctx context.Context) ([]models.CalculationEntry, error)
	// Prune drops everything but the keep most recent entries.
	Prune(ctx context.Context, keep int) error
}

// ScenarioRepo keeps at most one scenario result; Save overwrites.
type ScenarioRepo interface {
	Save(ctx context.Context, r models.ScenarioResult) error
	// Load returns nil when no scenario has been run yet.
	Load(ctx context.Context) (*models.ScenarioResult, error)
}

type CommunityRepo interface {
	Add(ctx context.Context, s models.CommunityStory) error
	// List returns the newest stories first, at most limit.
	List(ctx context.Context, limit int) ([]models.CommunityStory, error)
	TotalImpact(ctx context.Context) (float64, error)
	Prune(ctx context.Context, keep int) error
}

type GoalRepo interface {
	Create(ctx context.Context, g models.Goal) error
	List(ctx context.Context) ([]models.Goal, error)
}

// HabitRepo is the bounded eco-action log behind the streak view.
type HabitRepo interface {
	Append(ctx context.Context, l models.HabitLog) error
	// List returns logs newest-to-oldest.
	List(ctx context.Context) ([]models.HabitLog, error)
	Prune(ctx context.Context, keep int) error
}

// CacheRepo stores derived display series as JSON blobs. The engine
// is free to rebuild it at any time; it is never a source of truth.
type CacheRepo interface {
	Put(ctx context.Context, key string, value any) error
	// Get decodes the cached payload into dst; ok is false on miss.
	Get(ctx context.Context, key string, dst any) (ok bool, err error)
}

type Repository struct {
	Profile   ProfileRepo
	History   HistoryRepo
	Scenario  ScenarioRepo
	Community CommunityRepo
	Goals     GoalRepo
	Habits    HabitRepo
	Cache     CacheRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Profile:   NewProfileSQLite(db),
		History:   NewHistorySQLite(db),
		Scenario:  NewScenarioSQLite(db),
		Community: NewCommunitySQLite(db),
		Goals:     NewGoalSQLite(db),
		Habits:    NewHabitSQLite(db),
		Cache:     NewCacheSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
