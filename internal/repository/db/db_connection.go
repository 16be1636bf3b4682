package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates the SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is not great with many writers
	db.SetMaxIdleConns(1)

	// Pragmas to improve reliability
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA journal_mode=WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA foreign_keys=ON: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaBaselineProfile = `
CREATE TABLE IF NOT EXISTS baseline_profile (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    electricity_kwh REAL NOT NULL,
    water_m3 REAL NOT NULL,
    fuel_liters REAL NOT NULL,
    waste_kg REAL NOT NULL,
    recycle_rate REAL NOT NULL,
    materials_kg REAL NOT NULL,
    logistics_km REAL NOT NULL,
    commute_km_week REAL NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

const schemaCalcHistory = `
CREATE TABLE IF NOT EXISTS calc_history (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    category TEXT NOT NULL,
    kilograms REAL NOT NULL,
    meta TEXT
);
`

const schemaScenarioResult = `
CREATE TABLE IF NOT EXISTS scenario_result (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    energy TEXT NOT NULL,
    materials TEXT NOT NULL,
    logistics TEXT NOT NULL,
    commute TEXT NOT NULL,
    reduction_pct REAL NOT NULL,
    baseline_kg REAL NOT NULL,
    projected_kg REAL NOT NULL,
    avoided_kg REAL NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

const schemaCommunityStories = `
CREATE TABLE IF NOT EXISTS community_stories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    story TEXT NOT NULL,
    impact_kg REAL NOT NULL DEFAULT 0,
    posted_at TIMESTAMP NOT NULL
);
`

const schemaGoals = `
CREATE TABLE IF NOT EXISTS goals (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    target_pct REAL NOT NULL,
    due TEXT,
    progress REAL NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);
`

const schemaHabitLogs = `
CREATE TABLE IF NOT EXISTS habit_logs (
    id TEXT PRIMARY KEY,
    action TEXT NOT NULL,
    count REAL NOT NULL DEFAULT 1,
    logged_at TIMESTAMP NOT NULL
);
`

const schemaDisplayCache = `
CREATE TABLE IF NOT EXISTS display_cache (
    cache_key TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaBaselineProfile,
		schemaCalcHistory,
		schemaScenarioResult,
		schemaCommunityStories,
		schemaGoals,
		schemaHabitLogs,
		schemaDisplayCache,
		schemaUsers,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
