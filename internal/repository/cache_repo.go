package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type CacheSQLite struct {
	db *sql.DB
}

func NewCacheSQLite(db *sql.DB) *CacheSQLite { return &CacheSQLite{db: db} }

var _ CacheRepo = (*CacheSQLite)(nil)

const (
	insertOrUpdateCacheSQL = `
		INSERT INTO display_cache (cache_key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			payload=excluded.payload,
			updated_at=excluded.updated_at
	`

	selectCacheSQL = `SELECT payload FROM display_cache WHERE cache_key=?`
)

// Put stores value JSON-encoded under key, replacing any prior value.
func (r *CacheSQLite) Put(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache %q: %w", key, err)
	}
	_, err = r.db.ExecContext(ctx, insertOrUpdateCacheSQL, key, string(b), time.Now().UTC())
	return err
}

// Get decodes the payload for key into dst. A miss or a corrupt
// payload reads as ok=false; the cache is always rebuildable.
func (r *CacheSQLite) Get(ctx context.Context, key string, dst any) (bool, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, selectCacheSQL, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return false, nil // treat corrupt payload as a miss
	}
	return true, nil
}
