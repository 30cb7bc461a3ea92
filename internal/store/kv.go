package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Storage keys, one per logical collection.
const (
	KeyJobs        = "pj_jobs"
	KeyQuickRefs   = "pj_quickrefs"
	KeyGear        = "pj_gear"
	KeyShopping    = "pj_shopping"
	KeyConsumables = "pj_consumables"
	KeyContext     = "pj_context"
)

// GetJSON loads the JSON value stored at key into target. It reports false
// when the key is absent. A corrupt stored value is recovered silently from
// the caller's point of view: it logs a warning, reports false, and leaves
// target untouched so the caller's fallback applies.
func GetJSON(ctx context.Context, db *sql.DB, key string, target any) (bool, error) {
	var raw string
	err := db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), target); err != nil {
		slog.Warn("discarding corrupt stored value", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// SetJSON serializes value and overwrites the blob stored at key.
func SetJSON(ctx context.Context, db *sql.DB, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
