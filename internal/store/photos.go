package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SetGearPhoto stores (or replaces) the photo for a gear item.
func SetGearPhoto(ctx context.Context, db *sql.DB, gearID string, data []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO gear_photos (gear_id, data, mime, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(gear_id) DO UPDATE SET
		     data = excluded.data, mime = excluded.mime, updated_at = CURRENT_TIMESTAMP`,
		gearID, data, mime,
	)
	if err != nil {
		return fmt.Errorf("storing gear photo: %w", err)
	}
	return nil
}

// GetGearPhoto returns a gear item's photo data and MIME type, or nil data
// when no photo is stored.
func GetGearPhoto(ctx context.Context, db *sql.DB, gearID string) ([]byte, string, error) {
	var data []byte
	var mime string
	err := db.QueryRowContext(ctx,
		`SELECT data, mime FROM gear_photos WHERE gear_id = ?`, gearID,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting gear photo: %w", err)
	}
	return data, mime, nil
}

// DeleteGearPhoto removes a gear item's photo, if any.
func DeleteGearPhoto(ctx context.Context, db *sql.DB, gearID string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM gear_photos WHERE gear_id = ?`, gearID)
	if err != nil {
		return fmt.Errorf("deleting gear photo: %w", err)
	}
	return nil
}
