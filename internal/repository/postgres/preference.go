package postgres

import (
	"database/sql"
	"errors"
	"fmt"
)

// PreferenceRepo implements repository.PreferenceRepository on user_preferences
type PreferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepo creates a new preference repository
func NewPreferenceRepo(db *sql.DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// GetPreference returns the stored value and whether one exists
func (r *PreferenceRepo) GetPreference(userID int64, key string) (string, bool, error) {
	var value string
	query := `SELECT value FROM user_preferences WHERE user_id = $1 AND key = $2`
	err := r.db.QueryRow(query, userID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, true, nil
}

// SetPreference upserts a single key
func (r *PreferenceRepo) SetPreference(userID int64, key, value string) error {
	query := `
		INSERT INTO user_preferences (user_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := r.db.Exec(query, userID, key, value); err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}
