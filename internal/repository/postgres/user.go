package postgres

import (
	"database/sql"
	"fmt"
)

// UserRepo keeps the password-gate state of each Telegram user
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Touch upserts the user row, bumps last_seen_at and returns the authorized flag
// in a single round trip. New users start unauthorized.
func (r *UserRepo) Touch(userID int64) (bool, error) {
	query := `
		INSERT INTO users (user_id, authorized, last_seen_at)
		VALUES ($1, FALSE, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET last_seen_at = NOW()
		RETURNING authorized
	`
	var authorized bool
	if err := r.db.QueryRow(query, userID).Scan(&authorized); err != nil {
		return false, fmt.Errorf("touch user %d: %w", userID, err)
	}
	return authorized, nil
}

// AuthorizeUser opens the bot for the user
func (r *UserRepo) AuthorizeUser(userID int64) error {
	res, err := r.db.Exec(`UPDATE users SET authorized = TRUE WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("authorize user %d: %w", userID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("authorize user %d: %w", userID, sql.ErrNoRows)
	}
	return nil
}
