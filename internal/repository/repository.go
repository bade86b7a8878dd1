package repository

import (
	"context"

	"wortschatz/internal/domain"
)

// UserRepository stores who may use the bot
type UserRepository interface {
	// Touch registers the user on first contact, records the visit and
	// reports whether the user has passed the password gate
	Touch(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
}

// PreferenceRepository is the per-user key/value preference store
type PreferenceRepository interface {
	GetPreference(userID int64, key string) (string, bool, error)
	SetPreference(userID int64, key, value string) error
}

// WordStore is the remote word/category store.
// Every call is a single round trip; failures are *domain.StoreError.
type WordStore interface {
	ListWords(ctx context.Context, page, perPage int, categoryID *int) (*domain.WordPage, error)
	ListRecentWords(ctx context.Context, limit int) ([]domain.Word, error)
	GetWord(ctx context.Context, id int) (*domain.Word, error)
	CreateWord(ctx context.Context, payload domain.WordPayload) (*domain.Word, error)
	UpdateWord(ctx context.Context, id int, payload domain.WordPayload) (*domain.Word, error)
	DeleteWord(ctx context.Context, id int) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
}
