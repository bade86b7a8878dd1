package testutil

import (
	"fmt"
	"time"

	"wortschatz/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, authorized bool) *domain.User {
	return &domain.User{
		UserID:     userID,
		Authorized: authorized,
		CreatedAt:  time.Now(),
	}
}

// NewTestWord creates a test word with derived translations
func NewTestWord(id int, german string, categories ...domain.Category) domain.Word {
	return domain.Word{
		ID:                 id,
		GermanWord:         german,
		EnglishTranslation: german + " (en)",
		TurkishTranslation: german + " (tr)",
		Categories:         categories,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
}

// NewTestPage creates a page of n words starting at id first
func NewTestPage(first, n, total int) *domain.WordPage {
	words := make([]domain.Word, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, NewTestWord(first+i, fmt.Sprintf("Wort%d", first+i)))
	}
	return &domain.WordPage{Words: words, TotalCount: total}
}

// NewTestCategory creates a test category
func NewTestCategory(id int, name string) domain.Category {
	return domain.Category{ID: id, Name: name}
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
