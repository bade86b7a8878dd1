package domain

import "time"

// User represents a bot user
type User struct {
	UserID     int64
	Authorized bool
	CreatedAt  time.Time
}

// InputState tells the handler how to interpret the next free-text message
type InputState string

const (
	StateIdle                InputState = "idle"
	StateChoosingKind        InputState = "choosing_kind"
	StateWaitingGerman       InputState = "waiting_german"
	StateWaitingEnglish      InputState = "waiting_english"
	StateWaitingTurkish      InputState = "waiting_turkish"
	StateChoosingArtikel     InputState = "choosing_artikel"
	StateWaitingPlural       InputState = "waiting_plural"
	StateWaitingConjugations InputState = "waiting_conjugations"
	StateChoosingCategories  InputState = "choosing_categories"
	StateWaitingAnswer       InputState = "waiting_answer"
	StateWaitingAIJSON       InputState = "waiting_ai_json"
	StateWaitingCategory     InputState = "waiting_category"
)

// View is a top-level screen; the last one visited is remembered per user
type View string

const (
	ViewHome      View = "home"
	ViewWords     View = "words"
	ViewExercises View = "exercises"
	ViewSettings  View = "settings"
)

// ParseView returns the view for s, falling back to home for unknown values
func ParseView(s string) View {
	switch v := View(s); v {
	case ViewHome, ViewWords, ViewExercises, ViewSettings:
		return v
	}
	return ViewHome
}

// PageState is the browsing cursor of the word list
type PageState struct {
	PageNumber       int
	WordsPerPage     int
	TotalWords       int
	SelectedCategory *int
	SearchTerm       string
}
