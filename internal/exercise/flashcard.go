package exercise

import (
	"math/rand/v2"

	"wortschatz/internal/domain"
)

// Side is the visible face of a flashcard
type Side int

const (
	Front Side = iota
	Back
)

// Flashcards shows a German word and lets the learner flip to the translations.
// The deck loops: there is no finished state.
type Flashcards struct {
	session *Session[domain.Word]
	side    Side
}

// NewFlashcards opens a flashcard session over pool
func NewFlashcards(pool []domain.Word, rng *rand.Rand) *Flashcards {
	f := &Flashcards{session: NewSession(pool, rng)}
	f.Restart()
	return f
}

// Restart reshuffles the deck and shows the first card's front
func (f *Flashcards) Restart() {
	f.session.Start()
	f.side = Front
}

// Flip toggles the visible side
func (f *Flashcards) Flip() error {
	if err := f.session.ready(); err != nil {
		return err
	}
	if f.side == Front {
		f.side = Back
	} else {
		f.side = Front
	}
	return nil
}

// Next shows the front of the following card, wrapping to the first after the last
func (f *Flashcards) Next() error {
	if err := f.session.advance(true); err != nil {
		return err
	}
	f.side = Front
	return nil
}

// Card returns the current card
func (f *Flashcards) Card() (domain.Word, bool) {
	return f.session.Current()
}

// Side returns the visible face
func (f *Flashcards) Side() Side {
	return f.side
}

// Empty reports that there was nothing to practice
func (f *Flashcards) Empty() bool {
	return f.session.Empty()
}

// Progress returns the 1-based card number and the deck size
func (f *Flashcards) Progress() (int, int) {
	return f.session.Index() + 1, f.session.Len()
}

// Session exposes the underlying walk
func (f *Flashcards) Session() *Session[domain.Word] {
	return f.session
}
