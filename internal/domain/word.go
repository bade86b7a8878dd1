package domain

import (
	"strings"
	"time"
)

// Word is a catalogued German word as returned by the store
type Word struct {
	ID                 int          `json:"id"`
	GermanWord         string       `json:"german_word"`
	EnglishTranslation string       `json:"english_translation"`
	TurkishTranslation string       `json:"turkish_translation"`
	Artikel            *Artikel     `json:"artikel,omitempty"`
	PluralForm         *string      `json:"plural_form,omitempty"`
	Conjugations       Conjugations `json:"conjugations,omitempty"`
	BasicSentence      *string      `json:"basic_sentence,omitempty"`
	AdvancedSentence   *string      `json:"advanced_sentence,omitempty"`
	Note               *string      `json:"note,omitempty"`
	ImageURL           *string      `json:"image_url,omitempty"`
	Categories         []Category   `json:"categories"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// DisplayName returns the word with its artikel in front, e.g. "der Hund"
func (w Word) DisplayName() string {
	if w.Artikel != nil && *w.Artikel != "" {
		return string(*w.Artikel) + " " + w.GermanWord
	}
	return w.GermanWord
}

// Grammar returns the tagged grammatical variant of the word
func (w Word) Grammar() Grammar {
	switch InferKind(w) {
	case KindNoun:
		g := Grammar{Kind: KindNoun}
		if w.Artikel != nil {
			g.Artikel = *w.Artikel
		}
		if w.PluralForm != nil {
			g.Plural = *w.PluralForm
		}
		return g
	case KindVerb:
		return Grammar{Kind: KindVerb, Conjugations: w.Conjugations}
	default:
		return Grammar{Kind: KindOther}
	}
}

// HasCategory reports whether the word belongs to the given category
func (w Word) HasCategory(id int) bool {
	for _, c := range w.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// WordPage is one page of the catalogue plus the count for the active filter
type WordPage struct {
	Words      []Word `json:"words"`
	TotalCount int    `json:"total_count"`
}

// Category is a user-defined word bucket
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SentinelCategoryName is the fallback bucket for words created without categories
const SentinelCategoryName = "no category"

// IsSentinel reports whether c is the "no category" bucket
func (c Category) IsSentinel() bool {
	return strings.EqualFold(strings.TrimSpace(c.Name), SentinelCategoryName)
}

// FindSentinel returns the "no category" bucket if present
func FindSentinel(categories []Category) (Category, bool) {
	for _, c := range categories {
		if c.IsSentinel() {
			return c, true
		}
	}
	return Category{}, false
}
