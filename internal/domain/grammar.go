package domain

import (
	"fmt"
	"strings"
)

// Kind is the grammatical type of a word. It is never persisted by the store
type Kind string

const (
	KindOther Kind = "other"
	KindNoun  Kind = "noun"
	KindVerb  Kind = "verb"
)

// ParseKind maps user input onto a Kind
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindOther, "":
		return KindOther, nil
	case KindNoun:
		return KindNoun, nil
	case KindVerb:
		return KindVerb, nil
	}
	return "", fmt.Errorf("unknown word type %q", s)
}

// Artikel is the grammatical gender marker of a noun
type Artikel string

const (
	Der Artikel = "der"
	Die Artikel = "die"
	Das Artikel = "das"
)

// Artikels lists the valid artikel values in display order
var Artikels = []Artikel{Der, Die, Das}

// ParseArtikel accepts der/die/das in any case
func ParseArtikel(s string) (Artikel, error) {
	a := Artikel(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Artikels {
		if a == v {
			return a, nil
		}
	}
	return "", fmt.Errorf("artikel must be one of der, die, das")
}

// Conjugations maps a tense name to pronoun -> inflected form
type Conjugations map[string]map[string]string

// PresentTense is the tense key used by the conjugation table
const PresentTense = "präsens"

// Pronouns is the row order of the präsens conjugation table
var Pronouns = []string{"ich", "du", "er/sie/es", "wir", "ihr", "sie/Sie"}

// Grammar is the explicit variant {Other, Noun{artikel, plural}, Verb{conjugations}}
type Grammar struct {
	Kind         Kind
	Artikel      Artikel
	Plural       string
	Conjugations Conjugations
}

// InferKind derives the kind of a legacy record from the optional fields it carries.
// Artikel or plural makes a noun; otherwise conjugations make a verb.
func InferKind(w Word) Kind {
	if (w.Artikel != nil && *w.Artikel != "") || (w.PluralForm != nil && *w.PluralForm != "") {
		return KindNoun
	}
	if len(w.Conjugations) > 0 {
		return KindVerb
	}
	return KindOther
}
