package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"wortschatz/internal/domain"
)

// aiSkeleton is the JSON shape the assistant is asked to fill in
type aiSkeleton struct {
	GermanWord         string              `json:"german_word"`
	EnglishTranslation string              `json:"english_translation"`
	TurkishTranslation string              `json:"turkish_translation"`
	BasicSentence      string              `json:"basic_sentence"`
	AdvancedSentence   string              `json:"advanced_sentence"`
	Note               string              `json:"note"`
	Artikel            string              `json:"artikel,omitempty"`
	PluralForm         string              `json:"plural_form,omitempty"`
	Conjugations       domain.Conjugations `json:"conjugations,omitempty"`
}

// AIPrompt builds the copy-paste prompt asking an AI assistant for the details of word
func AIPrompt(kind domain.Kind, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", domain.NewValidationError("german_word", "Enter the German word you want to add.")
	}

	s := aiSkeleton{
		GermanWord:         word,
		EnglishTranslation: "...",
		TurkishTranslation: "...",
		BasicSentence:      "...",
		AdvancedSentence:   "...",
		Note:               "...",
	}
	switch kind {
	case domain.KindNoun:
		s.Artikel = "der | die | das"
		s.PluralForm = "..."
	case domain.KindVerb:
		present := make(map[string]string, len(domain.Pronouns))
		for _, p := range domain.Pronouns {
			present[p] = "..."
		}
		s.Conjugations = domain.Conjugations{domain.PresentTense: present}
	default:
		kind = domain.KindOther
	}

	body, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal prompt skeleton: %w", err)
	}

	return fmt.Sprintf("For the German %s %q, provide the following details in a pure JSON format, "+
		"with no extra text or explanations before or after the JSON block.\n\n%s", kind, word, body), nil
}

// ParseAIDraft reads the assistant's JSON answer into a word draft.
// word is used when the answer leaves german_word empty.
func ParseAIDraft(kind domain.Kind, word, pasted string) (WordDraft, error) {
	pasted = strings.TrimSpace(pasted)
	if pasted == "" {
		return WordDraft{}, domain.NewValidationError("json", "Please paste the JSON response from the AI.")
	}

	var s aiSkeleton
	if err := json.Unmarshal([]byte(pasted), &s); err != nil {
		return WordDraft{}, domain.NewValidationError("json", "Invalid JSON format. Please check the pasted text.")
	}

	d := WordDraft{
		Kind:               kind,
		GermanWord:         strings.TrimSpace(s.GermanWord),
		EnglishTranslation: s.EnglishTranslation,
		TurkishTranslation: s.TurkishTranslation,
		BasicSentence:      s.BasicSentence,
		AdvancedSentence:   s.AdvancedSentence,
		Note:               s.Note,
	}
	if d.GermanWord == "" {
		d.GermanWord = strings.TrimSpace(word)
	}

	switch kind {
	case domain.KindNoun:
		d.Artikel = s.Artikel
		d.PluralForm = s.PluralForm
	case domain.KindVerb:
		if len(s.Conjugations) > 0 {
			raw, err := json.Marshal(s.Conjugations)
			if err != nil {
				return WordDraft{}, fmt.Errorf("marshal conjugations: %w", err)
			}
			d.ConjugationsJSON = string(raw)
		}
	}
	return d, nil
}
