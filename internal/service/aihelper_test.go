package service

import (
	"strings"
	"testing"

	"wortschatz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIPrompt(t *testing.T) {
	tests := []struct {
		name        string
		kind        domain.Kind
		contains    []string
		notContains []string
	}{
		{
			name:        "noun",
			kind:        domain.KindNoun,
			contains:    []string{`German noun "Haus"`, `"artikel": "der | die | das"`, `"plural_form"`},
			notContains: []string{`"conjugations"`},
		},
		{
			name:        "verb",
			kind:        domain.KindVerb,
			contains:    []string{`German verb "Haus"`, `"präsens"`, `"er/sie/es": "..."`, `"sie/Sie": "..."`},
			notContains: []string{`"artikel"`, `"plural_form"`},
		},
		{
			name:        "other",
			kind:        domain.KindOther,
			contains:    []string{`German other "Haus"`, `"german_word": "Haus"`, `"basic_sentence": "..."`},
			notContains: []string{`"artikel"`, `"conjugations"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := AIPrompt(tt.kind, " Haus ")
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(prompt, "For the German "))
			for _, s := range tt.contains {
				assert.Contains(t, prompt, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, prompt, s)
			}
		})
	}
}

func TestAIPrompt_EmptyWord(t *testing.T) {
	_, err := AIPrompt(domain.KindNoun, "  ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseAIDraft(t *testing.T) {
	pasted := `{
		"german_word": "Hund",
		"english_translation": "dog",
		"turkish_translation": "köpek",
		"basic_sentence": "Der Hund bellt.",
		"advanced_sentence": "Obwohl der Hund alt ist, spielt er gern.",
		"note": "",
		"artikel": "der",
		"plural_form": "Hunde"
	}`

	d, err := ParseAIDraft(domain.KindNoun, "Hund", pasted)

	require.NoError(t, err)
	assert.Equal(t, domain.KindNoun, d.Kind)
	assert.Equal(t, "Hund", d.GermanWord)
	assert.Equal(t, "dog", d.EnglishTranslation)
	assert.Equal(t, "der", d.Artikel)
	assert.Equal(t, "Hunde", d.PluralForm)

	p, err := BuildCreatePayload(d, nil)
	require.NoError(t, err)
	assert.Nil(t, p.Note)
	assert.Equal(t, "Der Hund bellt.", *p.BasicSentence)
}

func TestParseAIDraft_Verb(t *testing.T) {
	pasted := `{"english_translation": "to learn", "turkish_translation": "öğrenmek",
		"conjugations": {"präsens": {"ich": "lerne", "du": "lernst"}}}`

	d, err := ParseAIDraft(domain.KindVerb, "lernen", pasted)
	require.NoError(t, err)

	// german_word falls back to the word the prompt was built for
	assert.Equal(t, "lernen", d.GermanWord)

	p, err := BuildCreatePayload(d, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Conjugations{"präsens": {"ich": "lerne", "du": "lernst"}}, p.Conjugations)
}

func TestParseAIDraft_Errors(t *testing.T) {
	tests := []struct {
		name   string
		pasted string
		errMsg string
	}{
		{name: "empty", pasted: "  ", errMsg: "Please paste the JSON response from the AI."},
		{name: "not json", pasted: "Sure! Here is the JSON:", errMsg: "Invalid JSON format. Please check the pasted text."},
		{name: "truncated", pasted: `{"german_word": "Hund"`, errMsg: "Invalid JSON format. Please check the pasted text."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAIDraft(domain.KindOther, "Hund", tt.pasted)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, tt.errMsg, err.Error())
		})
	}
}
