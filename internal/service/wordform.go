package service

import (
	"context"
	"encoding/json"
	"strings"

	"wortschatz/internal/domain"
	"wortschatz/internal/repository"

	"go.uber.org/zap"
)

// WordDraft is the raw form input for creating or editing a word
type WordDraft struct {
	Kind               domain.Kind
	GermanWord         string
	EnglishTranslation string
	TurkishTranslation string
	Artikel            string
	PluralForm         string
	// ConjugationsJSON takes precedence over Present when not blank
	ConjugationsJSON string
	// Present is the präsens table keyed by pronoun
	Present          map[string]string
	BasicSentence    string
	AdvancedSentence string
	Note             string
	ImageURL         string
	CategoryIDs      []int
}

// DraftFromWord pre-fills a draft for editing an existing word
func DraftFromWord(w domain.Word) WordDraft {
	d := WordDraft{
		Kind:               domain.InferKind(w),
		GermanWord:         w.GermanWord,
		EnglishTranslation: w.EnglishTranslation,
		TurkishTranslation: w.TurkishTranslation,
		PluralForm:         deref(w.PluralForm),
		BasicSentence:      deref(w.BasicSentence),
		AdvancedSentence:   deref(w.AdvancedSentence),
		Note:               deref(w.Note),
		ImageURL:           deref(w.ImageURL),
		CategoryIDs:        make([]int, 0, len(w.Categories)),
	}
	if w.Artikel != nil {
		d.Artikel = string(*w.Artikel)
	}
	for _, c := range w.Categories {
		d.CategoryIDs = append(d.CategoryIDs, c.ID)
	}
	// Tenses beyond präsens only survive an edit as raw JSON
	if len(w.Conjugations) > 1 || (len(w.Conjugations) == 1 && w.Conjugations[domain.PresentTense] == nil) {
		if raw, err := json.Marshal(w.Conjugations); err == nil {
			d.ConjugationsJSON = string(raw)
		}
		return d
	}
	if present := w.Conjugations[domain.PresentTense]; len(present) > 0 {
		d.Present = make(map[string]string, len(present))
		for k, v := range present {
			d.Present[k] = v
		}
	}
	return d
}

// BuildCreatePayload turns a draft into a create request.
// A draft without categories is put into the "no category" bucket when it exists.
func BuildCreatePayload(d WordDraft, categories []domain.Category) (domain.WordPayload, error) {
	p, err := buildPayload(d, false)
	if err != nil {
		return domain.WordPayload{}, err
	}
	if len(p.CategoryIDs) == 0 {
		p.CategoryIDs = []int{}
		if sentinel, ok := domain.FindSentinel(categories); ok {
			p.CategoryIDs = []int{sentinel.ID}
		}
	}
	return p, domain.Validate(p)
}

// BuildUpdatePayload turns a draft into an update request.
// Fields that no longer apply to the word type, and emptied optional fields, are sent as null.
func BuildUpdatePayload(d WordDraft) (domain.WordPayload, error) {
	p, err := buildPayload(d, true)
	if err != nil {
		return domain.WordPayload{}, err
	}
	if p.CategoryIDs == nil {
		p.CategoryIDs = []int{}
	}
	return p, domain.Validate(p)
}

func buildPayload(d WordDraft, update bool) (domain.WordPayload, error) {
	p := domain.WordPayload{
		GermanWord:         strings.TrimSpace(d.GermanWord),
		EnglishTranslation: strings.TrimSpace(d.EnglishTranslation),
		TurkishTranslation: strings.TrimSpace(d.TurkishTranslation),
		CategoryIDs:        append([]int(nil), d.CategoryIDs...),
	}

	optional := func(field, value string) *string {
		value = strings.TrimSpace(value)
		if value == "" {
			if update {
				p.Clear(field)
			}
			return nil
		}
		return &value
	}
	p.BasicSentence = optional("basic_sentence", d.BasicSentence)
	p.AdvancedSentence = optional("advanced_sentence", d.AdvancedSentence)
	p.Note = optional("note", d.Note)
	p.ImageURL = optional("image_url", d.ImageURL)

	if d.Kind == domain.KindNoun {
		if a := strings.TrimSpace(d.Artikel); a != "" {
			artikel, err := domain.ParseArtikel(a)
			if err != nil {
				return p, domain.NewValidationError("artikel", err.Error())
			}
			p.Artikel = &artikel
		} else if update {
			p.Clear("artikel")
		}
		p.PluralForm = optional("plural_form", d.PluralForm)
	} else if update {
		p.Clear("artikel")
		p.Clear("plural_form")
	}

	if d.Kind == domain.KindVerb {
		conj, err := draftConjugations(d)
		if err != nil {
			return p, err
		}
		if len(conj) > 0 {
			p.Conjugations = conj
		} else if update {
			p.Clear("conjugations")
		}
	} else if update {
		p.Clear("conjugations")
	}

	return p, nil
}

func draftConjugations(d WordDraft) (domain.Conjugations, error) {
	if raw := strings.TrimSpace(d.ConjugationsJSON); raw != "" {
		var conj domain.Conjugations
		if err := json.Unmarshal([]byte(raw), &conj); err != nil {
			return nil, domain.NewValidationError("conjugations", "Invalid JSON format for conjugations.")
		}
		return conj, nil
	}

	present := make(map[string]string)
	for _, pronoun := range domain.Pronouns {
		if form := strings.TrimSpace(d.Present[pronoun]); form != "" {
			present[pronoun] = form
		}
	}
	if len(present) == 0 {
		return nil, nil
	}
	return domain.Conjugations{domain.PresentTense: present}, nil
}

// WordForm submits word drafts to the store and reconciles the list on success.
// One submission runs at a time.
type WordForm struct {
	store  repository.WordStore
	list   *WordList
	logger *zap.Logger
	flight inFlight
}

// NewWordForm creates a form bound to list
func NewWordForm(store repository.WordStore, list *WordList, logger *zap.Logger) *WordForm {
	return &WordForm{store: store, list: list, logger: logger}
}

// Create validates and submits a new word
func (f *WordForm) Create(ctx context.Context, d WordDraft) (*domain.Word, error) {
	payload, err := BuildCreatePayload(d, f.list.Categories())
	if err != nil {
		return nil, err
	}
	if !f.flight.acquire() {
		return nil, ErrBusy
	}
	defer f.flight.release()

	word, err := f.store.CreateWord(ctx, payload)
	if err != nil {
		f.logger.Warn("Failed to create word", zap.String("german_word", payload.GermanWord), zap.Error(err))
		return nil, err
	}
	f.logger.Info("Word created", zap.Int("word_id", word.ID))

	if err := f.list.WordCreated(ctx); err != nil {
		f.logger.Warn("Failed to reload words after create", zap.Error(err))
	}
	return word, nil
}

// Update validates and submits changes to an existing word
func (f *WordForm) Update(ctx context.Context, id int, d WordDraft) (*domain.Word, error) {
	payload, err := BuildUpdatePayload(d)
	if err != nil {
		return nil, err
	}
	if !f.flight.acquire() {
		return nil, ErrBusy
	}
	defer f.flight.release()

	word, err := f.store.UpdateWord(ctx, id, payload)
	if err != nil {
		f.logger.Warn("Failed to update word", zap.Int("word_id", id), zap.Error(err))
		return nil, err
	}
	f.logger.Info("Word updated", zap.Int("word_id", id))

	if err := f.list.WordUpdated(ctx); err != nil {
		f.logger.Warn("Failed to reload words after update", zap.Error(err))
	}
	return word, nil
}

// CreateCategory validates and submits a new category, then reloads the category list
func (f *WordForm) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	payload := domain.CategoryPayload{Name: strings.TrimSpace(name)}
	if err := domain.Validate(payload); err != nil {
		return nil, err
	}
	if !f.flight.acquire() {
		return nil, ErrBusy
	}
	defer f.flight.release()

	category, err := f.store.CreateCategory(ctx, payload.Name)
	if err != nil {
		f.logger.Warn("Failed to create category", zap.String("name", payload.Name), zap.Error(err))
		return nil, err
	}
	f.logger.Info("Category created", zap.Int("category_id", category.ID))

	f.list.CategoryCreated(ctx)
	return category, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
