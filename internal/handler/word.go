package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wortschatz/internal/domain"
	"wortschatz/internal/middleware"
	"wortschatz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	// keepValue leaves a field unchanged while editing
	keepValue = "."
	// skipValue leaves an optional field empty
	skipValue = "-"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	authorized, err := h.authService.Access(userID)
	if err != nil {
		h.logger.Error("Failed to check access", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(middleware.MsgError)
	}

	cs := h.session(userID)

	// Until the gate is open every message is a password attempt
	if !authorized {
		unlocked, err := h.authService.Unlock(userID, text)
		if err != nil {
			h.logger.Error("Failed to authorize user", zap.Int64("user_id", userID), zap.Error(err))
			return c.Send(middleware.MsgError)
		}
		if !unlocked {
			return c.Send("Wrong password.")
		}

		cs.resetFlow()
		if err := c.Send("✅ Access granted!"); err != nil {
			return err
		}
		return h.restoreView(c, cs)
	}

	cs.mu.Lock()
	state := cs.state
	view := cs.view
	cs.mu.Unlock()

	switch state {
	case domain.StateWaitingGerman, domain.StateWaitingEnglish, domain.StateWaitingTurkish,
		domain.StateWaitingPlural, domain.StateWaitingConjugations:
		return h.handleFormText(c, cs, state, text)
	case domain.StateWaitingAnswer:
		return h.handleAnswer(c, cs, text)
	case domain.StateWaitingAIJSON:
		return h.handleAIJSON(c, cs, text)
	case domain.StateWaitingCategory:
		return h.createCategory(c, cs, text)
	case domain.StateChoosingKind, domain.StateChoosingArtikel, domain.StateChoosingCategories:
		return c.Send("Please use the buttons above, or /cancel.")
	}

	// Idle: filter the words page, or start adding the word that was sent
	if view == domain.ViewWords {
		cs.list.SetSearch(text)
		return h.showWords(c, cs, "")
	}
	return h.startAdd(c, cs, text)
}

// handleAddCommand handles /add [german word]
func (h *Handler) handleAddCommand(c tele.Context) error {
	cs := h.session(c.Sender().ID)
	return h.startAdd(c, cs, strings.TrimSpace(c.Message().Payload))
}

// startAdd opens an empty form, optionally with the German word filled in
func (h *Handler) startAdd(c tele.Context, cs *chatSession, german string) error {
	if err := h.ensureLoaded(context.Background(), cs); err != nil {
		h.logger.Warn("Initial load failed", zap.Error(err))
	}

	cs.resetFlow()
	cs.mu.Lock()
	cs.draft = service.WordDraft{Kind: domain.KindOther, GermanWord: german}
	cs.state = domain.StateChoosingKind
	draft := cs.draft
	cs.mu.Unlock()

	return h.promptStep(c, cs, domain.StateChoosingKind, draft, false)
}

// handleEdit opens the form prefilled from an existing word
func (h *Handler) handleEdit(c tele.Context, cs *chatSession, payload string) error {
	id, err := strconv.Atoi(payload)
	if err != nil {
		return h.notify(c, "Invalid word", false)
	}

	w, err := h.lookupWord(context.Background(), cs, id)
	if err != nil {
		return h.notify(c, errorText(err), true)
	}

	cs.resetFlow()
	cs.mu.Lock()
	cs.draft = service.DraftFromWord(w)
	cs.editID = id
	cs.state = domain.StateChoosingKind
	draft := cs.draft
	cs.mu.Unlock()

	return h.promptStep(c, cs, domain.StateChoosingKind, draft, true)
}

// handleKind records the word type and moves on to the German word
func (h *Handler) handleKind(c tele.Context, cs *chatSession, payload string) error {
	kind, err := domain.ParseKind(payload)
	if err != nil {
		return h.notify(c, "Unknown word type", false)
	}

	cs.mu.Lock()
	if cs.state != domain.StateChoosingKind {
		cs.mu.Unlock()
		return c.Respond()
	}
	editing := cs.editID != 0
	cs.draft.Kind = kind
	// A German word sent with /add or as plain text skips its own step
	if !editing && cs.draft.GermanWord != "" {
		cs.state = domain.StateWaitingEnglish
	} else {
		cs.state = domain.StateWaitingGerman
	}
	state, draft := cs.state, cs.draft
	cs.mu.Unlock()

	return h.promptStep(c, cs, state, draft, editing)
}

// handleArtikel records the artikel of a noun
func (h *Handler) handleArtikel(c tele.Context, cs *chatSession, payload string) error {
	artikel, err := domain.ParseArtikel(payload)
	if err != nil {
		return h.notify(c, err.Error(), false)
	}

	cs.mu.Lock()
	if cs.state != domain.StateChoosingArtikel {
		cs.mu.Unlock()
		return c.Respond()
	}
	cs.draft.Artikel = string(artikel)
	cs.state = domain.StateWaitingPlural
	editing := cs.editID != 0
	draft := cs.draft
	cs.mu.Unlock()

	return h.promptStep(c, cs, domain.StateWaitingPlural, draft, editing)
}

// handleFormText fills the field the form is waiting for
func (h *Handler) handleFormText(c tele.Context, cs *chatSession, state domain.InputState, text string) error {
	cs.mu.Lock()
	editing := cs.editID != 0
	keep := editing && text == keepValue

	switch state {
	case domain.StateWaitingGerman:
		if !keep {
			cs.draft.GermanWord = text
		}
		cs.state = domain.StateWaitingEnglish
	case domain.StateWaitingEnglish:
		if !keep {
			cs.draft.EnglishTranslation = text
		}
		cs.state = domain.StateWaitingTurkish
	case domain.StateWaitingTurkish:
		if !keep {
			cs.draft.TurkishTranslation = text
		}
		cs.state = afterTranslations(cs.draft.Kind)
	case domain.StateWaitingPlural:
		switch {
		case text == skipValue:
			cs.draft.PluralForm = ""
		case !keep:
			cs.draft.PluralForm = text
		}
		cs.state = domain.StateChoosingCategories
	case domain.StateWaitingConjugations:
		switch {
		case text == skipValue:
			cs.draft.ConjugationsJSON = ""
			cs.draft.Present = nil
		case !keep:
			cs.draft.ConjugationsJSON = text
			cs.draft.Present = nil
		}
		cs.state = domain.StateChoosingCategories
	}
	next, draft := cs.state, cs.draft
	cs.mu.Unlock()

	return h.promptStep(c, cs, next, draft, editing)
}

// afterTranslations picks the step that follows the Turkish translation
func afterTranslations(kind domain.Kind) domain.InputState {
	switch kind {
	case domain.KindNoun:
		return domain.StateChoosingArtikel
	case domain.KindVerb:
		return domain.StateWaitingConjugations
	}
	return domain.StateChoosingCategories
}

// promptStep asks for the input of state
func (h *Handler) promptStep(c tele.Context, cs *chatSession, state domain.InputState, draft service.WordDraft, editing bool) error {
	switch state {
	case domain.StateChoosingKind:
		title := "➕ New word"
		if editing {
			title = "✏️ Edit " + draft.GermanWord
		}
		return h.show(c, title+"\n\nWhat type of word is it?", kindMarkup(draft.Kind))
	case domain.StateWaitingGerman:
		return h.show(c, fieldPrompt("Send the German word.", draft.GermanWord, editing), cancelMarkup())
	case domain.StateWaitingEnglish:
		return h.show(c, fieldPrompt("Send the English translation.", draft.EnglishTranslation, editing), cancelMarkup())
	case domain.StateWaitingTurkish:
		return h.show(c, fieldPrompt("Send the Turkish translation.", draft.TurkishTranslation, editing), cancelMarkup())
	case domain.StateChoosingArtikel:
		text := "Choose the artikel."
		if draft.Artikel != "" {
			text += fmt.Sprintf("\n\nCurrent: %s", draft.Artikel)
		}
		return h.show(c, text, artikelMarkup())
	case domain.StateWaitingPlural:
		return h.show(c, fieldPrompt("Send the plural form, or - to leave it empty.", draft.PluralForm, editing), cancelMarkup())
	case domain.StateWaitingConjugations:
		text := "Send the conjugations as JSON, or - to leave them empty.\n\n" +
			`Example: {"präsens": {"ich": "lerne", "du": "lernst"}}`
		current := draft.ConjugationsJSON
		if current == "" && len(draft.Present) > 0 {
			current = "präsens table"
		}
		return h.show(c, fieldPrompt(text, current, editing), cancelMarkup())
	default:
		return h.show(c, draftText(draft, editing), draftMarkup(draft, cs.list.Categories()))
	}
}

// fieldPrompt appends the current value while editing
func fieldPrompt(prompt, current string, editing bool) string {
	if !editing || current == "" {
		return prompt
	}
	return fmt.Sprintf("%s\n\nCurrent: %s\nSend %s to keep it.", prompt, current, keepValue)
}

// handleToggleCategory flips a category in the draft's selection
func (h *Handler) handleToggleCategory(c tele.Context, cs *chatSession, payload string) error {
	id, err := strconv.Atoi(payload)
	if err != nil {
		return h.notify(c, "Invalid category", false)
	}

	cs.mu.Lock()
	if cs.state != domain.StateChoosingCategories {
		cs.mu.Unlock()
		return c.Respond()
	}
	cs.draft.CategoryIDs = toggleID(cs.draft.CategoryIDs, id)
	draft := cs.draft
	editing := cs.editID != 0
	cs.mu.Unlock()

	return h.show(c, draftText(draft, editing), draftMarkup(draft, cs.list.Categories()))
}

// handleSave submits the draft as a new word or as an update
func (h *Handler) handleSave(c tele.Context, cs *chatSession) error {
	cs.mu.Lock()
	if cs.state != domain.StateChoosingCategories {
		cs.mu.Unlock()
		return h.notify(c, "Nothing to save.", false)
	}
	draft, editID := cs.draft, cs.editID
	cs.mu.Unlock()

	ctx := context.Background()
	var (
		word *domain.Word
		err  error
	)
	if editID != 0 {
		word, err = cs.form.Update(ctx, editID, draft)
	} else {
		word, err = cs.form.Create(ctx, draft)
	}
	if err != nil {
		return h.show(c,
			draftText(draft, editID != 0)+"\n\n⚠️ "+errorText(err),
			draftMarkup(draft, cs.list.Categories()),
		)
	}

	h.logger.Info("Word saved",
		zap.Int64("user_id", c.Sender().ID),
		zap.Int("word_id", word.ID),
		zap.Bool("update", editID != 0),
	)
	cs.resetFlow()
	return h.show(c, "✅ Saved!\n\n"+wordDetailText(*word, time.Now()), wordDetailMarkup(*word))
}

// handleAICommand handles /ai <type> <word> and prints a prompt for an AI assistant
func (h *Handler) handleAICommand(c tele.Context) error {
	args := c.Args()
	usage := "Usage: /ai <noun|verb|other> <German word>"
	if len(args) < 2 {
		return c.Send(usage)
	}
	kind, err := domain.ParseKind(args[0])
	if err != nil {
		return c.Send(usage)
	}
	word := strings.Join(args[1:], " ")

	prompt, err := service.AIPrompt(kind, word)
	if err != nil {
		return c.Send("⚠️ " + errorText(err))
	}

	cs := h.session(c.Sender().ID)
	if err := h.ensureLoaded(context.Background(), cs); err != nil {
		h.logger.Warn("Initial load failed", zap.Error(err))
	}
	cs.resetFlow()
	cs.mu.Lock()
	cs.state = domain.StateWaitingAIJSON
	cs.aiKind = kind
	cs.aiWord = word
	cs.mu.Unlock()

	if err := c.Send(prompt); err != nil {
		return err
	}
	return c.Send("Copy the text above into your AI assistant, then paste its JSON answer here.", cancelMarkup())
}

// handleAIJSON turns the pasted AI answer into a draft
func (h *Handler) handleAIJSON(c tele.Context, cs *chatSession, text string) error {
	cs.mu.Lock()
	kind, word := cs.aiKind, cs.aiWord
	cs.mu.Unlock()

	draft, err := service.ParseAIDraft(kind, word, text)
	if err != nil {
		return c.Send("⚠️ "+errorText(err), cancelMarkup())
	}

	cs.mu.Lock()
	cs.draft = draft
	cs.editID = 0
	cs.state = domain.StateChoosingCategories
	cs.mu.Unlock()

	return h.promptStep(c, cs, domain.StateChoosingCategories, draft, false)
}

// handleCategoryCommand handles /category [name]
func (h *Handler) handleCategoryCommand(c tele.Context) error {
	cs := h.session(c.Sender().ID)
	name := strings.TrimSpace(c.Message().Payload)
	if name == "" {
		cs.resetFlow()
		cs.setState(domain.StateWaitingCategory)
		return c.Send("Send the name of the new category.", cancelMarkup())
	}
	return h.createCategory(c, cs, name)
}

// createCategory submits a new category
func (h *Handler) createCategory(c tele.Context, cs *chatSession, name string) error {
	if err := h.ensureLoaded(context.Background(), cs); err != nil {
		h.logger.Warn("Initial load failed", zap.Error(err))
	}

	category, err := cs.form.CreateCategory(context.Background(), name)
	if err != nil {
		return c.Send("⚠️ "+errorText(err), cancelMarkup())
	}

	cs.setState(domain.StateIdle)
	return c.Send(fmt.Sprintf("✅ Category %q created.", category.Name), backMarkup(domain.ViewWords))
}
