package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"wortschatz/internal/domain"
	"wortschatz/internal/pagination"
	"wortschatz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// errorText maps handler-visible errors onto a message for the chat
func errorText(err error) string {
	switch {
	case errors.Is(err, service.ErrBusy):
		return "Still working on your last change, please wait."
	case errors.Is(err, service.ErrNoPendingDeletion):
		return "This deletion is no longer pending."
	}
	return domain.UserMessage(err)
}

// showWords renders the word list, optionally with a notice line on top
func (h *Handler) showWords(c tele.Context, cs *chatSession, notice string) error {
	snap := cs.list.Snapshot()
	text := wordsText(snap)
	if notice != "" {
		text = notice + "\n\n" + text
	}
	return h.show(c, text, wordsMarkup(snap))
}

// handleWordsCommand handles /words
func (h *Handler) handleWordsCommand(c tele.Context) error {
	cs := h.session(c.Sender().ID)
	cs.resetFlow()
	return h.showView(c, cs, domain.ViewWords)
}

// handlePage jumps to a page of the word list
func (h *Handler) handlePage(c tele.Context, cs *chatSession, payload string) error {
	page, err := strconv.Atoi(payload)
	if err != nil {
		return h.notify(c, "Invalid page", false)
	}

	snap := cs.list.Snapshot()
	if !pagination.Valid(page, snap.Controls.TotalPages) {
		return h.notify(c, "Page out of range", false)
	}

	// A failed fetch is rendered from the snapshot
	if err := cs.list.ChangePage(context.Background(), page); err != nil {
		h.logger.Warn("Failed to change page", zap.Int("page", page), zap.Error(err))
	}
	return h.showWords(c, cs, "")
}

// handleCategoryFilter selects a category, or all words for "all"
func (h *Handler) handleCategoryFilter(c tele.Context, cs *chatSession, payload string) error {
	var categoryID *int
	if payload != "all" {
		id, err := strconv.Atoi(payload)
		if err != nil {
			return h.notify(c, "Invalid category", false)
		}
		categoryID = &id
	}

	if err := cs.list.SetCategory(context.Background(), categoryID); err != nil {
		h.logger.Warn("Failed to filter by category", zap.Error(err))
	}
	return h.showWords(c, cs, "")
}

// lookupWord fetches a word from the store, falling back to what the list already holds
func (h *Handler) lookupWord(ctx context.Context, cs *chatSession, id int) (domain.Word, error) {
	w, err := h.store.GetWord(ctx, id)
	if err == nil {
		return *w, nil
	}
	if cached, ok := cs.list.Word(id); ok {
		h.logger.Warn("Showing cached word", zap.Int("word_id", id), zap.Error(err))
		return cached, nil
	}
	return domain.Word{}, err
}

// handleWordDetail shows one word with edit and delete buttons
func (h *Handler) handleWordDetail(c tele.Context, cs *chatSession, payload string) error {
	id, err := strconv.Atoi(payload)
	if err != nil {
		return h.notify(c, "Invalid word", false)
	}

	w, err := h.lookupWord(context.Background(), cs, id)
	if err != nil {
		return h.notify(c, errorText(err), true)
	}
	return h.show(c, wordDetailText(w, time.Now()), wordDetailMarkup(w))
}

// handleDeleteRequest opens the confirmation prompt
func (h *Handler) handleDeleteRequest(c tele.Context, cs *chatSession, payload string) error {
	id, err := strconv.Atoi(payload)
	if err != nil {
		return h.notify(c, "Invalid word", false)
	}

	name := "this word"
	if w, ok := cs.list.Word(id); ok {
		name = w.DisplayName()
	}

	cs.gate.Request(id)
	return h.show(c, fmt.Sprintf("🗑 Delete %s?\n\nThis cannot be undone.", name), deleteConfirmMarkup(id))
}

// handleDeleteConfirm deletes the pending word and returns to the list
func (h *Handler) handleDeleteConfirm(c tele.Context, cs *chatSession, payload string) error {
	id, err := strconv.Atoi(payload)
	if err != nil {
		return h.notify(c, "Invalid word", false)
	}

	if err := cs.gate.Confirm(context.Background(), id); err != nil {
		if errors.Is(err, service.ErrBusy) || errors.Is(err, service.ErrNoPendingDeletion) {
			return h.notify(c, errorText(err), false)
		}
		return h.notify(c, errorText(err), true)
	}

	h.logger.Info("Word deleted", zap.Int64("user_id", c.Sender().ID), zap.Int("word_id", id))
	return h.showWords(c, cs, "🗑 Word deleted.")
}

// handleDeleteCancel closes the prompt and shows the word again
func (h *Handler) handleDeleteCancel(c tele.Context, cs *chatSession, payload string) error {
	cs.gate.Cancel()
	return h.handleWordDetail(c, cs, payload)
}
