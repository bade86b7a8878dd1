package handler

import (
	"strings"
	"unicode"

	"wortschatz/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	// Same text and markup as before: nothing to redraw
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// show edits the message behind a callback, or sends a new one for commands and text
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// notify answers a callback with a toast, or replies with a message otherwise
func (h *Handler) notify(c tele.Context, text string, alert bool) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: alert})
	}
	return c.Send(text)
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	unique, payload := parseCallback(callback.Unique, cleanCallbackData(callback.Data))
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("unique", unique),
		zap.String("payload", payload),
		zap.String("id", callback.ID),
		zap.Int64("user_id", c.Sender().ID),
	)

	cs := h.session(c.Sender().ID)

	switch unique {
	case cbView:
		cs.resetFlow()
		return h.showView(c, cs, domain.ParseView(payload))
	case cbPage:
		return h.handlePage(c, cs, payload)
	case cbCategory:
		return h.handleCategoryFilter(c, cs, payload)
	case cbSearch:
		cs.list.SetSearch("")
		return h.showWords(c, cs, "")
	case cbWord:
		return h.handleWordDetail(c, cs, payload)
	case cbEdit:
		return h.handleEdit(c, cs, payload)
	case cbDelete:
		return h.handleDeleteRequest(c, cs, payload)
	case cbDelYes:
		return h.handleDeleteConfirm(c, cs, payload)
	case cbDelNo:
		return h.handleDeleteCancel(c, cs, payload)
	case cbAdd:
		return h.startAdd(c, cs, "")
	case cbKind:
		return h.handleKind(c, cs, payload)
	case cbArtikel:
		return h.handleArtikel(c, cs, payload)
	case cbToggleCat:
		return h.handleToggleCategory(c, cs, payload)
	case cbSave:
		return h.handleSave(c, cs)
	case cbCancel:
		return h.handleCancel(c)
	case cbExercise:
		return h.handleExercise(c, cs, payload)
	case cbFlash:
		return h.handleFlashcard(c, cs, payload)
	case cbWrite:
		return h.handleWriteAction(c, cs, payload)
	case cbNoop:
		return c.Respond()
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("unique", unique),
		zap.String("payload", payload),
	)
	return c.Respond()
}

// handleCancel drops the form or exercise in progress and goes back to the current view
func (h *Handler) handleCancel(c tele.Context) error {
	cs := h.session(c.Sender().ID)

	cs.mu.Lock()
	view := cs.view
	cs.mu.Unlock()

	cs.resetFlow()
	cs.gate.Cancel()
	return h.showView(c, cs, view)
}
