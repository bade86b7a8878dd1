package handler

import (
	"context"
	"time"

	"wortschatz/internal/domain"
	"wortschatz/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	authorized, err := h.authService.Access(userID)
	if err != nil {
		h.logger.Error("Failed to check access", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(middleware.MsgError)
	}

	cs := h.session(userID)
	cs.resetFlow()

	if !authorized {
		// Request password
		return c.Send(middleware.MsgPasswordPrompt)
	}

	return h.restoreView(c, cs)
}

// restoreView shows the view the user had open last
func (h *Handler) restoreView(c tele.Context, cs *chatSession) error {
	view, err := h.viewService.Current(c.Sender().ID)
	if err != nil {
		h.logger.Warn("Failed to restore view", zap.Int64("user_id", c.Sender().ID), zap.Error(err))
	}
	return h.showView(c, cs, view)
}

// showView switches to a top-level view and remembers it
func (h *Handler) showView(c tele.Context, cs *chatSession, view domain.View) error {
	ctx := context.Background()
	userID := c.Sender().ID

	if err := h.viewService.Switch(userID, view); err != nil {
		h.logger.Warn("Failed to persist view", zap.Int64("user_id", userID), zap.Error(err))
	}
	cs.mu.Lock()
	cs.view = view
	cs.mu.Unlock()

	// A failed load is shown by the words view itself
	if err := h.ensureLoaded(ctx, cs); err != nil {
		h.logger.Warn("Initial load failed", zap.Int64("user_id", userID), zap.Error(err))
	}

	switch view {
	case domain.ViewWords:
		return h.showWords(c, cs, "")
	case domain.ViewExercises:
		return h.show(c, exercisesText(len(cs.list.Visible())), exercisesMarkup())
	case domain.ViewSettings:
		stats, err := h.statsService.Summary(ctx)
		if err != nil {
			return h.show(c, "⚙️ Settings\n\n⚠️ "+domain.UserMessage(err), backMarkup(domain.ViewHome))
		}
		return h.show(c, statsText(stats), backMarkup(domain.ViewHome))
	default:
		snap := cs.list.Snapshot()
		return h.show(c, homeText(snap.Recent, time.Now()), mainMenuMarkup())
	}
}
