package handler

import (
	"context"
	"sync"
	"time"

	"wortschatz/internal/domain"
	"wortschatz/internal/exercise"
	"wortschatz/internal/middleware"
	"wortschatz/internal/repository"
	"wortschatz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Options tune the per-chat controllers
type Options struct {
	WordsPerPage int
	ShuffleSeed  *uint64
}

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	authService  *service.AuthService
	viewService  *service.ViewService
	statsService *service.StatsService
	store        repository.WordStore
	opts         Options
	logger       *zap.Logger

	// Per-chat UI state
	sessions   map[int64]*chatSession
	sessionMux sync.Mutex
}

// chatSession is the UI state of one chat. mu guards the flow and exercise fields;
// list, form and gate synchronize themselves.
type chatSession struct {
	list *service.WordList
	form *service.WordForm
	gate *service.DeleteGate

	mu       sync.Mutex
	loaded   bool
	state    domain.InputState
	view     domain.View
	draft    service.WordDraft
	editID   int
	aiKind   domain.Kind
	aiWord   string
	flash    *exercise.Flashcards
	write    *exercise.WriteDrill
	lastSeen time.Time
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	viewService *service.ViewService,
	statsService *service.StatsService,
	store repository.WordStore,
	opts Options,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		authService:  authService,
		viewService:  viewService,
		statsService: statsService,
		store:        store,
		opts:         opts,
		logger:       logger,
		sessions:     make(map[int64]*chatSession),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	auth := middleware.AuthMiddleware(h.authService, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/words", h.handleWordsCommand, auth)
	h.bot.Handle("/add", h.handleAddCommand, auth)
	h.bot.Handle("/ai", h.handleAICommand, auth)
	h.bot.Handle("/category", h.handleCategoryCommand, auth)
	h.bot.Handle("/cancel", h.handleCancel, auth)

	// Text messages (password, form steps, answers, search)
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback, auth)
}

// session returns the chat's UI state, creating it on first use
func (h *Handler) session(userID int64) *chatSession {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	cs, exists := h.sessions[userID]
	if !exists {
		logger := h.logger.With(zap.Int64("user_id", userID))
		list := service.NewWordList(h.store, h.opts.WordsPerPage, logger)
		cs = &chatSession{
			list:  list,
			form:  service.NewWordForm(h.store, list, logger),
			gate:  service.NewDeleteGate(h.store, list, logger),
			state: domain.StateIdle,
			view:  domain.ViewHome,
		}
		h.sessions[userID] = cs
	}

	cs.mu.Lock()
	cs.lastSeen = time.Now()
	cs.mu.Unlock()
	return cs
}

// SweepSessions drops chat state not touched for maxIdle and returns how many were dropped
func (h *Handler) SweepSessions(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	dropped := 0
	for userID, cs := range h.sessions {
		cs.mu.Lock()
		idle := cs.lastSeen.Before(cutoff)
		cs.mu.Unlock()
		if idle {
			delete(h.sessions, userID)
			dropped++
		}
	}
	return dropped
}

// ensureLoaded performs the initial list load once per chat
func (h *Handler) ensureLoaded(ctx context.Context, cs *chatSession) error {
	cs.mu.Lock()
	loaded := cs.loaded
	cs.mu.Unlock()
	if loaded {
		return nil
	}

	if err := cs.list.Load(ctx); err != nil {
		return err
	}

	cs.mu.Lock()
	cs.loaded = true
	cs.mu.Unlock()
	return nil
}

// setState switches the chat's input state
func (cs *chatSession) setState(state domain.InputState) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.state = state
}

// resetFlow drops any form or exercise in progress
func (cs *chatSession) resetFlow() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.state = domain.StateIdle
	cs.draft = service.WordDraft{}
	cs.editID = 0
	cs.aiKind = ""
	cs.aiWord = ""
	cs.flash = nil
	cs.write = nil
}
