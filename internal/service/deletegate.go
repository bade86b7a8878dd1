package service

import (
	"context"
	"errors"
	"sync"

	"wortschatz/internal/repository"

	"go.uber.org/zap"
)

var (
	// ErrNoPendingDeletion is returned when a confirm does not match the requested word
	ErrNoPendingDeletion = errors.New("no deletion pending for this word")
	// ErrBusy is returned while a mutation from the same control is in flight
	ErrBusy = errors.New("another change is still in progress")
)

// inFlight serializes the mutations of one control
type inFlight struct {
	mu   sync.Mutex
	busy bool
}

func (f *inFlight) acquire() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy {
		return false
	}
	f.busy = true
	return true
}

func (f *inFlight) release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
}

// DeleteGate is the two-step guard in front of word deletion
type DeleteGate struct {
	store  repository.WordStore
	list   *WordList
	logger *zap.Logger

	mu      sync.Mutex
	pending *int
	flight  inFlight
}

// NewDeleteGate creates a gate that reconciles list after a confirmed delete
func NewDeleteGate(store repository.WordStore, list *WordList, logger *zap.Logger) *DeleteGate {
	return &DeleteGate{store: store, list: list, logger: logger}
}

// Request records the word to delete and opens the prompt
func (g *DeleteGate) Request(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = &id
}

// Pending returns the recorded word id
func (g *DeleteGate) Pending() (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil {
		return 0, false
	}
	return *g.pending, true
}

// Cancel closes the prompt without touching the store
func (g *DeleteGate) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = nil
}

// Confirm deletes id if it is the pending target, then reloads the list.
// A failed delete leaves the list as it was. A confirm for any other id is
// rejected and keeps the pending target, since it can only come from an outdated prompt.
func (g *DeleteGate) Confirm(ctx context.Context, id int) error {
	g.mu.Lock()
	if g.pending == nil || *g.pending != id {
		g.mu.Unlock()
		return ErrNoPendingDeletion
	}
	g.pending = nil
	g.mu.Unlock()

	if !g.flight.acquire() {
		return ErrBusy
	}
	defer g.flight.release()

	if err := g.store.DeleteWord(ctx, id); err != nil {
		g.logger.Warn("Failed to delete word", zap.Int("word_id", id), zap.Error(err))
		return err
	}
	g.logger.Info("Word deleted", zap.Int("word_id", id))

	if err := g.list.WordDeleted(ctx); err != nil {
		g.logger.Warn("Failed to reload words after delete", zap.Error(err))
	}
	return nil
}
