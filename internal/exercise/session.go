// Package exercise implements the drill sessions run over the currently loaded words.
//
// Both drills share Session: the pool is snapshotted when the session is created,
// shuffled once per Start/Restart, and walked by index. Flashcards wrap around
// forever; the write drill walks the permutation once and then finishes.
package exercise

import (
	"errors"
	"math/rand/v2"
)

var (
	ErrNoItems        = errors.New("no words to practice")
	ErrNotStarted     = errors.New("session not started")
	ErrFinished       = errors.New("session finished")
	ErrEmptyAnswer    = errors.New("answer is empty")
	ErrNotChecked     = errors.New("check the answer first")
	ErrAlreadyChecked = errors.New("answer already checked")
)

// Phase is the lifecycle position of a session
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInProgress
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in_progress"
	case PhaseFinished:
		return "finished"
	}
	return "idle"
}

// Session is a randomized walk over a fixed pool
type Session[T any] struct {
	source []T
	order  []T
	index  int
	phase  Phase
	rng    *rand.Rand
}

// NewSession snapshots pool; later changes to the caller's slice are not observed
func NewSession[T any](pool []T, rng *rand.Rand) *Session[T] {
	source := make([]T, len(pool))
	copy(source, pool)
	return &Session[T]{source: source, rng: rng}
}

// NewRand returns the session randomness source. A non-nil seed makes sequences replayable.
func NewRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Start draws a fresh permutation and rewinds to the first item.
// It is also the restart transition out of PhaseFinished.
func (s *Session[T]) Start() {
	s.order = make([]T, len(s.source))
	copy(s.order, s.source)
	s.rng.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
	s.index = 0
	s.phase = PhaseInProgress
}

// Empty reports the "no items" terminal state
func (s *Session[T]) Empty() bool {
	return len(s.source) == 0
}

// Phase returns the lifecycle phase
func (s *Session[T]) Phase() Phase {
	return s.phase
}

// Index is the 0-based position in the permutation
func (s *Session[T]) Index() int {
	return s.index
}

// Len is the size of the pool
func (s *Session[T]) Len() int {
	return len(s.source)
}

// Order returns a copy of the current permutation
func (s *Session[T]) Order() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

// Current returns the item under the cursor
func (s *Session[T]) Current() (T, bool) {
	var zero T
	if s.phase != PhaseInProgress || s.Empty() {
		return zero, false
	}
	return s.order[s.index], true
}

// ready rejects item actions outside of an in-progress, non-empty session
func (s *Session[T]) ready() error {
	switch {
	case s.Empty():
		return ErrNoItems
	case s.phase == PhaseIdle:
		return ErrNotStarted
	case s.phase == PhaseFinished:
		return ErrFinished
	}
	return nil
}

// advance moves the cursor. With wrap the walk loops; without it the
// step past the last index finishes the session.
func (s *Session[T]) advance(wrap bool) error {
	if err := s.ready(); err != nil {
		return err
	}
	if wrap {
		s.index = (s.index + 1) % len(s.order)
		return nil
	}
	if s.index+1 >= len(s.order) {
		s.phase = PhaseFinished
		return nil
	}
	s.index++
	return nil
}
