package exercise

import (
	"testing"

	"wortschatz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *Session[int] {
	return NewSession([]int{}, NewRand(&seed))
}

func testWords(names ...string) []domain.Word {
	words := make([]domain.Word, len(names))
	for i, n := range names {
		words[i] = domain.Word{ID: i + 1, GermanWord: n, EnglishTranslation: n + "-en", TurkishTranslation: n + "-tr"}
	}
	return words
}

func TestSession_IsPermutation(t *testing.T) {
	for _, n := range []int{1, 2, 5, 50} {
		pool := make([]int, n)
		for i := range pool {
			pool[i] = i
		}
		seed := uint64(n)
		s := NewSession(pool, NewRand(&seed))
		s.Start()

		order := s.Order()
		require.Len(t, order, n)
		assert.ElementsMatch(t, pool, order)

		seen := make(map[int]bool, n)
		for _, v := range order {
			assert.False(t, seen[v], "duplicate item %d", v)
			seen[v] = true
		}
	}
}

func TestSession_SnapshotsPool(t *testing.T) {
	pool := []int{1, 2, 3}
	seed := uint64(7)
	s := NewSession(pool, NewRand(&seed))
	pool[0] = 99
	s.Start()

	assert.ElementsMatch(t, []int{1, 2, 3}, s.Order())
}

func TestSession_ReplayableWithSeed(t *testing.T) {
	pool := []int{1, 2, 3, 4, 5, 6, 7, 8}
	seedA, seedB := uint64(42), uint64(42)

	a := NewSession(pool, NewRand(&seedA))
	b := NewSession(pool, NewRand(&seedB))
	a.Start()
	b.Start()

	assert.Equal(t, a.Order(), b.Order())
}

func TestSession_ShuffleIsUnbiased(t *testing.T) {
	// Every permutation of 3 items should show up with roughly equal frequency
	seed := uint64(1)
	s := NewSession([]int{0, 1, 2}, NewRand(&seed))

	counts := map[[3]int]int{}
	const runs = 6000
	for i := 0; i < runs; i++ {
		s.Start()
		o := s.Order()
		counts[[3]int{o[0], o[1], o[2]}]++
	}

	require.Len(t, counts, 6)
	for perm, c := range counts {
		assert.InDelta(t, runs/6, c, 150, "permutation %v", perm)
	}
}

func TestSession_Idle(t *testing.T) {
	s := NewSession([]int{1}, NewRand(nil))

	assert.Equal(t, PhaseIdle, s.Phase())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, s.advance(false), ErrNotStarted)
}

func TestSession_LinearAdvanceFinishes(t *testing.T) {
	seed := uint64(3)
	s := NewSession([]int{1, 2, 3}, NewRand(&seed))
	s.Start()

	require.NoError(t, s.advance(false))
	require.NoError(t, s.advance(false))
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, PhaseInProgress, s.Phase())

	require.NoError(t, s.advance(false))
	assert.Equal(t, PhaseFinished, s.Phase())
	assert.ErrorIs(t, s.advance(false), ErrFinished)

	s.Start()
	assert.Equal(t, PhaseInProgress, s.Phase())
	assert.Equal(t, 0, s.Index())
}

func TestSession_EmptyPool(t *testing.T) {
	s := seeded(1)
	s.Start()

	assert.True(t, s.Empty())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, s.advance(true), ErrNoItems)
	assert.ErrorIs(t, s.advance(false), ErrNoItems)
}
