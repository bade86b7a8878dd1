package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashcards_FlipTwiceReturnsToFront(t *testing.T) {
	seed := uint64(11)
	f := NewFlashcards(testWords("Haus", "Hund"), NewRand(&seed))

	assert.Equal(t, Front, f.Side())
	require.NoError(t, f.Flip())
	assert.Equal(t, Back, f.Side())
	require.NoError(t, f.Flip())
	assert.Equal(t, Front, f.Side())
}

func TestFlashcards_NextWrapsAndResetsSide(t *testing.T) {
	seed := uint64(5)
	f := NewFlashcards(testWords("Haus", "Hund", "Katze"), NewRand(&seed))

	first, ok := f.Card()
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.Flip())
		require.NoError(t, f.Next())
		assert.Equal(t, Front, f.Side())
	}

	// After three steps on a three-card deck we are back at the first card
	assert.Equal(t, 0, f.Session().Index())
	again, ok := f.Card()
	require.True(t, ok)
	assert.Equal(t, first.ID, again.ID)
	assert.NotEqual(t, PhaseFinished, f.Session().Phase())

	n, total := f.Progress()
	assert.Equal(t, 1, n)
	assert.Equal(t, 3, total)
}

func TestFlashcards_SingleCardLoops(t *testing.T) {
	f := NewFlashcards(testWords("Haus"), NewRand(nil))

	for i := 0; i < 5; i++ {
		require.NoError(t, f.Next())
		assert.Equal(t, 0, f.Session().Index())
	}
}

func TestFlashcards_EmptyPoolRejectsActions(t *testing.T) {
	f := NewFlashcards(nil, NewRand(nil))

	assert.True(t, f.Empty())
	assert.ErrorIs(t, f.Flip(), ErrNoItems)
	assert.ErrorIs(t, f.Next(), ErrNoItems)
	_, ok := f.Card()
	assert.False(t, ok)
	assert.Equal(t, Front, f.Side())
}

func TestFlashcards_RestartReshuffles(t *testing.T) {
	seed := uint64(2)
	f := NewFlashcards(testWords("a", "b", "c", "d"), NewRand(&seed))

	require.NoError(t, f.Next())
	require.NoError(t, f.Flip())
	f.Restart()

	assert.Equal(t, 0, f.Session().Index())
	assert.Equal(t, Front, f.Side())
	assert.Len(t, f.Session().Order(), 4)
}
