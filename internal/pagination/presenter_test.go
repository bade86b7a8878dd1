package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		perPage  int
		expected int
	}{
		{name: "no words", total: 0, perPage: 20, expected: 0},
		{name: "exact fit", total: 40, perPage: 20, expected: 2},
		{name: "partial last page", total: 45, perPage: 20, expected: 3},
		{name: "single word", total: 1, perPage: 20, expected: 1},
		{name: "invalid page size", total: 10, perPage: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalPages(tt.total, tt.perPage))
		})
	}
}

func TestPresent(t *testing.T) {
	tests := []struct {
		name         string
		current      int
		totalPages   int
		visible      bool
		prevDisabled bool
		nextDisabled bool
		items        []int
	}{
		{
			name:         "zero pages disables both and renders nothing",
			current:      1,
			totalPages:   0,
			visible:      false,
			prevDisabled: true,
			nextDisabled: true,
		},
		{
			name:         "single page renders nothing",
			current:      1,
			totalPages:   1,
			visible:      false,
			prevDisabled: true,
			nextDisabled: true,
		},
		{
			name:         "first of three",
			current:      1,
			totalPages:   3,
			visible:      true,
			prevDisabled: true,
			nextDisabled: false,
			items:        []int{1, 2, 3},
		},
		{
			name:         "middle of three",
			current:      2,
			totalPages:   3,
			visible:      true,
			prevDisabled: false,
			nextDisabled: false,
			items:        []int{1, 2, 3},
		},
		{
			name:         "last of three",
			current:      3,
			totalPages:   3,
			visible:      true,
			prevDisabled: false,
			nextDisabled: true,
			items:        []int{1, 2, 3},
		},
		{
			name:       "window at the start",
			current:    2,
			totalPages: 20,
			visible:    true,
			items:      []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:       "window centred",
			current:    10,
			totalPages: 20,
			visible:    true,
			items:      []int{7, 8, 9, 10, 11, 12, 13},
		},
		{
			name:         "window at the end",
			current:      20,
			totalPages:   20,
			visible:      true,
			nextDisabled: true,
			items:        []int{14, 15, 16, 17, 18, 19, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Present(tt.current, tt.totalPages)

			assert.Equal(t, tt.visible, c.Visible)
			assert.Equal(t, tt.prevDisabled, c.PrevDisabled)
			assert.Equal(t, tt.nextDisabled, c.NextDisabled)

			var numbers []int
			for _, item := range c.Items {
				numbers = append(numbers, item.Number)
				assert.Equal(t, item.Number == tt.current, item.Active)
			}
			assert.Equal(t, tt.items, numbers)
		})
	}
}

func TestControls_PrevNext(t *testing.T) {
	c := Present(1, 3)
	_, ok := c.Prev()
	assert.False(t, ok)
	next, ok := c.Next()
	assert.True(t, ok)
	assert.Equal(t, 2, next)

	c = Present(3, 3)
	prev, ok := c.Prev()
	assert.True(t, ok)
	assert.Equal(t, 2, prev)
	_, ok = c.Next()
	assert.False(t, ok)
}

func TestValid(t *testing.T) {
	assert.False(t, Valid(0, 3))
	assert.True(t, Valid(1, 3))
	assert.True(t, Valid(3, 3))
	assert.False(t, Valid(4, 3))
	assert.False(t, Valid(1, 0))
}
