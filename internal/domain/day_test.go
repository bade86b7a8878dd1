package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddedLabel(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		added    time.Time
		expected string
	}{
		{
			name:     "today",
			added:    now.Add(-2 * time.Hour),
			expected: "today",
		},
		{
			name:     "yesterday",
			added:    now.AddDate(0, 0, -1),
			expected: "yesterday",
		},
		{
			name:     "two days ago",
			added:    now.AddDate(0, 0, -2),
			expected: "13 Jun 2024",
		},
		{
			name:     "specific date",
			added:    time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
			expected: "2 Jan 2023",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddedLabel(tt.added, now))
		})
	}
}
