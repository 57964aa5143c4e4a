package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]bool
		expected []string
	}{
		{
			name:     "unsorted input",
			input:    map[string]bool{"/zebras": true, "/apples": true, "/mangos": true},
			expected: []string{"/apples", "/mangos", "/zebras"},
		},
		{
			name:     "single key",
			input:    map[string]bool{"/only": true},
			expected: []string{"/only"},
		},
		{
			name:     "empty map",
			input:    map[string]bool{},
			expected: []string{},
		},
		{
			name:     "nil map",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortedKeys(tt.input)
			assert.Equal(t, tt.expected, got, "SortedKeys(%v)", tt.input)
		})
	}
}

func TestSortedKeys_AnyValues(t *testing.T) {
	input := map[string]any{"schemas": 1, "headers": 2, "responses": 3}
	assert.Equal(t, []string{"headers", "responses", "schemas"}, SortedKeys(input))
}
