package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgName(t *testing.T) {
	tests := []struct {
		dir      string
		expected string
	}{
		{"src/utils", "utils"},
		{"internal/quiz-data", "quizdata"},
		{"gen/Data2", "data2"},
		{"out/2024", "quizdata"},
		{".", "quizdata"},
		{"out/go", "quizdata"},
		{"gen/type", "quizdata"},
		{"func", "quizdata"},
		{"", "quizdata"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			assert.Equal(t, tt.expected, PkgName(tt.dir, "quizdata"))
		})
	}
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, Dedupe([]string{}))
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(1, 1, 3))
	assert.True(t, InRange(1, 3, 3))
	assert.False(t, InRange(1, 4, 3))
	assert.False(t, InRange(-1.5, -2.0, 0))
}
