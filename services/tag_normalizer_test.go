package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Go", "go"},
		{"surrounding whitespace", "  Machine Learning ", "machine-learning"},
		{"internal runs collapse", "deep \t  learning", "deep-learning"},
		{"already a slug", "ai-ethics", "ai-ethics"},
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
		{"mixed case multi word", "Quantum  Computing Theory", "quantum-computing-theory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTag(tt.in))
		})
	}
}

func TestNormalizeTagsDropsEmptyEntries(t *testing.T) {
	got := NormalizeTags([]string{" Go ", "", "   ", "Rust Lang"})
	assert.Equal(t, []string{"go", "rust-lang"}, got)
}

func TestNormalizeTagsNilInput(t *testing.T) {
	assert.Nil(t, NormalizeTags(nil))
}
