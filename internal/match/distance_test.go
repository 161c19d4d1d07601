package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"kitten", "sitting", 3},
		{"ABC", "abc", 3},
		{"inputkey", "inputky", 1},
		{"outputposition", "outputpositon", 1},
		{"translation", "translatoin", 2},
		{"µm", "um", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, EditDistance(tt.a, tt.b))
			assert.Equal(t, tt.want, EditDistance(tt.b, tt.a), "symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("hello", "hello"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 1-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)
	assert.InDelta(t, 0.5, Similarity("µm", "um"), 1e-9)
}

func TestKeywordScore(t *testing.T) {
	assert.InDelta(t, 1.0, KeywordScore("input_key", "InputKey"), 1e-9)
	assert.Greater(t, KeywordScore("InputKy", "InputKey"), KeywordScore("InputKy", "OutputName"))
}

func BenchmarkKeywordScore(b *testing.B) {
	for b.Loop() {
		KeywordScore("InputKeyDependencies", "input_key_dependences")
	}
}
