package semantic

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"", "abc", 3},
		{"abc", "", 3},
		{"", "", 0},
		{"same", "same", 0},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.expected {
				t.Errorf("Distance(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.expected)
			}
			if got := Distance(tt.b, tt.a); got != tt.expected {
				t.Errorf("Distance is not symmetric for %q, %q", tt.a, tt.b)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("abc", ""))
	assert.Equal(t, 1.0, Similarity("identifier", "identifier"))
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"a", "b"},
		{"getUser", "fetchUser"},
		{"x", "a much longer string"},
		{"", "z"},
	}

	for _, pair := range pairs {
		score := Similarity(pair[0], pair[1])
		if score < 0 || score > 1 || math.IsNaN(score) {
			t.Errorf("Similarity(%q, %q) = %f out of [0,1]", pair[0], pair[1], score)
		}
	}
}

func TestSequenceDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []string
		expected int
	}{
		{"case insensitive", []string{"A", "b"}, []string{"a", "B"}, 0},
		{"deletion", []string{"quick", "brown", "fox"}, []string{"quick", "fox"}, 1},
		{"substitution", []string{"quick", "brown", "fox"}, []string{"quick", "red", "fox"}, 1},
		{"empty side", nil, []string{"a", "b"}, 2},
		{"both empty", nil, nil, 0},
		{"disjoint", []string{"a", "b"}, []string{"c", "d", "e"}, 3},
		{"whole tokens", []string{"running", "fast"}, []string{"runner", "fast"}, 1},
		{"multibyte tokens", []string{"café", "au", "lait"}, []string{"CAFÉ", "lait"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SequenceDistance(tt.a, tt.b))
			assert.Equal(t, tt.expected, SequenceDistance(tt.b, tt.a))
		})
	}
}

func TestSequenceDistanceLongSequences(t *testing.T) {
	a := make([]string, 0, 300)
	b := make([]string, 0, 300)
	for i := 0; i < 300; i++ {
		a = append(a, fmt.Sprintf("word%d", i))
		b = append(b, fmt.Sprintf("word%d", i))
	}
	b[150] = "changed"
	assert.Equal(t, 1, SequenceDistance(a, b))
	assert.Equal(t, 300, SequenceDistance(a, nil))
}

func TestSequenceSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, SequenceSimilarity([]string{"Get", "user"}, []string{"get", "USER"}))
	assert.InDelta(t, 2.0/3.0, SequenceSimilarity([]string{"a", "b", "c"}, []string{"a", "c"}), 1e-9)

	// Empty sides score 0, even when both are empty
	assert.Equal(t, 0.0, SequenceSimilarity(nil, nil))
	assert.Equal(t, 0.0, SequenceSimilarity([]string{"a"}, nil))
}
