package similarity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizedLevenshtein(t *testing.T) {
	testcases := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1},
		{"abc", "", 0},
		{"", "abc", 0},
		{"abc", "abc", 1},
		// distance 3 over max length 7
		{"kitten", "sitting", 1 - 3.0/7.0},
		// one insertion over two runes, not bytes
		{"色", "色彩", 0.5},
		{"猫", "犬", 0},
	}
	for _, tc := range testcases {
		require.InDelta(t, tc.expected, NormalizedLevenshtein(tc.a, tc.b), 1e-9, "%q vs %q", tc.a, tc.b)
	}
}

func TestLevenshteinScorer(t *testing.T) {
	corpus := []string{"kitten", "sitting", "kitten"}
	scorer := NewLevenshtein(corpus)
	require.Equal(t, "levenshtein", scorer.Name())
	require.InDelta(t, 1-3.0/7.0, scorer.Score(0, 1), 1e-9)
	require.InDelta(t, 1.0, scorer.Score(0, 2), 1e-9)
}
