package similarity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJaro(t *testing.T) {
	testcases := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1},
		{"a", "", 0},
		{"", "a", 0},
		{"abc", "abc", 1},
		// 6 matches, 1 transposition
		{"MARTHA", "MARHTA", 0.9444444444},
		// 4 matches inside window of 3, no transpositions
		{"DIXON", "DICKSONX", 0.7666666666},
		{"abcd", "dcba", 0.5},
		// single rune window still matches the shared first rune
		{"色", "色彩", 0.8333333333},
		{"猫", "犬", 0},
	}
	for _, tc := range testcases {
		require.InDelta(t, tc.expected, Jaro(tc.a, tc.b), 1e-9, "%q vs %q", tc.a, tc.b)
	}
}

func TestJaroWinkler(t *testing.T) {
	testcases := []struct {
		a        string
		b        string
		expected float64
	}{
		// prefix of 3 boosts 0.944444 to 0.961111
		{"MARTHA", "MARHTA", 0.9611111111},
		// prefix of 2 boosts 0.766667 to 0.813333
		{"DIXON", "DICKSONX", 0.8133333333},
		// one shared kanji prefix boosts 0.833333 to 0.85
		{"色", "色彩", 0.85},
		// below the boost threshold the jaro score passes through
		{"abcd", "dcba", 0.5},
		{"abab", "babababababab", 0.6025641026},
	}
	for _, tc := range testcases {
		require.InDelta(t, tc.expected, JaroWinkler(tc.a, tc.b), 1e-9, "%q vs %q", tc.a, tc.b)
	}
}

func TestJaroWinklerPrefixCap(t *testing.T) {
	// identical 5 rune prefix, boost still uses at most 4 runes
	score := JaroWinkler("prefixes", "prefixed")
	jaro := Jaro("prefixes", "prefixed")
	require.InDelta(t, jaro+4*0.1*(1-jaro), score, 1e-9)
}

func TestJaroWinklerScorer(t *testing.T) {
	corpus := []string{"色", "色彩"}
	scorer := NewJaroWinkler(corpus)
	require.Equal(t, "jaro_winkler", scorer.Name())
	require.InDelta(t, 0.85, scorer.Score(0, 1), 1e-9)
}
