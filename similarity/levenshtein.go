package similarity

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

type levenshteinScorer struct {
	corpus []string
}

// NewLevenshtein returns a Scorer based on normalized levenshtein
// similarity over runes.
func NewLevenshtein(corpus []string) Scorer {
	return &levenshteinScorer{corpus: corpus}
}

func (s *levenshteinScorer) Name() string {
	return "levenshtein"
}

func (s *levenshteinScorer) Score(i, j int) float64 {
	return NormalizedLevenshtein(s.corpus[i], s.corpus[j])
}

// NormalizedLevenshtein maps edit distance into [0,1] as
// 1 - distance/max(runeLen). Two empty strings score 1.
func NormalizedLevenshtein(a, b string) float64 {
	maxLen := utf8.RuneCountInString(a)
	if lb := utf8.RuneCountInString(b); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}
