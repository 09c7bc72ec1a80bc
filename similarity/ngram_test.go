package similarity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNgramCosineIdentity(t *testing.T) {
	scorer := NewNgramCosine([]string{"abcd", "zzzz"}, 2)
	require.Equal(t, "ngram_cosine", scorer.Name())
	// l2 normalized vector against itself
	require.InDelta(t, 1.0, scorer.Score(0, 0), 1e-9)
	// no shared bigrams
	require.InDelta(t, 0.0, scorer.Score(0, 1), 1e-9)
}

func TestNgramCosineSharedGrams(t *testing.T) {
	// abab -> {ab:2, ba:1}, babababababab -> {ba:6, ab:6}
	// both grams appear in both tokens so idf is 1 and the cosine is
	// (2*6 + 1*6) / (sqrt(5) * sqrt(72)) = 0.94868...
	scorer := NewNgramCosine([]string{"abab", "babababababab"}, 2)
	require.InDelta(t, 0.9486832981, scorer.Score(0, 1), 1e-9)
}

func TestNgramCosineShortTokens(t *testing.T) {
	// tokens shorter than n collapse to themselves, so a single kanji
	// never shares a gram with a two kanji compound
	scorer := NewNgramCosine([]string{"色", "色彩"}, 2)
	require.InDelta(t, 0.0, scorer.Score(0, 1), 1e-9)

	// two equal short tokens still line up
	scorer = NewNgramCosine([]string{"色", "色", "形"}, 2)
	require.InDelta(t, 1.0, scorer.Score(0, 1), 1e-9)
}

func TestNgramCosineCaseFolding(t *testing.T) {
	// grams are extracted after lowercasing
	scorer := NewNgramCosine([]string{"Word", "word"}, 2)
	require.InDelta(t, 1.0, scorer.Score(0, 1), 1e-9)
}

func TestNgramCosineDegenerateCorpus(t *testing.T) {
	// a single token corpus has no pairs to weigh, scores stay zero
	scorer := NewNgramCosine([]string{"色"}, 2)
	require.InDelta(t, 0.0, scorer.Score(0, 0), 1e-9)

	scorer = NewNgramCosine(nil, 2)
	require.NotNil(t, scorer)
}

func TestNgramCosineUnigrams(t *testing.T) {
	// with n=1 both tokens decompose into the same unigram multiset
	scorer := NewNgramCosine([]string{"ab", "ba"}, 1)
	require.InDelta(t, 1.0, scorer.Score(0, 1), 1e-9)
}
