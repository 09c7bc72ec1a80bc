package similarity

import (
	"math"
	"sort"
	"strings"
)

type ngramCosineScorer struct {
	n       int
	vectors []sparseVector
}

// sparseVector holds tf-idf weights sorted by feature id so that the dot
// product reduces to a single merge scan.
type sparseVector struct {
	features []int
	weights  []float64
}

// NewNgramCosine returns a Scorer comparing tokens by the cosine of their
// tf-idf weighted character n-gram vectors. Vectorization runs once for
// the whole corpus here; Score is a sparse dot product per pair.
//
// A token shorter than n contributes itself as its single n-gram so short
// tokens still participate in the metric. With fewer than two corpus
// tokens there is nothing to weigh against and all scores are zero.
func NewNgramCosine(corpus []string, n int) Scorer {
	if n < 1 {
		n = 1
	}
	s := &ngramCosineScorer{
		n:       n,
		vectors: make([]sparseVector, len(corpus)),
	}
	if len(corpus) < 2 {
		return s
	}

	// document frequency per n-gram over the corpus
	grams := make([]map[string]int, len(corpus))
	df := map[string]int{}
	for i, token := range corpus {
		counts := countNgrams(strings.ToLower(token), n)
		grams[i] = counts
		for gram := range counts {
			df[gram]++
		}
	}

	// stable feature ids via sorted vocabulary
	vocab := make([]string, 0, len(df))
	for gram := range df {
		vocab = append(vocab, gram)
	}
	sort.Strings(vocab)
	featureIDs := make(map[string]int, len(vocab))
	for id, gram := range vocab {
		featureIDs[gram] = id
	}

	// smoothed idf: ln((1+N)/(1+df)) + 1
	total := float64(len(corpus))
	idf := make([]float64, len(vocab))
	for id, gram := range vocab {
		idf[id] = math.Log((1+total)/(1+float64(df[gram]))) + 1
	}

	for i := range corpus {
		counts := grams[i]
		if len(counts) == 0 {
			continue
		}
		features := make([]int, 0, len(counts))
		for gram := range counts {
			features = append(features, featureIDs[gram])
		}
		sort.Ints(features)
		vec := sparseVector{
			features: features,
			weights:  make([]float64, len(features)),
		}
		var norm float64
		for k, id := range features {
			w := float64(counts[vocab[id]]) * idf[id]
			vec.weights[k] = w
			norm += w * w
		}
		// l2 normalize so the dot product below is a cosine
		norm = math.Sqrt(norm)
		if norm > 0 {
			for k := range vec.weights {
				vec.weights[k] /= norm
			}
		}
		s.vectors[i] = vec
	}
	return s
}

func (s *ngramCosineScorer) Name() string {
	return "ngram_cosine"
}

func (s *ngramCosineScorer) Score(i, j int) float64 {
	return dot(s.vectors[i], s.vectors[j])
}

func dot(a, b sparseVector) float64 {
	var sum float64
	x, y := 0, 0
	for x < len(a.features) && y < len(b.features) {
		switch {
		case a.features[x] == b.features[y]:
			sum += a.weights[x] * b.weights[y]
			x++
			y++
		case a.features[x] < b.features[y]:
			x++
		default:
			y++
		}
	}
	return sum
}

// countNgrams counts rune level n-grams of token. Tokens shorter than n
// collapse to a single n-gram holding the whole token.
func countNgrams(token string, n int) map[string]int {
	runes := []rune(token)
	if len(runes) == 0 {
		return nil
	}
	counts := map[string]int{}
	if len(runes) < n {
		counts[token] = 1
		return counts
	}
	for i := 0; i+n <= len(runes); i++ {
		counts[string(runes[i:i+n])]++
	}
	return counts
}
