// Package similarity implements the string metrics used to decide whether
// two surface forms are notation variants of the same word.
package similarity

// Scorer computes a similarity score in [0,1] for a pair of corpus tokens.
// Scorers are bound to a fixed corpus at construction so that corpus wide
// statistics (document frequencies, precomputed vectors) are shared across
// all pair evaluations.
type Scorer interface {
	// Name returns the metric identifier used in logs and config
	Name() string
	// Score returns the similarity of corpus tokens i and j
	Score(i, j int) float64
}
