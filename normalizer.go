package nayose

import (
	"context"
	"io"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"

	"github.com/kotoba-tools/nayose/similarity"
)

// Normalizer Options
type Options struct {
	// surface form tokens to normalize
	// duplicates are meaningful and drive canonical selection
	Tokens []string
	// similarity thresholds and n-gram size
	// if nil DefaultConfig is used
	Config *Config
	// hard ceiling on accepted input tokens (0 = no limit)
	MaxTokens int
	// workers for the pairwise scan (0 = number of CPUs)
	Concurrency int
	// NormalizeNFKC folds compatibility spellings (full width digits,
	// half width katakana etc.) before counting so folded forms merge
	// their frequencies
	NormalizeNFKC bool
}

// Normalizer partitions surface form tokens into groups of notation
// variants of the same word.
type Normalizer struct {
	Options *Options
	uniques []string       // distinct tokens in first occurrence order
	freq    map[string]int // counts over the raw input
	groups  []Group        // cached by compute
	scanned bool
}

// New creates and returns new normalizer instance from options
func New(opts *Options) (*Normalizer, error) {
	if opts.Config == nil {
		cfg := DefaultConfig
		opts.Config = &cfg
	}
	opts.Config.ApplyDefaults()
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.MaxTokens > 0 && len(opts.Tokens) > opts.MaxTokens {
		return nil, errorutil.NewWithTag("nayose", "input has %v tokens, limit is %v", len(opts.Tokens), opts.MaxTokens)
	}
	tokens := opts.Tokens
	if opts.NormalizeNFKC {
		tokens = foldNFKC(tokens)
	}
	n := &Normalizer{Options: opts}
	n.uniques, n.freq = countTokens(tokens)
	gologger.Verbose().Msgf("loaded %v tokens (%v unique)", len(tokens), len(n.uniques))
	return n, nil
}

// compute runs the pairwise scan once and caches the extracted groups.
// An empty input yields an empty report, never an error.
func (n *Normalizer) compute() []Group {
	if n.scanned {
		return n.groups
	}
	cfg := n.Options.Config
	metrics := []metric{
		{scorer: similarity.NewLevenshtein(n.uniques), threshold: cfg.LevenshteinThreshold},
		{scorer: similarity.NewJaroWinkler(n.uniques), threshold: cfg.JaroWinklerThreshold},
		{scorer: similarity.NewNgramCosine(n.uniques, cfg.NgramSize), threshold: cfg.NgramCosineThreshold},
	}
	uf := newUnionFind(len(n.uniques))
	edges := buildEdges(len(n.uniques), metrics, n.Options.Concurrency)
	for _, e := range edges {
		uf.union(e.i, e.j)
	}
	n.groups = extractGroups(n.uniques, n.freq, uf)
	n.scanned = true
	gologger.Verbose().Msgf("merged %v unique tokens into %v groups (%v edges)", len(n.uniques), len(n.groups), len(edges))
	return n.groups
}

// Execute runs normalization and streams groups in report order to a
// channel
func (n *Normalizer) Execute(ctx context.Context) <-chan Group {
	results := make(chan Group)
	go func() {
		defer close(results)
		for _, group := range n.compute() {
			select {
			case <-ctx.Done():
				return
			case results <- group:
			}
		}
	}()
	return results
}

// ExecuteWithWriter runs normalization and writes the text report directly
// to type that implements io.Writer interface
func (n *Normalizer) ExecuteWithWriter(writer io.Writer) error {
	if writer == nil {
		return errorutil.NewWithTag("nayose", "writer destination cannot be nil")
	}
	return NewReportWriter().WriteGroups(writer, n.compute())
}

// Groups runs normalization and returns all groups in report order.
func (n *Normalizer) Groups() []Group {
	return n.compute()
}

// GroupCount returns the number of groups in the report.
func (n *Normalizer) GroupCount() int {
	return len(n.compute())
}

// UniqueCount returns the number of distinct tokens after cleaning.
func (n *Normalizer) UniqueCount() int {
	return len(n.uniques)
}

// TotalCount returns the number of non blank input tokens.
func (n *Normalizer) TotalCount() int {
	total := 0
	for _, count := range n.freq {
		total += count
	}
	return total
}

// PairCount returns the number of token pairs the scan evaluates, useful
// to estimate cost before calling Execute.
func (n *Normalizer) PairCount() int {
	u := len(n.uniques)
	return u * (u - 1) / 2
}

// Frequency returns how many times token appeared in the input.
func (n *Normalizer) Frequency(token string) int {
	return n.freq[token]
}
