package nayose

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// LoadTokens reads newline separated tokens from r. Surrounding whitespace
// is trimmed and blank lines are dropped. Duplicates are kept on purpose
// since token frequency drives canonical selection.
func LoadTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// countTokens builds the frequency table and the unique token list in
// first occurrence order. Blank entries are dropped here as well so that
// programmatic input gets the same cleaning as file input.
func countTokens(tokens []string) ([]string, map[string]int) {
	freq := make(map[string]int, len(tokens))
	uniques := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if _, ok := freq[token]; !ok {
			uniques = append(uniques, token)
		}
		freq[token]++
	}
	return uniques, freq
}

// foldNFKC applies NFKC normalization to every token, merging full width,
// half width and other compatibility spellings before counting so folded
// forms add up their frequencies.
func foldNFKC(tokens []string) []string {
	folded := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(norm.NFKC.String(token))
		if token == "" {
			continue
		}
		folded = append(folded, token)
	}
	return folded
}
