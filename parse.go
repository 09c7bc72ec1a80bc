package nayose

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
)

var (
	canonicalLineRegex = regexp.MustCompile(`^(\d+)\.\s+(.*)`)
	variantLineRegex   = regexp.MustCompile(`^-\s+(.*)`)
)

// ParsedGroup is one group reconstructed from a text report. ID keeps the
// sequence number printed in the report so a slice of a large report
// preserves its original numbering.
type ParsedGroup struct {
	ID        int      `json:"id"`
	Canonical string   `json:"main"`
	Variants  []string `json:"variants"`
}

// ParseReport reads a report produced by ReportWriter back into groups.
// Lines before the first numbered line are ignored, as are variant lines
// without an open group.
func ParseReport(r io.Reader) ([]ParsedGroup, error) {
	return ParseReportRange(r, 0, 0)
}

// ParseReportRange parses only report lines within the 1 based inclusive
// range [from, to]. A zero bound leaves that side open, so (0, 0) parses
// the whole report.
func ParseReportRange(r io.Reader, from, to int) ([]ParsedGroup, error) {
	var groups []ParsedGroup
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if from > 0 && line < from {
			continue
		}
		if to > 0 && line > to {
			break
		}
		text := scanner.Text()
		if m := canonicalLineRegex.FindStringSubmatch(text); m != nil {
			id, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			groups = append(groups, ParsedGroup{ID: id, Canonical: m[2], Variants: []string{}})
			continue
		}
		if m := variantLineRegex.FindStringSubmatch(text); m != nil && len(groups) > 0 {
			last := len(groups) - 1
			groups[last].Variants = append(groups[last].Variants, m[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}

// WithVariants filters out singleton groups, keeping only the groups that
// actually merged multiple surface forms.
func WithVariants(groups []ParsedGroup) []ParsedGroup {
	var filtered []ParsedGroup
	for _, group := range groups {
		if len(group.Variants) > 0 {
			filtered = append(filtered, group)
		}
	}
	return filtered
}
