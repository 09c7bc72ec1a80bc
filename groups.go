package nayose

import "sort"

// Group is one normalized word cluster. Canonical holds the most frequent
// surface form, Variants the remaining members by descending frequency.
type Group struct {
	Canonical string   `json:"canonical"`
	Variants  []string `json:"variants,omitempty"`
}

// Members returns the canonical form and variants as one slice.
func (g *Group) Members() []string {
	members := make([]string, 0, len(g.Variants)+1)
	members = append(members, g.Canonical)
	return append(members, g.Variants...)
}

// Size returns the member count including the canonical form.
func (g *Group) Size() int {
	return len(g.Variants) + 1
}

// extractGroups converts connected components into ranked groups. Members
// are ordered by descending frequency with position in the unique token
// list breaking ties, groups by the position of their canonical member.
func extractGroups(uniques []string, freq map[string]int, uf *unionFind) []Group {
	components := map[int][]int{}
	for i := range uniques {
		root := uf.find(i)
		components[root] = append(components[root], i)
	}
	ordered := make([][]int, 0, len(components))
	for _, members := range components {
		sort.Slice(members, func(a, b int) bool {
			fa, fb := freq[uniques[members[a]]], freq[uniques[members[b]]]
			if fa != fb {
				return fa > fb
			}
			return members[a] < members[b]
		})
		ordered = append(ordered, members)
	}
	sort.Slice(ordered, func(a, b int) bool {
		return ordered[a][0] < ordered[b][0]
	})

	groups := make([]Group, 0, len(ordered))
	for _, members := range ordered {
		g := Group{Canonical: uniques[members[0]]}
		for _, idx := range members[1:] {
			g.Variants = append(g.Variants, uniques[idx])
		}
		groups = append(groups, g)
	}
	return groups
}
