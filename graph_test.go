package nayose

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// chainScorer links consecutive indices so edge extraction is predictable.
type chainScorer struct{}

func (chainScorer) Name() string { return "chain" }

func (chainScorer) Score(i, j int) float64 {
	if j-i == 1 {
		return 1
	}
	return 0
}

func TestBuildEdgesDeterministic(t *testing.T) {
	metrics := []metric{{scorer: chainScorer{}, threshold: 0.5}}
	expected := []edge{}
	for i := 0; i < 9; i++ {
		expected = append(expected, edge{i, i + 1})
	}
	for _, workers := range []int{1, 2, 4, 8} {
		edges := buildEdges(10, metrics, workers)
		sort.Slice(edges, func(a, b int) bool {
			if edges[a].i != edges[b].i {
				return edges[a].i < edges[b].i
			}
			return edges[a].j < edges[b].j
		})
		require.EqualValues(t, expected, edges, "workers=%v", workers)
	}
}

func TestBuildEdgesSmallInputs(t *testing.T) {
	metrics := []metric{{scorer: chainScorer{}, threshold: 0.5}}
	require.Empty(t, buildEdges(0, metrics, 4))
	require.Empty(t, buildEdges(1, metrics, 4))
}

func TestSimilarPairOrRule(t *testing.T) {
	never := metric{scorer: chainScorer{}, threshold: 1.1}
	always := metric{scorer: chainScorer{}, threshold: 0}
	// one passing metric is enough
	require.True(t, similarPair(0, 1, []metric{never, always}))
	require.False(t, similarPair(0, 2, []metric{never}))
	// threshold comparison is inclusive
	require.True(t, similarPair(0, 1, []metric{{scorer: chainScorer{}, threshold: 1}}))
}

func TestUnionFind(t *testing.T) {
	uf := newUnionFind(5)
	for i := 0; i < 5; i++ {
		require.EqualValues(t, i, uf.find(i))
	}
	uf.union(0, 1)
	uf.union(3, 4)
	require.EqualValues(t, uf.find(0), uf.find(1))
	require.EqualValues(t, uf.find(3), uf.find(4))
	require.NotEqualValues(t, uf.find(0), uf.find(3))

	// transitivity across merges
	uf.union(1, 3)
	require.EqualValues(t, uf.find(0), uf.find(4))
	require.NotEqualValues(t, uf.find(0), uf.find(2))

	// repeated unions stay stable
	uf.union(0, 4)
	require.EqualValues(t, uf.find(0), uf.find(4))
}
