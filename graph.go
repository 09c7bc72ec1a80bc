package nayose

import (
	"runtime"
	"sync"

	"github.com/kotoba-tools/nayose/similarity"
)

// metric pairs a scorer with its edge threshold.
type metric struct {
	scorer    similarity.Scorer
	threshold float64
}

type edge struct {
	i, j int
}

// buildEdges evaluates every unordered token pair against all metrics and
// returns the pairs where at least one metric reaches its threshold. The
// pair space is split by rows across workers and each worker collects
// edges locally, so the merged edge set never depends on scheduling.
func buildEdges(n int, metrics []metric, workers int) []edge {
	if n < 2 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	rows := make(chan int, n)
	local := make([][]edge, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			var edges []edge
			for i := range rows {
				for j := i + 1; j < n; j++ {
					if similarPair(i, j, metrics) {
						edges = append(edges, edge{i, j})
					}
				}
			}
			local[slot] = edges
		}(w)
	}
	for i := 0; i < n-1; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()

	var edges []edge
	for _, part := range local {
		edges = append(edges, part...)
	}
	return edges
}

// similarPair applies the OR rule: a single metric at or above its
// threshold is enough, scores are never combined.
func similarPair(i, j int, metrics []metric) bool {
	for _, m := range metrics {
		if m.scorer.Score(i, j) >= m.threshold {
			return true
		}
	}
	return false
}

// unionFind tracks connected components over token indices.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}
