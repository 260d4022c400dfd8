// Package algorithms implements the read-only analyses that run over a
// populated collaboration graph: structural statistics, centrality measures
// and community detection. Every function treats the graph as an immutable
// snapshot; vertex ids are dense in [0, VertexCount) so the lookups that the
// graph contract guards with errors cannot fail here.
package algorithms

import (
	"sort"

	"github.com/Dan007p4/TpGrafos/pkg/graph"
)

// totalDegrees computes the in+out degree of every vertex once. The
// centrality and community loops reuse this vector instead of recomputing
// degrees inside O(V²) passes.
func totalDegrees(g graph.Graph) []int {
	n := g.VertexCount()
	degrees := make([]int, n)
	for v := 0; v < n; v++ {
		in, _ := g.InDegree(v)
		out, _ := g.OutDegree(v)
		degrees[v] = in + out
	}
	return degrees
}

// bfsDistances runs a directed BFS over successor edges from source and
// returns hop distances, -1 for unreachable vertices.
func bfsDistances(g graph.Graph, source int) []int {
	n := g.VertexCount()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[source] = 0

	queue := []int{source}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		succ, _ := g.Successors(v)
		for _, w := range succ {
			if dist[w] < 0 {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
		}
	}
	return dist
}

// undirectedNeighbors returns the deduplicated union of v's successors and
// predecessors in ascending order.
func undirectedNeighbors(g graph.Graph, v int) []int {
	succ, _ := g.Successors(v)
	pred, _ := g.Predecessors(v)

	seen := make(map[int]struct{}, len(succ)+len(pred))
	out := make([]int, 0, len(succ)+len(pred))
	for _, list := range [][]int{succ, pred} {
		for _, u := range list {
			if _, ok := seen[u]; !ok {
				seen[u] = struct{}{}
				out = append(out, u)
			}
		}
	}
	sort.Ints(out)
	return out
}
