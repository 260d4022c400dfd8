package algorithms

import (
	"sort"

	"github.com/Dan007p4/TpGrafos/pkg/graph"
)

// RankedVertex pairs a vertex with its score in a TopN ranking.
type RankedVertex struct {
	Vertex int
	Score  float64
}

// DegreeCentrality returns (in+out)/(2·(V−1)) for every vertex. Every score
// is exactly 1.0 on a complete directed graph. Single-vertex graphs score 0.
func DegreeCentrality(g graph.Graph) map[int]float64 {
	n := g.VertexCount()
	centrality := make(map[int]float64, n)
	degrees := totalDegrees(g)
	for v := 0; v < n; v++ {
		if n > 1 {
			centrality[v] = float64(degrees[v]) / (2.0 * float64(n-1))
		} else {
			centrality[v] = 0.0
		}
	}
	return centrality
}

// BetweennessCentrality computes Brandes betweenness over successor edges:
// one BFS per source accumulates shortest-path counts and predecessor sets,
// then a reverse-order pass propagates dependencies. Scores are normalized
// by (V−1)(V−2).
func BetweennessCentrality(g graph.Graph) map[int]float64 {
	n := g.VertexCount()
	centrality := make(map[int]float64, n)
	for v := 0; v < n; v++ {
		centrality[v] = 0.0
	}

	sigma := make([]float64, n)
	dist := make([]int, n)
	delta := make([]float64, n)
	preds := make([][]int, n)

	for s := 0; s < n; s++ {
		stack := make([]int, 0, n)
		for v := 0; v < n; v++ {
			sigma[v] = 0.0
			dist[v] = -1
			delta[v] = 0.0
			preds[v] = preds[v][:0]
		}
		sigma[s] = 1.0
		dist[s] = 0

		queue := []int{s}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)

			succ, _ := g.Successors(v)
			for _, w := range succ {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		// Reverse-order dependency accumulation.
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range preds[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1.0 + delta[w])
			}
			if w != s {
				centrality[w] += delta[w]
			}
		}
	}

	if n > 2 {
		norm := float64((n - 1) * (n - 2))
		for v := range centrality {
			centrality[v] /= norm
		}
	}
	return centrality
}

// ClosenessCentrality scores each vertex by BFS over its successors. With
// R vertices reachable at positive finite distance and S their summed
// distances, the score is (R/S)·(R/(V−1)). This reachability-weighted form
// is intentional for fragmented graphs: a vertex close to a tiny reachable
// set does not outrank one moderately close to the whole network. Vertices
// with no reachable successors score exactly 0.0.
func ClosenessCentrality(g graph.Graph) map[int]float64 {
	n := g.VertexCount()
	centrality := make(map[int]float64, n)

	for v := 0; v < n; v++ {
		reachable, total := 0, 0
		for _, d := range bfsDistances(g, v) {
			if d > 0 {
				reachable++
				total += d
			}
		}
		if total > 0 {
			score := float64(reachable) / float64(total)
			score *= float64(reachable) / float64(n-1)
			centrality[v] = score
		} else {
			centrality[v] = 0.0
		}
	}
	return centrality
}

// TopN returns at most n vertices ranked by descending score. Candidates
// are enumerated in ascending vertex id before the stable sort, so equal
// scores rank the lower id first and the ordering is deterministic.
func TopN(scores map[int]float64, n int) []RankedVertex {
	if n <= 0 {
		return nil
	}

	vertices := make([]int, 0, len(scores))
	for v := range scores {
		vertices = append(vertices, v)
	}
	sort.Ints(vertices)

	ranked := make([]RankedVertex, 0, len(vertices))
	for _, v := range vertices {
		ranked = append(ranked, RankedVertex{Vertex: v, Score: scores[v]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
