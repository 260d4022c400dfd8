package algorithms

import "github.com/Dan007p4/TpGrafos/pkg/graph"

// PageRankOptions configures the PageRank computation.
type PageRankOptions struct {
	// DampingFactor is the probability of following an edge rather than
	// jumping to a random vertex. Usually 0.85.
	DampingFactor float64
	// MaxIterations is the exact number of update passes performed.
	MaxIterations int
	// Tolerance is accepted for API compatibility and recorded on the
	// result, but it is NOT used to stop early: the computation always runs
	// exactly MaxIterations passes so output does not depend on how fast a
	// particular graph converges.
	Tolerance float64
}

// DefaultPageRankOptions returns the standard configuration.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		DampingFactor: 0.85,
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// PageRankResult holds the final score vector and run metadata.
type PageRankResult struct {
	Scores     map[int]float64
	Iterations int
	Tolerance  float64
	// MassLost is 1 − Σscores. Vertices with no out-edges do not
	// redistribute their rank, so graphs with dangling vertices leak mass
	// and the vector sums below 1. This non-conservation is intentional.
	MassLost float64
}

// PageRank computes PageRank with synchronous updates: every pass reads the
// previous pass's full vector and writes a fresh one, so no update is
// visible before the pass completes. Dangling vertices (out-degree 0)
// contribute nothing.
func PageRank(g graph.Graph, opts PageRankOptions) *PageRankResult {
	n := g.VertexCount()

	outDegree := make([]int, n)
	for v := 0; v < n; v++ {
		out, _ := g.OutDegree(v)
		outDegree[v] = out
	}

	scores := make([]float64, n)
	next := make([]float64, n)
	initial := 1.0 / float64(n)
	for v := 0; v < n; v++ {
		scores[v] = initial
	}

	base := (1.0 - opts.DampingFactor) / float64(n)
	for iter := 0; iter < opts.MaxIterations; iter++ {
		for v := 0; v < n; v++ {
			sum := 0.0
			pred, _ := g.Predecessors(v)
			for _, u := range pred {
				if outDegree[u] > 0 {
					sum += scores[u] / float64(outDegree[u])
				}
			}
			next[v] = base + opts.DampingFactor*sum
		}
		scores, next = next, scores
	}

	result := make(map[int]float64, n)
	mass := 0.0
	for v := 0; v < n; v++ {
		result[v] = scores[v]
		mass += scores[v]
	}

	return &PageRankResult{
		Scores:     result,
		Iterations: opts.MaxIterations,
		Tolerance:  opts.Tolerance,
		MassLost:   1.0 - mass,
	}
}
