package algorithms

import (
	"math"
	"testing"
)

func TestDegreeCentrality_CompleteDigraph(t *testing.T) {
	g := buildGraph(t, 4, nil)
	addMutualClique(t, g, []int{0, 1, 2, 3})

	scores := DegreeCentrality(g)
	for v, score := range scores {
		if !almostEqual(score, 1.0) {
			t.Errorf("Expected 1.0 for vertex %d on complete digraph, got %f", v, score)
		}
	}
}

func TestDegreeCentrality_SingleVertex(t *testing.T) {
	g := buildGraph(t, 1, nil)

	scores := DegreeCentrality(g)
	if scores[0] != 0.0 {
		t.Errorf("Expected 0.0 for single vertex, got %f", scores[0])
	}
}

func TestDegreeCentrality_Star(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})

	scores := DegreeCentrality(g)
	if !almostEqual(scores[0], 3.0/6.0) {
		t.Errorf("Expected 0.5 for star center, got %f", scores[0])
	}
	if !almostEqual(scores[1], 1.0/6.0) {
		t.Errorf("Expected 1/6 for star leaf, got %f", scores[1])
	}
}

func TestBetweennessCentrality_Path(t *testing.T) {
	// 0->1->2: the only shortest path through an interior vertex is 0->2
	// through 1. Raw score 1 normalized by (n-1)(n-2)=2.
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}})

	scores := BetweennessCentrality(g)
	if !almostEqual(scores[1], 0.5) {
		t.Errorf("Expected 0.5 for path middle, got %f", scores[1])
	}
	if scores[0] != 0.0 || scores[2] != 0.0 {
		t.Errorf("Expected 0.0 for path endpoints, got %f and %f", scores[0], scores[2])
	}
}

func TestBetweennessCentrality_SplitPaths(t *testing.T) {
	// Two equal shortest paths 0->3: through 1 and through 2. Each carries
	// half the dependency, normalized by (4-1)(4-2)=6.
	g := buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})

	scores := BetweennessCentrality(g)
	if !almostEqual(scores[1], 0.5/6.0) {
		t.Errorf("Expected %f for split path vertex, got %f", 0.5/6.0, scores[1])
	}
	if !almostEqual(scores[1], scores[2]) {
		t.Errorf("Expected symmetric scores, got %f and %f", scores[1], scores[2])
	}
}

func TestBetweennessCentrality_TwoVertices(t *testing.T) {
	// No interior vertices exist, and the (n-1)(n-2) normalization is
	// skipped rather than dividing by zero.
	g := buildGraph(t, 2, [][2]int{{0, 1}})

	scores := BetweennessCentrality(g)
	for v, score := range scores {
		if score != 0.0 {
			t.Errorf("Expected 0.0 for vertex %d, got %f", v, score)
		}
	}
}

func TestClosenessCentrality_Path(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}})

	scores := ClosenessCentrality(g)
	// Vertex 0 reaches {1,2} with summed distance 3: (2/3)*(2/2).
	if !almostEqual(scores[0], 2.0/3.0) {
		t.Errorf("Expected 2/3 for source, got %f", scores[0])
	}
	// Vertex 1 reaches {2} at distance 1: (1/1)*(1/2).
	if !almostEqual(scores[1], 0.5) {
		t.Errorf("Expected 0.5 for middle, got %f", scores[1])
	}
}

func TestClosenessCentrality_Sink(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 2}, {1, 2}})

	scores := ClosenessCentrality(g)
	if scores[2] != 0.0 {
		t.Errorf("Expected exactly 0.0 for sink, got %f", scores[2])
	}
}

func TestClosenessCentrality_ReachabilityWeighting(t *testing.T) {
	// Vertex 0 reaches only its immediate neighbor, vertex 2 reaches two
	// vertices at distances 1 and 2. Plain inverse-distance closeness
	// would score 0 higher; reachability weighting ranks 2 above 0.
	g := buildGraph(t, 4, [][2]int{{0, 1}, {2, 3}, {3, 1}})

	scores := ClosenessCentrality(g)
	if scores[2] <= scores[0] {
		t.Errorf("Expected broad reach to outrank short reach: %f vs %f", scores[2], scores[0])
	}
}

func TestTopN_OrderAndTruncation(t *testing.T) {
	scores := map[int]float64{0: 0.2, 1: 0.9, 2: 0.5, 3: 0.9}

	ranked := TopN(scores, 3)
	if len(ranked) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(ranked))
	}
	// Equal scores rank the lower vertex id first.
	if ranked[0].Vertex != 1 || ranked[1].Vertex != 3 || ranked[2].Vertex != 2 {
		t.Errorf("Unexpected ranking order: %+v", ranked)
	}
}

func TestTopN_FewerScoresThanN(t *testing.T) {
	ranked := TopN(map[int]float64{0: 1.0}, 10)
	if len(ranked) != 1 {
		t.Errorf("Expected 1 result, got %d", len(ranked))
	}
}

func TestTopN_NonPositiveN(t *testing.T) {
	if ranked := TopN(map[int]float64{0: 1.0}, 0); ranked != nil {
		t.Errorf("Expected nil for n=0, got %+v", ranked)
	}
}

func TestBetweennessCentrality_ScoresNonNegative(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {1, 3}})

	for v, score := range BetweennessCentrality(g) {
		if score < 0 || math.IsNaN(score) {
			t.Errorf("Invalid betweenness for vertex %d: %f", v, score)
		}
	}
}
