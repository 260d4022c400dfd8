package algorithms

import (
	"math"
	"testing"
)

func TestPageRank_CycleConservesMass(t *testing.T) {
	// Every vertex has out-degree 1, so no rank leaks and symmetry forces
	// equal scores.
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})

	result := PageRank(g, DefaultPageRankOptions())

	mass := 0.0
	for v, score := range result.Scores {
		if !almostEqual(score, 1.0/3.0) {
			t.Errorf("Expected 1/3 for vertex %d, got %f", v, score)
		}
		mass += score
	}
	if !almostEqual(mass, 1.0) {
		t.Errorf("Expected mass 1.0 without dangling vertices, got %f", mass)
	}
	if math.Abs(result.MassLost) > 1e-9 {
		t.Errorf("Expected no mass lost, got %f", result.MassLost)
	}
}

func TestPageRank_DanglingLeaksMass(t *testing.T) {
	// Vertex 1 has no out-edges and vertex 2 is isolated: their rank is
	// not redistributed, so the vector sums below 1.
	g := buildGraph(t, 3, [][2]int{{0, 1}})

	result := PageRank(g, DefaultPageRankOptions())

	mass := 0.0
	for _, score := range result.Scores {
		mass += score
	}
	if mass >= 1.0 {
		t.Errorf("Expected mass below 1.0 with dangling vertices, got %f", mass)
	}
	if !almostEqual(result.MassLost, 1.0-mass) {
		t.Errorf("MassLost %f does not match 1-mass %f", result.MassLost, 1.0-mass)
	}
	if result.MassLost <= 0 {
		t.Errorf("Expected positive MassLost, got %f", result.MassLost)
	}
}

func TestPageRank_RunsExactIterationCount(t *testing.T) {
	// The tolerance is recorded but never triggers an early exit, even on
	// a graph that converges immediately.
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})

	opts := PageRankOptions{DampingFactor: 0.85, MaxIterations: 7, Tolerance: 1.0}
	result := PageRank(g, opts)

	if result.Iterations != 7 {
		t.Errorf("Expected exactly 7 iterations, got %d", result.Iterations)
	}
	if result.Tolerance != 1.0 {
		t.Errorf("Expected tolerance recorded as 1.0, got %f", result.Tolerance)
	}
}

func TestPageRank_SourceRanksBelowTarget(t *testing.T) {
	// Everything points at vertex 2.
	g := buildGraph(t, 3, [][2]int{{0, 2}, {1, 2}, {2, 0}})

	result := PageRank(g, DefaultPageRankOptions())

	if result.Scores[2] <= result.Scores[1] {
		t.Errorf("Expected hub to outrank contributors: %f vs %f", result.Scores[2], result.Scores[1])
	}
}

func TestPageRank_SingleVertex(t *testing.T) {
	// A lone vertex is dangling: it keeps only the teleport share and the
	// damped share of its mass leaks every pass.
	g := buildGraph(t, 1, nil)

	result := PageRank(g, DefaultPageRankOptions())

	if len(result.Scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(result.Scores))
	}
	if !almostEqual(result.Scores[0], 0.15) {
		t.Errorf("Expected teleport-only score 0.15, got %f", result.Scores[0])
	}
	if !almostEqual(result.MassLost, 0.85) {
		t.Errorf("Expected mass lost 0.85, got %f", result.MassLost)
	}
}

func TestPageRank_ScoresPositive(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}})

	result := PageRank(g, DefaultPageRankOptions())
	for v, score := range result.Scores {
		if score <= 0 || math.IsNaN(score) {
			t.Errorf("Invalid score for vertex %d: %f", v, score)
		}
	}
}
