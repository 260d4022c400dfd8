// Package analysis orchestrates the structural, centrality and community
// analyzers over one immutable graph snapshot and assembles their output
// into a single result value.
package analysis

import (
	"fmt"
	"time"

	"github.com/Dan007p4/TpGrafos/pkg/algorithms"
)

// Result holds everything one analysis run produced. It is a plain value:
// once assembled it is never mutated, so callers may share it freely.
type Result struct {
	RunID          string
	StartedAt      time.Time
	Duration       time.Duration
	StageDurations map[string]time.Duration

	Vertices  int
	Edges     int
	Connected bool

	// Structural metrics
	Density               float64
	ClusteringCoefficient float64
	Diameter              int
	AverageDistance       float64
	DegreeDistribution    map[int]int
	Assortativity         float64

	// Centrality metrics
	DegreeCentrality      map[int]float64
	BetweennessCentrality map[int]float64
	ClosenessCentrality   map[int]float64
	PageRank              map[int]float64
	PageRankIterations    int
	PageRankMassLost      float64

	// Community analysis
	Communities      map[int]int
	CommunityCount   int
	CommunityMembers map[int][]int
	Modularity       float64
	BridgingTies     []int
	BridgingStrength map[int]float64

	labels []string
	topN   int
}

// TopByDegree returns the n highest-ranked vertices by degree centrality.
func (r *Result) TopByDegree(n int) []algorithms.RankedVertex {
	return algorithms.TopN(r.DegreeCentrality, n)
}

// TopByBetweenness returns the n highest-ranked vertices by betweenness.
func (r *Result) TopByBetweenness(n int) []algorithms.RankedVertex {
	return algorithms.TopN(r.BetweennessCentrality, n)
}

// TopByCloseness returns the n highest-ranked vertices by closeness.
func (r *Result) TopByCloseness(n int) []algorithms.RankedVertex {
	return algorithms.TopN(r.ClosenessCentrality, n)
}

// TopByPageRank returns the n highest-ranked vertices by PageRank.
func (r *Result) TopByPageRank(n int) []algorithms.RankedVertex {
	return algorithms.TopN(r.PageRank, n)
}

// CommunityOf returns the community id of v.
func (r *Result) CommunityOf(v int) (int, bool) {
	c, ok := r.Communities[v]
	return c, ok
}

// Label returns the developer login behind vertex v, or a positional
// fallback when the vertex is unknown.
func (r *Result) Label(v int) string {
	if v >= 0 && v < len(r.labels) {
		return r.labels[v]
	}
	return fmt.Sprintf("V%d", v)
}
