package analysis

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Dan007p4/TpGrafos/pkg/algorithms"
)

// WriteReport renders the human-readable analysis report. Output ordering
// is deterministic so runs over the same graph diff cleanly.
func (r *Result) WriteReport(w io.Writer) error {
	rw := &reportWriter{w: w}
	rule := strings.Repeat("=", 60)

	rw.printf("%s\n", rule)
	rw.printf("  COLLABORATION GRAPH ANALYSIS REPORT\n")
	rw.printf("  run %s\n", r.RunID)
	rw.printf("%s\n", rule)

	rw.printf("\nGRAPH STRUCTURE\n")
	rw.printf("  Vertices: %d\n", r.Vertices)
	rw.printf("  Edges: %d\n", r.Edges)
	rw.printf("  Density: %.4f\n", r.Density)
	rw.printf("  Connected: %s\n", yesNo(r.Connected))

	rw.printf("\nCOHESION METRICS\n")
	rw.printf("  Clustering coefficient: %.4f\n", r.ClusteringCoefficient)
	rw.printf("  Diameter: %d\n", r.Diameter)
	rw.printf("  Average distance: %.4f\n", r.AverageDistance)
	rw.printf("  Assortativity: %.4f\n", r.Assortativity)
	rw.printf("    Interpretation: %s\n", interpretAssortativity(r.Assortativity))

	n := r.topN
	if n <= 0 {
		n = 10
	}
	rw.printTop(fmt.Sprintf("TOP %d BY DEGREE CENTRALITY", n), r.TopByDegree(n), r)
	rw.printTop(fmt.Sprintf("TOP %d BY BETWEENNESS CENTRALITY", n), r.TopByBetweenness(n), r)
	rw.printTop(fmt.Sprintf("TOP %d BY CLOSENESS CENTRALITY", n), r.TopByCloseness(n), r)
	rw.printTop(fmt.Sprintf("TOP %d BY PAGERANK", n), r.TopByPageRank(n), r)

	rw.printf("\nCOMMUNITY DETECTION\n")
	rw.printf("  Communities: %d\n", r.CommunityCount)
	rw.printf("  Modularity (Q): %.4f\n", r.Modularity)
	rw.printf("    Interpretation: %s\n", interpretModularity(r.Modularity))
	rw.printf("\n  Member distribution:\n")
	for _, c := range sortedCommunityIDs(r.CommunityMembers) {
		rw.printf("    Community %d: %d members\n", c, len(r.CommunityMembers[c]))
	}

	rw.printf("\nBRIDGING TIES\n")
	rw.printf("  Bridges identified: %d\n", len(r.BridgingTies))
	if len(r.BridgingTies) > 0 {
		rw.printf("\n  Top bridging developers:\n")
		for i, v := range r.topBridges(n) {
			rw.printf("    %2d. %-20s (strength: %.3f)\n", i+1, r.Label(v), r.BridgingStrength[v])
		}
	}

	rw.printf("\n%s\n", rule)
	return rw.err
}

// topBridges orders the bridging vertices by descending strength, ids
// ascending on ties, truncated to n.
func (r *Result) topBridges(n int) []int {
	bridges := make([]int, len(r.BridgingTies))
	copy(bridges, r.BridgingTies)
	sort.SliceStable(bridges, func(i, j int) bool {
		si, sj := r.BridgingStrength[bridges[i]], r.BridgingStrength[bridges[j]]
		if si != sj {
			return si > sj
		}
		return bridges[i] < bridges[j]
	})
	if n < len(bridges) {
		bridges = bridges[:n]
	}
	return bridges
}

// reportWriter keeps the first write error and swallows the rest, so the
// report code reads as plain prints.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

func (rw *reportWriter) printTop(title string, ranked []algorithms.RankedVertex, r *Result) {
	rw.printf("\n%s\n", title)
	for i, entry := range ranked {
		rw.printf("    %2d. %-20s %.6f\n", i+1, r.Label(entry.Vertex), entry.Score)
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func interpretAssortativity(a float64) string {
	switch {
	case a > 0.3:
		return "assortative (influential developers collaborate with each other)"
	case a < -0.3:
		return "disassortative (hubs collaborate with the periphery)"
	default:
		return "neutral (no significant degree preference)"
	}
}

func interpretModularity(q float64) string {
	switch {
	case q > 0.7:
		return "very strong (well separated communities)"
	case q > 0.3:
		return "significant (clear community structure)"
	default:
		return "weak (communities poorly defined)"
	}
}

func sortedCommunityIDs(members map[int][]int) []int {
	ids := make([]int, 0, len(members))
	for c := range members {
		ids = append(ids, c)
	}
	sort.Ints(ids)
	return ids
}
