package algorithms

import "github.com/Dan007p4/TpGrafos/pkg/graph"

// DefaultBridgingThreshold is the minimum fraction of a vertex's edge
// endpoints that must cross community boundaries for it to count as a
// bridging tie.
const DefaultBridgingThreshold = 0.3

// BridgingTies identifies vertices that bridge detected communities:
// developers whose collaborations span groups that would otherwise be
// isolated from each other. A vertex qualifies when it touches at least two
// distinct foreign communities and at least threshold of its edge endpoints
// (successors and predecessors each counted) are inter-community. A
// non-positive threshold falls back to DefaultBridgingThreshold.
func BridgingTies(g graph.Graph, communities map[int]int, threshold float64) []int {
	if threshold <= 0 {
		threshold = DefaultBridgingThreshold
	}

	bridges := make([]int, 0)
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		foreign, total, inter := bridgingCounts(g, v, communities)
		if len(foreign) >= 2 && total > 0 {
			if float64(inter)/float64(total) >= threshold {
				bridges = append(bridges, v)
			}
		}
	}
	return bridges
}

// BridgingStrength quantifies how important each vertex is for connecting
// communities: the number of distinct foreign communities touched times the
// inter-community fraction of its edges. Neighborless vertices score 0.0.
func BridgingStrength(g graph.Graph, communities map[int]int) map[int]float64 {
	n := g.VertexCount()
	strength := make(map[int]float64, n)
	for v := 0; v < n; v++ {
		foreign, total, inter := bridgingCounts(g, v, communities)
		if total == 0 {
			strength[v] = 0.0
			continue
		}
		strength[v] = float64(len(foreign)) * (float64(inter) / float64(total))
	}
	return strength
}

// bridgingCounts tallies v's distinct foreign communities, its total edge
// endpoints and the inter-community subset. Both directions contribute one
// endpoint each, so a mutual edge counts twice, matching how degree-based
// fractions are read elsewhere.
func bridgingCounts(g graph.Graph, v int, communities map[int]int) (foreign map[int]struct{}, total, inter int) {
	foreign = make(map[int]struct{})
	own, ok := communities[v]
	if !ok {
		return foreign, 0, 0
	}

	succ, _ := g.Successors(v)
	pred, _ := g.Predecessors(v)
	for _, list := range [][]int{succ, pred} {
		for _, u := range list {
			total++
			c, ok := communities[u]
			if !ok || c == own {
				continue
			}
			foreign[c] = struct{}{}
			inter++
		}
	}
	return foreign, total, inter
}
