package algorithms

import (
	"sort"

	"github.com/Dan007p4/TpGrafos/pkg/graph"
)

// DefaultCommunityIterations caps the number of greedy passes.
const DefaultCommunityIterations = 100

// DetectCommunities runs a single-level greedy modularity optimization.
//
// This is deliberately NOT the full two-phase Louvain method: there is no
// coarsening step where communities collapse into super-vertices. The
// heuristic over-fragments sparse graphs and can land on partitions with
// negative modularity; callers should read the modularity score alongside
// the partition.
//
// Every vertex starts in its own community. Each pass visits vertices in
// increasing id order; for each vertex the gain of every distinct neighbor
// community is measured against the gain of staying in (rejoining) its own
// community with the vertex itself excluded, and the vertex moves to the
// strictly best candidate. Without that rejoin baseline the greedy thrashes
// on symmetric graphs: a vertex always profits from joining a neighbor and
// the pass loop never reaches a fixed point. Moves take effect immediately,
// so later vertices in the same pass see them. Passes repeat until one
// completes without any move, or maxIterations is reached. Returned
// community ids are renumbered contiguously by first appearance.
func DetectCommunities(g graph.Graph, maxIterations int) map[int]int {
	n := g.VertexCount()
	if maxIterations <= 0 {
		maxIterations = DefaultCommunityIterations
	}

	communities := make([]int, n)
	for v := 0; v < n; v++ {
		communities[v] = v
	}

	degrees := totalDegrees(g)
	m := g.EdgeCount()

	improved := true
	for iter := 0; improved && iter < maxIterations; iter++ {
		improved = false

		for v := 0; v < n; v++ {
			own := communities[v]
			best := own
			bestGain := modularityGain(g, v, own, communities, degrees, m)

			for _, c := range neighborCommunities(g, v, communities) {
				if c == own {
					continue
				}
				gain := modularityGain(g, v, c, communities, degrees, m)
				if gain > bestGain {
					bestGain = gain
					best = c
				}
			}

			if best != own {
				communities[v] = best
				improved = true
			}
		}
	}

	return renumber(communities)
}

// neighborCommunities lists the communities of v's neighbors in first-seen
// order (successors before predecessors), deduplicated. First-seen order is
// what breaks gain ties: the strictly-greater comparison in the caller keeps
// the earliest candidate.
func neighborCommunities(g graph.Graph, v int, communities []int) []int {
	succ, _ := g.Successors(v)
	pred, _ := g.Predecessors(v)

	seen := make(map[int]struct{}, len(succ)+len(pred))
	order := make([]int, 0, len(succ)+len(pred))
	for _, list := range [][]int{succ, pred} {
		for _, u := range list {
			c := communities[u]
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				order = append(order, c)
			}
		}
	}
	return order
}

// modularityGain evaluates ΔQ for moving v into community c:
//
//	ΔQ = k_in/(2m) − (Σtot·k_v)/(2m)²
//
// where k_v is v's total degree, k_in counts v's edges in both directions
// into c's current members, and Σtot sums the total degrees of c's members
// other than v itself.
func modularityGain(g graph.Graph, v, c int, communities, degrees []int, m int) float64 {
	if m == 0 {
		return 0.0
	}
	twoM := 2.0 * float64(m)

	kIn := 0
	succ, _ := g.Successors(v)
	for _, u := range succ {
		if communities[u] == c {
			kIn++
		}
	}
	pred, _ := g.Predecessors(v)
	for _, u := range pred {
		if communities[u] == c {
			kIn++
		}
	}

	// v is excluded from the target's degree mass so the gain of rejoining
	// its own community is comparable with the gain of any foreign one.
	sigmaTot := 0
	for u, cu := range communities {
		if cu == c && u != v {
			sigmaTot += degrees[u]
		}
	}

	return float64(kIn)/twoM - (float64(sigmaTot)*float64(degrees[v]))/(twoM*twoM)
}

// renumber maps raw community ids to contiguous ids by first appearance
// over ascending vertex ids. Raw ids carry no meaning; only the partition
// does.
func renumber(communities []int) map[int]int {
	mapping := make(map[int]int)
	result := make(map[int]int, len(communities))
	next := 0
	for v, raw := range communities {
		id, ok := mapping[raw]
		if !ok {
			id = next
			mapping[raw] = id
			next++
		}
		result[v] = id
	}
	return result
}

// Modularity computes Newman-Girvan modularity for a partition:
//
//	Q = (1/2m)·Σ_{i,j same community} (A_ij − k_i·k_j/(2m))
//
// The sum runs over ALL ordered vertex pairs in the same community,
// including i=j (A_ii is always 0 for a simple graph, but the expected-edge
// term still applies). Q can go negative on over-fragmented partitions.
func Modularity(g graph.Graph, communities map[int]int) float64 {
	m := g.EdgeCount()
	if m == 0 {
		return 0.0
	}

	n := g.VertexCount()
	degrees := totalDegrees(g)
	twoM := 2.0 * float64(m)

	q := 0.0
	for i := 0; i < n; i++ {
		ci, ok := communities[i]
		if !ok {
			continue
		}
		for j := 0; j < n; j++ {
			cj, ok := communities[j]
			if !ok || ci != cj {
				continue
			}
			aij := 0.0
			if i != j {
				if has, _ := g.HasEdge(i, j); has {
					aij = 1.0
				}
			}
			q += aij - float64(degrees[i])*float64(degrees[j])/twoM
		}
	}
	return q / twoM
}

// CommunityCount returns the number of distinct communities in a partition.
func CommunityCount(communities map[int]int) int {
	distinct := make(map[int]struct{}, len(communities))
	for _, c := range communities {
		distinct[c] = struct{}{}
	}
	return len(distinct)
}

// CommunityMembers groups vertices by community id, member lists ascending.
func CommunityMembers(communities map[int]int) map[int][]int {
	members := make(map[int][]int)
	for v, c := range communities {
		members[c] = append(members[c], v)
	}
	for c := range members {
		sort.Ints(members[c])
	}
	return members
}
