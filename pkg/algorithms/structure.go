package algorithms

import (
	"math"

	"github.com/Dan007p4/TpGrafos/pkg/graph"
)

// Density returns |E| / (V·(V−1)), the directed-graph density.
// Graphs with a single vertex have density 0.
func Density(g graph.Graph) float64 {
	n := g.VertexCount()
	if n <= 1 {
		return 0.0
	}
	return float64(g.EdgeCount()) / float64(n*(n-1))
}

// LocalClustering returns the clustering coefficient of v: the fraction of
// v's neighbor pairs (union of predecessors and successors, deduplicated)
// connected by an edge in either direction. Vertices with fewer than two
// neighbors score 0.0.
func LocalClustering(g graph.Graph, v int) float64 {
	neighbors := undirectedNeighbors(g, v)
	k := len(neighbors)
	if k < 2 {
		return 0.0
	}

	connected := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			u, w := neighbors[i], neighbors[j]
			forward, _ := g.HasEdge(u, w)
			backward, _ := g.HasEdge(w, u)
			if forward || backward {
				connected++
			}
		}
	}
	return float64(connected) / float64(k*(k-1)/2)
}

// AverageClustering returns the mean local clustering coefficient over all
// vertices. Low-degree vertices contribute 0.0 and stay in the mean.
func AverageClustering(g graph.Graph) float64 {
	n := g.VertexCount()
	total := 0.0
	for v := 0; v < n; v++ {
		total += LocalClustering(g, v)
	}
	return total / float64(n)
}

// DegreeDistribution returns a histogram mapping total degree (in+out) to
// the number of vertices with that degree.
func DegreeDistribution(g graph.Graph) map[int]int {
	distribution := make(map[int]int)
	for _, degree := range totalDegrees(g) {
		distribution[degree]++
	}
	return distribution
}

// Diameter returns the longest finite directed BFS distance over all source
// vertices. Unreachable pairs are ignored, not treated as infinite, so
// fragmented graphs report the diameter of their largest reachable stretch.
func Diameter(g graph.Graph) int {
	n := g.VertexCount()
	diameter := 0
	for v := 0; v < n; v++ {
		for _, d := range bfsDistances(g, v) {
			if d > diameter {
				diameter = d
			}
		}
	}
	return diameter
}

// AverageDistance returns the mean of all finite positive directed BFS
// distances, under the same reachability restriction as Diameter.
func AverageDistance(g graph.Graph) float64 {
	n := g.VertexCount()
	total, count := 0, 0
	for v := 0; v < n; v++ {
		for _, d := range bfsDistances(g, v) {
			if d > 0 {
				total += d
				count++
			}
		}
	}
	if count == 0 {
		return 0.0
	}
	return float64(total) / float64(count)
}

// Assortativity returns the Pearson correlation between source and target
// total degrees, with one observation per directed edge (not symmetrized).
// Returns 0 when there are no edges or either variance term vanishes.
//
// Positive values mean high-degree developers collaborate with each other;
// negative values mean hubs connect to the periphery.
func Assortativity(g graph.Graph) float64 {
	if g.EdgeCount() == 0 {
		return 0.0
	}

	degrees := totalDegrees(g)
	n := g.VertexCount()

	var sumJK, sumJ, sumK, sumJ2, sumK2 float64
	edges := 0
	for u := 0; u < n; u++ {
		succ, _ := g.Successors(u)
		for _, v := range succ {
			j := float64(degrees[u])
			k := float64(degrees[v])
			sumJK += j * k
			sumJ += j
			sumK += k
			sumJ2 += j * j
			sumK2 += k * k
			edges++
		}
	}
	if edges == 0 {
		return 0.0
	}

	m := float64(edges)
	numerator := m*sumJK - sumJ*sumK
	varJ := m*sumJ2 - sumJ*sumJ
	varK := m*sumK2 - sumK*sumK
	if varJ <= 0 || varK <= 0 {
		return 0.0
	}
	return numerator / math.Sqrt(varJ*varK)
}
