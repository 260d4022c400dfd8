package graph

// MatrixGraph is the dense matrix representation: a boolean presence matrix
// and a separate weight matrix, O(V²) space with O(1) edge lookup. Presence
// and weight are tracked independently so a removed edge leaves no stale
// weight behind.
type MatrixGraph struct {
	vertexAttrs
	present   [][]bool
	weight    [][]float64
	edgeCount int
}

var _ Graph = (*MatrixGraph)(nil)

// NewAdjacencyMatrix constructs an empty dense graph with n vertices.
func NewAdjacencyMatrix(n int) (*MatrixGraph, error) {
	if n <= 0 {
		return nil, ErrInvalidConfiguration
	}
	g := &MatrixGraph{
		vertexAttrs: newVertexAttrs(n),
		present:     make([][]bool, n),
		weight:      make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		g.present[i] = make([]bool, n)
		g.weight[i] = make([]float64, n)
	}
	return g, nil
}

func (g *MatrixGraph) EdgeCount() int { return g.edgeCount }

func (g *MatrixGraph) HasEdge(u, v int) (bool, error) {
	if err := g.checkPair("HasEdge", u, v); err != nil {
		return false, err
	}
	return g.present[u][v], nil
}

func (g *MatrixGraph) AddEdge(u, v int) error {
	if err := g.checkEdge("AddEdge", u, v); err != nil {
		return err
	}
	if !g.present[u][v] {
		g.present[u][v] = true
		g.edgeCount++
	}
	return nil
}

func (g *MatrixGraph) RemoveEdge(u, v int) error {
	if err := g.checkEdge("RemoveEdge", u, v); err != nil {
		return err
	}
	if g.present[u][v] {
		g.present[u][v] = false
		g.weight[u][v] = 0.0
		g.edgeCount--
	}
	return nil
}

func (g *MatrixGraph) SetEdgeWeight(u, v int, w float64) error {
	if err := g.checkEdge("SetEdgeWeight", u, v); err != nil {
		return err
	}
	if !g.present[u][v] {
		g.present[u][v] = true
		g.edgeCount++
	}
	g.weight[u][v] = w
	return nil
}

func (g *MatrixGraph) EdgeWeight(u, v int) (float64, error) {
	if err := g.checkPair("EdgeWeight", u, v); err != nil {
		return 0, err
	}
	if !g.present[u][v] {
		return 0.0, nil
	}
	return g.weight[u][v], nil
}

func (g *MatrixGraph) InDegree(u int) (int, error) {
	if err := g.checkVertex("InDegree", u); err != nil {
		return 0, err
	}
	degree := 0
	for i := 0; i < g.n; i++ {
		if g.present[i][u] {
			degree++
		}
	}
	return degree, nil
}

func (g *MatrixGraph) OutDegree(u int) (int, error) {
	if err := g.checkVertex("OutDegree", u); err != nil {
		return 0, err
	}
	degree := 0
	for i := 0; i < g.n; i++ {
		if g.present[u][i] {
			degree++
		}
	}
	return degree, nil
}

func (g *MatrixGraph) Successors(v int) ([]int, error) {
	if err := g.checkVertex("Successors", v); err != nil {
		return nil, err
	}
	out := make([]int, 0)
	for i := 0; i < g.n; i++ {
		if g.present[v][i] {
			out = append(out, i)
		}
	}
	return out, nil
}

func (g *MatrixGraph) Predecessors(v int) ([]int, error) {
	if err := g.checkVertex("Predecessors", v); err != nil {
		return nil, err
	}
	in := make([]int, 0)
	for i := 0; i < g.n; i++ {
		if g.present[i][v] {
			in = append(in, i)
		}
	}
	return in, nil
}
