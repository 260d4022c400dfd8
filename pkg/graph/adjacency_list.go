package graph

import "sort"

// ListGraph is the sparse adjacency-list representation. Each vertex keeps a
// successor->weight map plus a reverse index so predecessor queries and
// in-degree run in O(deg) instead of a full vertex scan.
type ListGraph struct {
	vertexAttrs
	succ      []map[int]float64
	pred      []map[int]struct{}
	edgeCount int
}

var _ Graph = (*ListGraph)(nil)

// NewAdjacencyList constructs an empty sparse graph with n vertices.
func NewAdjacencyList(n int) (*ListGraph, error) {
	if n <= 0 {
		return nil, ErrInvalidConfiguration
	}
	g := &ListGraph{
		vertexAttrs: newVertexAttrs(n),
		succ:        make([]map[int]float64, n),
		pred:        make([]map[int]struct{}, n),
	}
	for i := 0; i < n; i++ {
		g.succ[i] = make(map[int]float64)
		g.pred[i] = make(map[int]struct{})
	}
	return g, nil
}

func (g *ListGraph) EdgeCount() int { return g.edgeCount }

func (g *ListGraph) HasEdge(u, v int) (bool, error) {
	if err := g.checkPair("HasEdge", u, v); err != nil {
		return false, err
	}
	_, ok := g.succ[u][v]
	return ok, nil
}

func (g *ListGraph) AddEdge(u, v int) error {
	if err := g.checkEdge("AddEdge", u, v); err != nil {
		return err
	}
	if _, ok := g.succ[u][v]; !ok {
		g.succ[u][v] = 0.0
		g.pred[v][u] = struct{}{}
		g.edgeCount++
	}
	return nil
}

func (g *ListGraph) RemoveEdge(u, v int) error {
	if err := g.checkEdge("RemoveEdge", u, v); err != nil {
		return err
	}
	if _, ok := g.succ[u][v]; ok {
		delete(g.succ[u], v)
		delete(g.pred[v], u)
		g.edgeCount--
	}
	return nil
}

func (g *ListGraph) SetEdgeWeight(u, v int, w float64) error {
	if err := g.checkEdge("SetEdgeWeight", u, v); err != nil {
		return err
	}
	if _, ok := g.succ[u][v]; !ok {
		g.pred[v][u] = struct{}{}
		g.edgeCount++
	}
	g.succ[u][v] = w
	return nil
}

func (g *ListGraph) EdgeWeight(u, v int) (float64, error) {
	if err := g.checkPair("EdgeWeight", u, v); err != nil {
		return 0, err
	}
	return g.succ[u][v], nil
}

func (g *ListGraph) InDegree(u int) (int, error) {
	if err := g.checkVertex("InDegree", u); err != nil {
		return 0, err
	}
	return len(g.pred[u]), nil
}

func (g *ListGraph) OutDegree(u int) (int, error) {
	if err := g.checkVertex("OutDegree", u); err != nil {
		return 0, err
	}
	return len(g.succ[u]), nil
}

func (g *ListGraph) Successors(v int) ([]int, error) {
	if err := g.checkVertex("Successors", v); err != nil {
		return nil, err
	}
	out := make([]int, 0, len(g.succ[v]))
	for w := range g.succ[v] {
		out = append(out, w)
	}
	sort.Ints(out)
	return out, nil
}

func (g *ListGraph) Predecessors(v int) ([]int, error) {
	if err := g.checkVertex("Predecessors", v); err != nil {
		return nil, err
	}
	in := make([]int, 0, len(g.pred[v]))
	for u := range g.pred[v] {
		in = append(in, u)
	}
	sort.Ints(in)
	return in, nil
}
