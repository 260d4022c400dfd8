// Package graph implements a simple directed weighted graph with a fixed
// vertex set and two interchangeable representations: a sparse adjacency
// list and a dense matrix. All analysis code works against the Graph
// interface; the representation is a construction-time choice.
package graph

import "fmt"

// Representation selects the backing structure for a Graph.
type Representation string

const (
	// AdjacencyList stores successor maps per vertex, O(V+E) space.
	AdjacencyList Representation = "list"
	// AdjacencyMatrix stores dense presence and weight matrices, O(V²) space.
	AdjacencyMatrix Representation = "matrix"
)

// Graph is a directed simple graph (no self-loops, at most one edge per
// ordered pair) over vertices with dense ids in [0, VertexCount).
// Edge weights are tracked independently of edge existence: an absent edge
// reports weight 0.0 and setting a weight implicitly creates the edge.
type Graph interface {
	// VertexCount returns the fixed number of vertices.
	VertexCount() int
	// EdgeCount returns the number of distinct ordered pairs present.
	EdgeCount() int

	// HasEdge reports whether the directed edge u->v exists.
	HasEdge(u, v int) (bool, error)
	// AddEdge inserts u->v. Adding an existing edge is a no-op.
	AddEdge(u, v int) error
	// RemoveEdge deletes u->v and clears its weight. Removing an absent
	// edge is a no-op.
	RemoveEdge(u, v int) error

	// SetEdgeWeight assigns a weight to u->v, creating the edge if absent.
	SetEdgeWeight(u, v int, w float64) error
	// EdgeWeight returns the weight of u->v, or 0.0 if the edge is absent.
	EdgeWeight(u, v int) (float64, error)

	// InDegree counts edges ending at u.
	InDegree(u int) (int, error)
	// OutDegree counts edges starting at u.
	OutDegree(u int) (int, error)

	// Successors returns the targets of edges starting at v, ascending.
	Successors(v int) ([]int, error)
	// Predecessors returns the sources of edges ending at v, ascending.
	Predecessors(v int) ([]int, error)

	// SetVertexLabel assigns a display label to v.
	SetVertexLabel(v int, label string) error
	// VertexLabel returns v's display label, defaulting to "V<id>".
	VertexLabel(v int) (string, error)
	// SetVertexWeight assigns a scalar weight to v.
	SetVertexWeight(v int, w float64) error
	// VertexWeight returns v's scalar weight, default 0.0.
	VertexWeight(v int) (float64, error)
}

// New constructs a graph with n vertices using the given representation.
// Fails with ErrInvalidConfiguration when n is not positive.
func New(rep Representation, n int) (Graph, error) {
	switch rep {
	case AdjacencyList:
		return NewAdjacencyList(n)
	case AdjacencyMatrix:
		return NewAdjacencyMatrix(n)
	default:
		return nil, fmt.Errorf("unknown graph representation %q", rep)
	}
}

// vertexAttrs holds the per-vertex metadata shared by both representations.
type vertexAttrs struct {
	n       int
	labels  map[int]string
	weights map[int]float64
}

func newVertexAttrs(n int) vertexAttrs {
	return vertexAttrs{
		n:       n,
		labels:  make(map[int]string),
		weights: make(map[int]float64),
	}
}

func (a *vertexAttrs) VertexCount() int { return a.n }

// checkVertex validates a single vertex id.
func (a *vertexAttrs) checkVertex(op string, v int) error {
	if v < 0 || v >= a.n {
		return vertexError(op, v)
	}
	return nil
}

// checkPair validates both endpoints of an edge query.
func (a *vertexAttrs) checkPair(op string, u, v int) error {
	if err := a.checkVertex(op, u); err != nil {
		return err
	}
	return a.checkVertex(op, v)
}

// checkEdge validates both endpoints and rejects self-loops. Used by the
// edge-mutating operations.
func (a *vertexAttrs) checkEdge(op string, u, v int) error {
	if err := a.checkPair(op, u, v); err != nil {
		return err
	}
	if u == v {
		return edgeError(op, u, v)
	}
	return nil
}

func (a *vertexAttrs) SetVertexLabel(v int, label string) error {
	if err := a.checkVertex("SetVertexLabel", v); err != nil {
		return err
	}
	a.labels[v] = label
	return nil
}

func (a *vertexAttrs) VertexLabel(v int) (string, error) {
	if err := a.checkVertex("VertexLabel", v); err != nil {
		return "", err
	}
	if label, ok := a.labels[v]; ok {
		return label, nil
	}
	return fmt.Sprintf("V%d", v), nil
}

func (a *vertexAttrs) SetVertexWeight(v int, w float64) error {
	if err := a.checkVertex("SetVertexWeight", v); err != nil {
		return err
	}
	a.weights[v] = w
	return nil
}

func (a *vertexAttrs) VertexWeight(v int) (float64, error) {
	if err := a.checkVertex("VertexWeight", v); err != nil {
		return 0, err
	}
	return a.weights[v], nil
}
