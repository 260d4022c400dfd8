package graph

// Structural predicates derived from the Graph contract. They are package
// functions over the interface so both representations share one definition.

// IsSuccessor reports whether v is a direct successor of u (edge u->v exists).
func IsSuccessor(g Graph, u, v int) (bool, error) {
	return g.HasEdge(u, v)
}

// IsPredecessor reports whether v is a direct predecessor of u (edge v->u exists).
func IsPredecessor(g Graph, u, v int) (bool, error) {
	return g.HasEdge(v, u)
}

// IsDivergent reports whether the edges (u1,v1) and (u2,v2) both exist,
// share their source and point at distinct targets.
func IsDivergent(g Graph, u1, v1, u2, v2 int) (bool, error) {
	first, err := g.HasEdge(u1, v1)
	if err != nil {
		return false, err
	}
	second, err := g.HasEdge(u2, v2)
	if err != nil {
		return false, err
	}
	return u1 == u2 && v1 != v2 && first && second, nil
}

// IsConvergent reports whether the edges (u1,v1) and (u2,v2) both exist,
// share their target and start at distinct sources.
func IsConvergent(g Graph, u1, v1, u2, v2 int) (bool, error) {
	first, err := g.HasEdge(u1, v1)
	if err != nil {
		return false, err
	}
	second, err := g.HasEdge(u2, v2)
	if err != nil {
		return false, err
	}
	return v1 == v2 && u1 != u2 && first && second, nil
}

// IsIncident reports whether the edge (u,v) exists and touches vertex x.
func IsIncident(g Graph, u, v, x int) (bool, error) {
	has, err := g.HasEdge(u, v)
	if err != nil {
		return false, err
	}
	if err := validate(g, "IsIncident", x); err != nil {
		return false, err
	}
	return has && (u == x || v == x), nil
}

// IsConnected checks weak connectivity: every vertex is reachable from
// vertex 0 when edges are traversed in both directions. An edgeless graph
// is vacuously connected.
func IsConnected(g Graph) bool {
	n := g.VertexCount()
	if n <= 1 {
		return true
	}
	if g.EdgeCount() == 0 {
		return true
	}

	visited := make([]bool, n)
	visited[0] = true
	queue := []int{0}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		succ, _ := g.Successors(v)
		for _, w := range succ {
			if !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
		pred, _ := g.Predecessors(v)
		for _, u := range pred {
			if !visited[u] {
				visited[u] = true
				queue = append(queue, u)
			}
		}
	}

	for _, seen := range visited {
		if !seen {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the graph has no edges.
func IsEmpty(g Graph) bool {
	return g.EdgeCount() == 0
}

// IsComplete reports whether every ordered pair of distinct vertices is
// connected.
func IsComplete(g Graph) bool {
	n := g.VertexCount()
	return g.EdgeCount() == n*(n-1)
}

// validate checks a bare vertex id against the graph bounds using a
// zero-cost existing query.
func validate(g Graph, op string, v int) error {
	if v < 0 || v >= g.VertexCount() {
		return vertexError(op, v)
	}
	return nil
}
