// Package core: query and mutation methods on Graph.
package core

import "sort"

// Order returns the number of nodes.
// Complexity: O(1).
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges.
// Complexity: O(1).
func (g *Graph) Size() int { return len(g.edges) }

// checkNode validates a single node index against [0, n).
func (g *Graph) checkNode(v int) error {
	if v < 0 || v >= g.n {
		return ErrNodeOutOfRange
	}

	return nil
}

// AddEdge inserts the undirected edge {u, v} with weight w.
//
// Errors:
//   - ErrNodeOutOfRange if either endpoint is outside [0, Order()).
//   - ErrSelfLoop if u == v.
//   - ErrDuplicateEdge if the pair already carries an edge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) error {
	// Validate endpoints before touching any state.
	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}
	if u == v {
		return ErrSelfLoop
	}
	if _, ok := g.adj[u][v]; ok {
		return ErrDuplicateEdge
	}

	// Mirror the weight in both orientations for O(deg) neighbor queries.
	g.adj[u][v] = w
	g.adj[v][u] = w

	// Record in canonical orientation, preserving insertion order.
	if u > v {
		u, v = v, u
	}
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: w})

	return nil
}

// RemoveEdge deletes the undirected edge {u, v} if present.
// Returns ErrNodeOutOfRange on bad indices; removing an absent edge is a no-op.
//
// The edge list keeps insertion order of the surviving edges, so a remove
// followed by re-adds stays deterministic.
//
// Complexity: O(Size()) worst case for the edge-list scan; the scan runs
// backwards because the caller almost always reverts the most recent insert.
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}
	if _, ok := g.adj[u][v]; !ok {
		return nil
	}

	delete(g.adj[u], v)
	delete(g.adj[v], u)

	if u > v {
		u, v = v, u
	}
	for i := len(g.edges) - 1; i >= 0; i-- {
		if g.edges[i].U == u && g.edges[i].V == v {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			break
		}
	}

	return nil
}

// HasEdge reports whether {u, v} is present. Out-of-range indices report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Weight returns the weight of edge {u, v} and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, bool) {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return 0, false
	}
	w, ok := g.adj[u][v]

	return w, ok
}

// Degree returns the number of edges incident to v, or 0 for an invalid index.
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}

	return len(g.adj[v])
}

// Neighbors returns the neighbor indices of v in ascending order.
// Returns nil for an invalid index.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}
	ns := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		ns = append(ns, u)
	}
	sort.Ints(ns)

	return ns
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(Size()).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// SortedEdges returns a copy of the edge list sorted by (U, V) ascending.
// Use this canonical order when comparing graphs for equality.
// Complexity: O(Size log Size).
func (g *Graph) SortedEdges() []Edge {
	out := g.Edges()
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// IsolatedNodes returns the indices of nodes with no incident edge,
// in ascending order.
// Complexity: O(n).
func (g *Graph) IsolatedNodes() []int {
	var iso []int
	for v := 0; v < g.n; v++ {
		if len(g.adj[v]) == 0 {
			iso = append(iso, v)
		}
	}

	return iso
}

// Label returns the external label of node v, or the empty string when no
// labels were attached or the index is invalid.
// Complexity: O(1).
func (g *Graph) Label(v int) string {
	if g.labels == nil || v < 0 || v >= g.n {
		return ""
	}

	return g.labels[v]
}

// SetLabels attaches external labels after construction, one per node.
// Returns ErrLabelCount on a length mismatch; nil labels detach.
// Complexity: O(n).
func (g *Graph) SetLabels(labels []string) error {
	if labels == nil {
		g.labels = nil

		return nil
	}
	if len(labels) != g.n {
		return ErrLabelCount
	}
	g.labels = make([]string, len(labels))
	copy(g.labels, labels)

	return nil
}

// Labels returns a copy of the attached label slice, or nil when absent.
// Complexity: O(n).
func (g *Graph) Labels() []string {
	if g.labels == nil {
		return nil
	}
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// Clone returns a deep copy of the graph: adjacency, edge list and labels are
// all independent of the receiver.
// Complexity: O(n + Size()).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		n:     g.n,
		adj:   make([]map[int]float64, g.n),
		edges: make([]Edge, len(g.edges)),
	}
	for v := range g.adj {
		c.adj[v] = make(map[int]float64, len(g.adj[v]))
		for u, w := range g.adj[v] {
			c.adj[v][u] = w
		}
	}
	copy(c.edges, g.edges)
	if g.labels != nil {
		c.labels = make([]string, len(g.labels))
		copy(c.labels, g.labels)
	}

	return c
}
