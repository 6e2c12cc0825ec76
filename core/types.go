// Package core: Graph and Edge types, sentinel errors, constructor options.
//
// This file declares the data model only; query and mutation methods live in
// methods.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeOutOfRange indicates a node index outside [0, Order()).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrSelfLoop indicates an attempted edge from a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an attempted parallel edge on an existing pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge not allowed")

	// ErrBadOrder indicates a negative node count passed to NewGraph.
	ErrBadOrder = errors.New("core: node count must be non-negative")

	// ErrLabelCount indicates a label slice whose length differs from the node count.
	ErrLabelCount = errors.New("core: label count must equal node count")
)

// Edge is one undirected weighted connection. U < V always holds; the pair
// (U, V) is unique within a Graph and Weight is copied verbatim from the
// proximity matrix entry that produced it.
type Edge struct {
	// U is the lower endpoint index.
	U int

	// V is the higher endpoint index.
	V int

	// Weight is the proximity between U and V.
	Weight float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithLabels attaches external string labels, one per node. Labels are
// carried for I/O convenience only; algorithms never read them.
// Panics with ErrLabelCount if len(labels) != node count (programmer error,
// detected inside NewGraph once the order is known).
func WithLabels(labels []string) GraphOption {
	return func(g *Graph) { g.labels = labels }
}

// Graph is an undirected weighted graph over nodes 0..n-1.
//
// adj[u] maps a neighbor v to the edge weight; both orientations are kept so
// Degree and Neighbors are O(1)/O(deg). edges records insertion order for
// deterministic iteration.
type Graph struct {
	n      int               // node count, fixed at construction
	adj    []map[int]float64 // adjacency with mirrored entries
	edges  []Edge            // canonical (U<V) edges in insertion order
	labels []string          // optional, len 0 or n
}

// NewGraph creates an empty Graph over n nodes (0..n-1).
// Panics with ErrBadOrder on negative n and ErrLabelCount on a label slice
// of the wrong length; both are programmer errors, not data conditions.
//
// Complexity: O(n) time and memory.
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		panic(ErrBadOrder.Error())
	}
	g := &Graph{
		n:   n,
		adj: make([]map[int]float64, n),
	}
	for i := range g.adj {
		g.adj[i] = make(map[int]float64)
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.labels != nil && len(g.labels) != n {
		panic(ErrLabelCount.Error())
	}

	return g
}
