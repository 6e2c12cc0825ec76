// Package core defines the weighted undirected Graph produced by the
// filtering strategies, together with its Edge type and invariants.
//
// Nodes are dense integer indices in [0, n); the node count is fixed at
// construction time. Optional string labels may be attached for I/O and
// never influence algorithmic behavior.
//
// Invariants enforced by the Graph:
//
//   - no self-loops (AddEdge(v, v, w) returns ErrSelfLoop)
//   - no duplicate edges (second AddEdge on a pair returns ErrDuplicateEdge)
//   - every edge is stored once in canonical orientation U < V
//
// A Graph is owned by a single construction call while it is being built and
// by the caller afterwards; it carries no internal locking. Independent
// graphs may be built and read concurrently with no shared state.
//
// Determinism: Edges() returns edges in insertion order, SortedEdges() in
// canonical (U, V) order, and Neighbors() in ascending index order, so every
// traversal of a Graph is reproducible across runs.
package core
