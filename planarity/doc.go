// Package planarity decides whether an undirected graph can be drawn in the
// plane without edge crossings.
//
// The implementation is the left-right planarity criterion of de Fraysseix
// and Rosenstiehl in the formulation of Brandes ("The left-right planarity
// test"): a first DFS orients the graph and computes low-points and nesting
// order, a second DFS over the nesting-ordered adjacency maintains a stack of
// conflict pairs of back-edge intervals and rejects exactly the graphs that
// contain a K5 or K3,3 subdivision.
//
// IsPlanar is a stateless pure function: it allocates all working state per
// call, never mutates the input graph, and handles disconnected inputs by
// testing every connected component independently (the overall answer is the
// conjunction). Two fast paths avoid the full test: any graph on fewer than
// 5 nodes is planar, and any graph with more than 3n-6 edges (n ≥ 3) is not.
//
// Complexity: O(V + E) time and memory per call — the per-candidate cost
// that makes verification-based filtering O(N³) overall.
//
// The Oracle interface decouples callers from the concrete algorithm so a
// faster incremental planarity structure can be substituted without touching
// the schedulers that consult it.
package planarity
