// Package tmfg constructs the Triangulated Maximally Filtered Graph of a
// proximity matrix.
//
// The constructive strategy never consults a planarity test: it grows a
// maximal planar graph from a seed tetrahedron (the four nodes with the
// largest proximity row sums) by repeatedly inserting the remaining node
// with the highest gain — the sum of its three proximities to an open
// triangular face — into that face. Each insertion fills one face and opens
// three, so after k iterations the graph has exactly 6+3k edges, and the
// final graph on N ≥ 4 nodes has exactly 3N-6 edges: maximal planar.
//
// Determinism: the seed ranking breaks row-sum ties by lowest node index,
// and the greedy selection breaks gain ties by lowest node index, then by
// lexicographically smallest canonical triangle. Two runs on the same matrix
// produce identical edge sets — including under batching and parallel gain
// evaluation, which partition only the scan, never the selection rule.
//
// Matrices smaller than the seed (N < 4) cannot be filtered; Construct
// returns the complete graph on N nodes, which is the documented degenerate
// result, not an error.
//
// Complexity: each of the N-4 iterations scans all remaining nodes against
// all open faces at O(1) gain arithmetic per pair — O(N²) per iteration,
// O(N³) total, the dominant cost. The inner scan is read-only over shared
// state and may be fanned out across workers (WithParallelism); the outer
// loop is strictly sequential because every insertion reshapes the face set
// consumed by the next iteration.
package tmfg
