// Package pmfg constructs the Planar Maximally Filtered Graph of a
// proximity matrix.
//
// The verification-based strategy ranks every strictly positive entry of the
// matrix upper triangle as a candidate edge, sorts candidates by descending
// weight (ties by lowest source, then lowest target index), and inserts them
// in order: each tentative insertion is submitted to a planarity oracle, and
// an edge that breaks planarity is removed and permanently rejected.
// Insertion stops once 3(N-2) edges — the planar maximum for N ≥ 3 — have
// been accepted, or the candidate list is exhausted.
//
// The oracle is a capability interface (planarity.Oracle); the scheduler is
// agnostic to the concrete algorithm behind it, and a faster incremental
// planarity structure can be substituted without touching this package. By
// default the left-right test from package planarity is used.
//
// Matrices whose upper triangle has no positive entry produce a zero-edge
// graph over N isolated nodes — a documented result, not an error.
//
// Complexity: O(N² log N) to rank up to N² candidates, then one oracle call
// per candidate at O(N) each — O(N³) worst case, the same order as the
// constructive strategy but with a much larger constant, which is why TMFG
// is preferred at scale.
package pmfg
