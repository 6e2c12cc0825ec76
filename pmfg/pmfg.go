// Package pmfg: candidate ranking and the verification-based scheduler.
package pmfg

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/planfilt/core"
	"github.com/katalvlaran/planfilt/matrix"
)

// candidate is one ranked edge drawn from the matrix upper triangle.
type candidate struct {
	u, v int
	w    float64
}

// rankCandidates derives the candidate edge universe: every strictly
// positive upper-triangle entry, ordered by descending weight with ties
// broken by (lowest source, lowest target). The list is immutable once
// built and consumed front to back.
//
// Complexity: O(N²) scan + O(C log C) sort over C candidates.
func rankCandidates(m *matrix.Matrix) []candidate {
	n := m.Size()
	cands := make([]candidate, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w := m.At(i, j); w > 0 {
				cands = append(cands, candidate{u: i, v: j, w: w})
			}
		}
	}
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].w != cands[b].w {
			return cands[a].w > cands[b].w
		}
		if cands[a].u != cands[b].u {
			return cands[a].u < cands[b].u
		}

		return cands[a].v < cands[b].v
	})

	return cands
}

// Construct builds the PMFG of m.
//
// Contract:
//   - m must be non-nil; matrix.New already guaranteed shape, symmetry and
//     finiteness, so ranking never sees NaN/Inf.
//   - Every accepted prefix of the edge sequence is planar (each insertion
//     was verified by the oracle); the final edge count is at most 3(N-2).
//   - An empty candidate list (all weights ≤ 0) yields a zero-edge graph
//     over N isolated nodes, reported as a normal result.
//
// Steps:
//  1. Rank candidates from the upper triangle (descending weight).
//  2. For each candidate: check cancellation, insert tentatively, consult
//     the oracle; revert and permanently reject on non-planarity, keep and
//     count otherwise.
//  3. Stop at the accepted-edge limit — 3(N-2), tightened by WithEdgeBudget —
//     or when candidates run out.
//
// Errors: ErrNilMatrix, ErrCancelled (wraps ctx.Err()).
//
// Complexity: O(N² log N) ranking + one O(N) oracle call per candidate,
// O(N³) worst case.
func Construct(m *matrix.Matrix, opts ...Option) (*core.Graph, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.normalize()

	n := m.Size()
	g := core.NewGraph(n)

	// Acceptance limit: the planar maximum, or the complete graph below the
	// N ≥ 3 regime where 3(N-2) is meaningless.
	limit := 3 * (n - 2)
	if n < 3 {
		limit = n * (n - 1) / 2
	}
	if o.EdgeBudget > 0 && o.EdgeBudget < limit {
		limit = o.EdgeBudget
	}

	cands := rankCandidates(m)
	accepted := 0
	for _, c := range cands {
		if accepted >= limit {
			break
		}
		// Cooperative cancellation between insertions.
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		// Tentative insertion, then the oracle verdict.
		if err := g.AddEdge(c.u, c.v, c.w); err != nil {
			return nil, err
		}
		if !o.Oracle.IsPlanar(g) {
			// Permanent rejection: the candidate is never reconsidered.
			if err := g.RemoveEdge(c.u, c.v); err != nil {
				return nil, err
			}
			continue
		}

		accepted++
		if o.Progress != nil && limit > 0 {
			o.Progress(float64(accepted) / float64(limit))
		}
	}

	return g, nil
}
