// Package matrix: percentile pre-filtering for large instances.
package matrix

import (
	"math"
	"sort"
)

// Prefilter returns a copy of m in which every entry strictly below the given
// percentile of the non-zero upper-triangle weight distribution is zeroed,
// plus the number of upper-triangle entries that survived.
//
// The threshold is the linearly interpolated percentile of the sorted
// non-zero upper-triangle values, matching the conventional numeric
// definition: rank = p/100·(m-1) over m sorted samples. Zeroing is symmetric
// so the result is again a valid Matrix, and the diagonal is copied verbatim.
//
// Semantics for the strategies:
//   - verification (PMFG): zeroed entries vanish from the candidate edge set;
//   - constructive (TMFG): gains still scan all entries, zeroed weights simply
//     make the pair unattractive.
//
// Edge cases: percentile outside (0, 100) → ErrBadPercentile; a matrix whose
// upper triangle is entirely zero is returned as an unchanged copy.
//
// Precision mode is preserved: a float32 matrix pre-filters into a float32
// matrix.
//
// Complexity: O(n² log n) time for the sort, O(n²) memory.
func (m *Matrix) Prefilter(percentile float64) (*Matrix, int, error) {
	if percentile <= 0 || percentile >= 100 {
		return nil, 0, ErrBadPercentile
	}

	// Gather non-zero upper-triangle weights.
	weights := make([]float64, 0, m.n*(m.n-1)/2)
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if w := m.at(i, j); w != 0 {
				weights = append(weights, w)
			}
		}
	}
	if len(weights) == 0 {
		return m.copyDense(), 0, nil
	}

	sort.Float64s(weights)
	threshold := interpolatedPercentile(weights, percentile)

	// Zero entries strictly below the threshold, symmetrically; count survivors.
	survivors := 0
	out := m.copyDense()
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			w := m.at(i, j)
			if w < threshold {
				out.set(i, j, 0)
				out.set(j, i, 0)
				continue
			}
			if w != 0 {
				survivors++
			}
		}
	}

	return out, survivors, nil
}

// interpolatedPercentile computes the p-th percentile of sorted (ascending)
// samples with linear interpolation between closest ranks.
func interpolatedPercentile(sorted []float64, p float64) float64 {
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)

	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// copyDense clones the backing storage verbatim, preserving precision mode.
func (m *Matrix) copyDense() *Matrix {
	out := &Matrix{n: m.n}
	if m.data32 != nil {
		out.data32 = make([]float32, len(m.data32))
		copy(out.data32, m.data32)
	} else {
		out.data64 = make([]float64, len(m.data64))
		copy(out.data64, m.data64)
	}

	return out
}

// set writes a single entry; used only by pre-filtering on private copies.
func (m *Matrix) set(i, j int, v float64) {
	if m.data32 != nil {
		m.data32[i*m.n+j] = float32(v)

		return
	}
	m.data64[i*m.n+j] = v
}
