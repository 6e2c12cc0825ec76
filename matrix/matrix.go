// Package matrix: Matrix type, constructor, options and accessors.
package matrix

import "math"

// DefaultEpsilon is the symmetry tolerance applied when WithEpsilon is not given.
const DefaultEpsilon = 1e-9

// Option configures matrix construction.
type Option func(*options)

// options is the internal construction state gathered from Option values.
type options struct {
	eps     float64 // symmetry tolerance
	float32 bool    // reduced-precision backing storage
}

// WithEpsilon sets the symmetry tolerance used by New.
// Panics with ErrBadEpsilon on a negative value (programmer error).
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps < 0 {
			panic(ErrBadEpsilon.Error())
		}
		o.eps = eps
	}
}

// WithFloat32 stores entries in float32 backing storage, halving memory.
// At still returns float64; values round-trip through a single float32
// truncation at construction time.
func WithFloat32() Option {
	return func(o *options) { o.float32 = true }
}

// Matrix is an immutable symmetric proximity matrix.
// Exactly one of data64/data32 is non-nil, holding n*n entries row-major.
type Matrix struct {
	n      int
	data64 []float64
	data32 []float32
}

// New validates data and builds an immutable Matrix from it.
//
// Validation, in order (fail-fast, before any copy is made):
//  1. data != nil                           → ErrNilData
//  2. every row has len(data) entries       → ErrNonSquare
//  3. every entry is finite                 → ErrNaNInf
//  4. |w[i][j]-w[j][i]| ≤ eps for all i<j   → ErrAsymmetry
//
// The diagonal is not validated: self-proximity is ignored by every consumer.
// Negative off-diagonal weights are accepted; the strategies simply rank them
// as weak. A zero-size table yields a valid empty Matrix.
//
// Complexity: O(n²) time, O(n²) memory for the private copy.
func New(data [][]float64, opts ...Option) (*Matrix, error) {
	if data == nil {
		return nil, ErrNilData
	}
	o := options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	n := len(data)

	// Shape first: a ragged table invalidates every later index.
	for i := 0; i < n; i++ {
		if len(data[i]) != n {
			return nil, ErrNonSquare
		}
	}
	// Finiteness next: NaN breaks the symmetry comparison below.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.IsNaN(data[i][j]) || math.IsInf(data[i][j], 0) {
				return nil, ErrNaNInf
			}
		}
	}
	// Symmetry within eps, upper triangle only.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(data[i][j]-data[j][i]) > o.eps {
				return nil, ErrAsymmetry
			}
		}
	}

	// Private copy: the caller keeps ownership of data, we never alias it.
	m := &Matrix{n: n}
	if o.float32 {
		m.data32 = make([]float32, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				m.data32[i*n+j] = float32(data[i][j])
			}
		}
	} else {
		m.data64 = make([]float64, n*n)
		for i := 0; i < n; i++ {
			copy(m.data64[i*n:(i+1)*n], data[i])
		}
	}

	return m, nil
}

// Size returns N, the node count.
// Complexity: O(1).
func (m *Matrix) Size() int { return m.n }

// Float32 reports whether the matrix uses reduced-precision backing storage.
// Complexity: O(1).
func (m *Matrix) Float32() bool { return m.data32 != nil }

// At returns the proximity between nodes i and j.
// Panics with ErrOutOfRange on invalid indices: every caller inside this
// module iterates indices derived from Size(), so a bad index is a bug,
// not a data condition.
// Complexity: O(1).
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(ErrOutOfRange.Error())
	}
	if m.data32 != nil {
		return float64(m.data32[i*m.n+j])
	}

	return m.data64[i*m.n+j]
}

// at is the hot-path accessor: no bounds check, same semantics as At.
func (m *Matrix) at(i, j int) float64 {
	if m.data32 != nil {
		return float64(m.data32[i*m.n+j])
	}

	return m.data64[i*m.n+j]
}

// RowSums returns, for every node, the sum of its proximities to all other
// nodes (diagonal excluded). This is the seed-selection statistic for the
// constructive strategy.
// Complexity: O(n²).
func (m *Matrix) RowSums() []float64 {
	sums := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		var s float64
		for j := 0; j < m.n; j++ {
			if j == i {
				continue
			}
			s += m.at(i, j)
		}
		sums[i] = s
	}

	return sums
}
