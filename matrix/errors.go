// Package matrix: sentinel error set.
//
// All validation failures are reported through these sentinels and matched by
// callers via errors.Is. Wrapping with fmt.Errorf("ctx: %w", ErrX) is allowed
// at boundaries; the sentinels themselves are never wrapped into each other.
package matrix

import "errors"

var (
	// ErrNilData indicates a nil input table was passed to New.
	ErrNilData = errors.New("matrix: input data is nil")

	// ErrNonSquare indicates the input table is not N×N (including ragged rows).
	ErrNonSquare = errors.New("matrix: input is not square")

	// ErrAsymmetry indicates |w[i][j] - w[j][i]| exceeded the configured epsilon.
	ErrAsymmetry = errors.New("matrix: input is not symmetric within eps")

	// ErrNaNInf indicates a NaN or ±Inf entry; construction requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf entry encountered")

	// ErrOutOfRange indicates an index outside [0, Size()); reserved for panics
	// on programmer error, never returned.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadPercentile indicates a Prefilter percentile outside (0, 100).
	ErrBadPercentile = errors.New("matrix: percentile must be in (0, 100)")

	// ErrBadEpsilon indicates a negative symmetry tolerance; reserved for panics
	// from the WithEpsilon option constructor.
	ErrBadEpsilon = errors.New("matrix: epsilon must be non-negative")
)
