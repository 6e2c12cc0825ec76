// Package filter: strategy enum, sentinel errors, Options and configuration.
package filter

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/planfilt/planarity"
	"github.com/katalvlaran/planfilt/pmfg"
	"github.com/katalvlaran/planfilt/tmfg"
)

// Strategy selects the construction algorithm.
type Strategy int

const (
	// TMFG is the constructive strategy: greedy triangle filling from a seed
	// tetrahedron, planar by construction.
	TMFG Strategy = iota

	// PMFG is the verification strategy: descending-weight edge insertion
	// under a planarity oracle.
	PMFG
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case TMFG:
		return "TMFG"
	case PMFG:
		return "PMFG"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ErrUnknownStrategy indicates a Strategy value outside the declared set.
var ErrUnknownStrategy = errors.New("filter: unknown strategy")

// Options configures dispatching. Fields that do not apply to the selected
// strategy are ignored: BatchSize, Parallelism and the memory policy drive
// TMFG only; EdgeBudget and Oracle drive PMFG only.
//
//   - Strategy: TMFG (default) or PMFG.
//   - PrefilterPercentile: zero entries below this percentile of the
//     non-zero upper-triangle weights before construction; 0 disables.
//   - Float32: store the matrix in reduced precision (Construct only).
//   - Labels: optional node labels attached to the output graph.
//   - Ctx: cancellation context for the construction loop.
type Options struct {
	Strategy            Strategy
	PrefilterPercentile float64
	Float32             bool
	Labels              []string
	Ctx                 context.Context

	// TMFG policy.
	BatchSize        int
	Parallelism      int
	MemoryLimit      uint64
	OnMemoryPressure func(used, limit uint64)

	// PMFG policy.
	EdgeBudget int
	Oracle     planarity.Oracle

	// Shared reporting.
	Progress func(fraction float64)
}

// Option is a functional option for Construct and ConstructMatrix.
type Option func(*Options)

// WithStrategy selects the construction algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithPrefilter enables percentile pre-filtering of the matrix before
// construction; see matrix.Prefilter for the exact semantics.
func WithPrefilter(percentile float64) Option {
	return func(o *Options) { o.PrefilterPercentile = percentile }
}

// WithFloat32 stores the matrix in reduced-precision backing storage.
// Ignored by ConstructMatrix, whose matrix is already built.
func WithFloat32() Option {
	return func(o *Options) { o.Float32 = true }
}

// WithLabels attaches node labels to the output graph.
func WithLabels(labels []string) Option {
	return func(o *Options) { o.Labels = labels }
}

// WithContext sets the cancellation context for the construction loop.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithBatchSize bounds the TMFG per-iteration scan working set.
// Panics with tmfg.ErrBadBatchSize on negative values (programmer error).
func WithBatchSize(size int) Option {
	return func(o *Options) {
		if size < 0 {
			panic(tmfg.ErrBadBatchSize.Error())
		}
		o.BatchSize = size
	}
}

// WithParallelism fans the TMFG gain scan out across workers.
// Panics with tmfg.ErrBadParallelism on values < 1 (programmer error).
func WithParallelism(workers int) Option {
	return func(o *Options) {
		if workers < 1 {
			panic(tmfg.ErrBadParallelism.Error())
		}
		o.Parallelism = workers
	}
}

// WithMemoryLimit enables the TMFG between-iteration heap threshold.
func WithMemoryLimit(bytes uint64) Option {
	return func(o *Options) { o.MemoryLimit = bytes }
}

// WithMemoryPressure registers the TMFG threshold-violation callback.
func WithMemoryPressure(fn func(used, limit uint64)) Option {
	return func(o *Options) { o.OnMemoryPressure = fn }
}

// WithEdgeBudget caps the PMFG accepted-edge count below the planar maximum.
// Panics with pmfg.ErrBadEdgeBudget on negative values (programmer error).
func WithEdgeBudget(budget int) Option {
	return func(o *Options) {
		if budget < 0 {
			panic(pmfg.ErrBadEdgeBudget.Error())
		}
		o.EdgeBudget = budget
	}
}

// WithOracle substitutes the PMFG planarity oracle.
func WithOracle(oracle planarity.Oracle) Option {
	return func(o *Options) { o.Oracle = oracle }
}

// WithProgress registers the per-iteration progress callback for either
// strategy.
func WithProgress(fn func(fraction float64)) Option {
	return func(o *Options) { o.Progress = fn }
}

// DefaultOptions returns the zero policy: TMFG, no pre-filter, full
// precision, background context, sequential scan.
func DefaultOptions() Options {
	return Options{
		Strategy:    TMFG,
		Ctx:         context.Background(),
		Parallelism: 1,
	}
}
