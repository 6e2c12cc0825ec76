// Package pmfg: sentinel errors, Options and functional configuration.
package pmfg

import (
	"context"
	"errors"

	"github.com/katalvlaran/planfilt/planarity"
)

// Sentinel errors returned by Construct.
var (
	// ErrNilMatrix indicates a nil *matrix.Matrix was passed to Construct.
	ErrNilMatrix = errors.New("pmfg: matrix is nil")

	// ErrCancelled indicates the caller's context was observed cancelled
	// between candidate insertions; the partial graph is discarded.
	ErrCancelled = errors.New("pmfg: construction cancelled by caller")

	// ErrBadEdgeBudget indicates a negative edge budget; reserved for panics
	// from the WithEdgeBudget option constructor.
	ErrBadEdgeBudget = errors.New("pmfg: edge budget must be non-negative")
)

// Options configures PMFG construction.
//
// Ctx        – cancellation context, checked before every candidate insertion.
// Oracle     – planarity oracle consulted after each tentative insertion;
//
//	nil selects planarity.Default.
//
// Progress   – optional callback with the accepted-edge fraction in [0,1].
// EdgeBudget – optional cap on accepted edges below the 3(N-2) planar
//
//	maximum; 0 disables the cap.
type Options struct {
	Ctx        context.Context
	Oracle     planarity.Oracle
	Progress   func(fraction float64)
	EdgeBudget int
}

// Option is a functional option for Construct.
type Option func(*Options)

// WithContext sets the cancellation context. A cancelled construction
// returns ErrCancelled (wrapping ctx.Err()) and discards the partial graph.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithOracle substitutes the planarity oracle. The oracle must be stateless
// over the graph: repeated calls on the same graph must agree.
func WithOracle(oracle planarity.Oracle) Option {
	return func(o *Options) { o.Oracle = oracle }
}

// WithProgress registers an acceptance-progress callback; the fraction
// reaches 1.0 exactly when the edge budget is filled.
func WithProgress(fn func(fraction float64)) Option {
	return func(o *Options) { o.Progress = fn }
}

// WithEdgeBudget caps the number of accepted edges below the planar maximum.
// Panics with ErrBadEdgeBudget on negative values (programmer error).
func WithEdgeBudget(budget int) Option {
	return func(o *Options) {
		if budget < 0 {
			panic(ErrBadEdgeBudget.Error())
		}
		o.EdgeBudget = budget
	}
}

// DefaultOptions returns the zero configuration: background context, default
// left-right oracle, no progress reporting, no budget cap.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Oracle: planarity.Default,
	}
}

// normalize fills unset fields with their defaults.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Oracle == nil {
		o.Oracle = planarity.Default
	}
}
