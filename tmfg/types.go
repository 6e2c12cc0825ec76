// Package tmfg: sentinel errors, Options and functional configuration.
package tmfg

import (
	"context"
	"errors"
)

// Sentinel errors returned by Construct.
var (
	// ErrNilMatrix indicates a nil *matrix.Matrix was passed to Construct.
	ErrNilMatrix = errors.New("tmfg: matrix is nil")

	// ErrCancelled indicates the caller's context was observed cancelled at an
	// iteration boundary; the partial graph is discarded.
	ErrCancelled = errors.New("tmfg: construction cancelled by caller")

	// ErrResourceExhausted indicates the memory limit stayed exceeded even
	// after a reclamation pass; the partial graph is discarded.
	ErrResourceExhausted = errors.New("tmfg: memory limit exceeded after reclamation")

	// ErrBadBatchSize indicates a negative batch size; reserved for panics
	// from the WithBatchSize option constructor.
	ErrBadBatchSize = errors.New("tmfg: batch size must be non-negative")

	// ErrBadParallelism indicates a non-positive worker count; reserved for
	// panics from the WithParallelism option constructor.
	ErrBadParallelism = errors.New("tmfg: parallelism must be positive")
)

// Options configures TMFG construction.
//
// Ctx              – cancellation context, checked before every insertion.
// BatchSize        – partition the per-iteration node scan into batches of
//
//	this size to bound the peak working set; 0 scans in one batch. The global
//	maximum is always re-merged across batches, so batching never changes the
//	selected (node, triangle).
//
// Parallelism      – number of workers evaluating batches concurrently;
//
//	workers write to disjoint result slots and a single reduction picks the
//	global maximum, so the result is identical to the sequential scan.
//
// Progress         – optional per-iteration callback with a fraction in [0,1].
// MemoryLimit      – optional heap byte threshold checked between iterations;
//
//	0 disables the check.
//
// OnMemoryPressure – optional callback fired when the threshold is exceeded,
//
//	before the reclamation pass runs.
type Options struct {
	Ctx              context.Context
	BatchSize        int
	Parallelism      int
	Progress         func(fraction float64)
	MemoryLimit      uint64
	OnMemoryPressure func(used, limit uint64)
}

// Option is a functional option for Construct.
type Option func(*Options)

// WithContext sets the cancellation context. Cancellation is cooperative and
// observed at iteration boundaries only; a cancelled construction returns
// ErrCancelled (wrapping ctx.Err()) and discards the partial graph.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithBatchSize bounds the per-iteration scan working set. Zero (the
// default) evaluates all remaining nodes in one batch.
// Panics with ErrBadBatchSize on negative values (programmer error).
func WithBatchSize(size int) Option {
	return func(o *Options) {
		if size < 0 {
			panic(ErrBadBatchSize.Error())
		}
		o.BatchSize = size
	}
}

// WithParallelism fans the batch evaluation out across the given number of
// workers. The selection result is identical to the sequential scan.
// Panics with ErrBadParallelism on values < 1 (programmer error).
func WithParallelism(workers int) Option {
	return func(o *Options) {
		if workers < 1 {
			panic(ErrBadParallelism.Error())
		}
		o.Parallelism = workers
	}
}

// WithProgress registers a per-iteration progress callback. The fraction
// reaches exactly 1.0 on the final iteration.
func WithProgress(fn func(fraction float64)) Option {
	return func(o *Options) { o.Progress = fn }
}

// WithMemoryLimit enables the between-iteration heap check against the given
// byte threshold. Exceeding it triggers a reclamation pass; persistent
// exceedance aborts construction with ErrResourceExhausted.
func WithMemoryLimit(bytes uint64) Option {
	return func(o *Options) { o.MemoryLimit = bytes }
}

// WithMemoryPressure registers a callback observing threshold violations
// before reclamation. Resource management only: it never alters the selected
// node or triangle of any iteration.
func WithMemoryPressure(fn func(used, limit uint64)) Option {
	return func(o *Options) { o.OnMemoryPressure = fn }
}

// DefaultOptions returns the zero configuration: background context, single
// batch, sequential scan, no progress reporting, no memory limit.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		BatchSize:   0,
		Parallelism: 1,
	}
}

// normalize fills unset fields with their defaults.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Parallelism < 1 {
		o.Parallelism = 1
	}
}
