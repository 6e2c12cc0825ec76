// Package filter is the unified entry point for graph filtering: it turns a
// raw proximity table into a maximally filtered planar graph under the
// strategy, scale and resource policy selected through options.
//
// Two strategies are routed:
//
//   - TMFG (constructive): greedy triangle-filling growth, planar by
//     construction, the cheaper choice at scale.
//   - PMFG (verification): descending-weight insertion under a planarity
//     oracle; a different local criterion that may produce a different —
//     equally valid — graph on the same input.
//
// The dispatcher validates fail-fast (unknown strategy, then matrix shape /
// symmetry / finiteness via matrix.New), applies the optional percentile
// pre-filter and precision mode, and delegates to the strategy package with
// the applicable options translated; options that do not apply to the
// selected strategy are ignored. Node labels, when provided, are attached to
// the output graph for downstream I/O.
//
// Construct accepts a raw [][]float64 table; ConstructMatrix accepts an
// already validated *matrix.Matrix and skips re-validation (the precision
// option is then moot, since the backing storage already exists).
package filter
