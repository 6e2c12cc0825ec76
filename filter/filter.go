package filter

// Construct / ConstructMatrix: the strategy dispatcher.
//
// Steps:
//  1. Resolve options and fail fast on an unknown strategy.
//  2. Validate and copy the input matrix (Construct only).
//  3. Apply the optional percentile pre-filter.
//  4. Route to the selected strategy with translated options.
//  5. Attach labels to the resulting graph.

import (
	"github.com/katalvlaran/planfilt/core"
	"github.com/katalvlaran/planfilt/matrix"
	"github.com/katalvlaran/planfilt/pmfg"
	"github.com/katalvlaran/planfilt/tmfg"
)

// Construct validates data as a symmetric proximity matrix and builds the
// maximally filtered graph under the selected strategy.
//
// Contract:
//   - data must satisfy matrix.New (square, symmetric, finite); violations
//     surface as matrix sentinels before any construction work.
//   - an unknown Strategy returns ErrUnknownStrategy.
//   - Labels, when provided, must match the node count (core.ErrLabelCount).
//
// Complexity: matrix validation O(n²) plus the selected strategy's cost.
func Construct(data [][]float64, opts ...Option) (*core.Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkStrategy(o.Strategy); err != nil {
		return nil, err
	}

	var mOpts []matrix.Option
	if o.Float32 {
		mOpts = append(mOpts, matrix.WithFloat32())
	}
	m, err := matrix.New(data, mOpts...)
	if err != nil {
		return nil, err
	}
	return dispatch(m, o)
}

// ConstructMatrix builds the maximally filtered graph from an already
// validated matrix. The Float32 option is ignored here: precision is a
// property of m itself.
func ConstructMatrix(m *matrix.Matrix, opts ...Option) (*core.Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkStrategy(o.Strategy); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, tmfg.ErrNilMatrix
	}
	return dispatch(m, o)
}

func checkStrategy(s Strategy) error {
	switch s {
	case TMFG, PMFG:
		return nil
	default:
		return ErrUnknownStrategy
	}
}

// dispatch applies the pre-filter and routes to the strategy package.
func dispatch(m *matrix.Matrix, o Options) (*core.Graph, error) {
	if o.PrefilterPercentile > 0 {
		filtered, _, err := m.Prefilter(o.PrefilterPercentile)
		if err != nil {
			return nil, err
		}
		m = filtered
	}

	var (
		g   *core.Graph
		err error
	)
	switch o.Strategy {
	case TMFG:
		g, err = tmfg.Construct(m, tmfgOptions(o)...)
	case PMFG:
		g, err = pmfg.Construct(m, pmfgOptions(o)...)
	}
	if err != nil {
		return nil, err
	}

	if o.Labels != nil {
		if lErr := g.SetLabels(o.Labels); lErr != nil {
			return nil, lErr
		}
	}
	return g, nil
}

// tmfgOptions translates the shared Options into the TMFG option set.
func tmfgOptions(o Options) []tmfg.Option {
	out := []tmfg.Option{tmfg.WithContext(o.Ctx)}
	if o.BatchSize > 0 {
		out = append(out, tmfg.WithBatchSize(o.BatchSize))
	}
	if o.Parallelism > 1 {
		out = append(out, tmfg.WithParallelism(o.Parallelism))
	}
	if o.MemoryLimit > 0 {
		out = append(out, tmfg.WithMemoryLimit(o.MemoryLimit))
	}
	if o.OnMemoryPressure != nil {
		out = append(out, tmfg.WithMemoryPressure(o.OnMemoryPressure))
	}
	if o.Progress != nil {
		out = append(out, tmfg.WithProgress(o.Progress))
	}
	return out
}

// pmfgOptions translates the shared Options into the PMFG option set.
func pmfgOptions(o Options) []pmfg.Option {
	out := []pmfg.Option{pmfg.WithContext(o.Ctx)}
	if o.Oracle != nil {
		out = append(out, pmfg.WithOracle(o.Oracle))
	}
	if o.EdgeBudget > 0 {
		out = append(out, pmfg.WithEdgeBudget(o.EdgeBudget))
	}
	if o.Progress != nil {
		out = append(out, pmfg.WithProgress(o.Progress))
	}
	return out
}
