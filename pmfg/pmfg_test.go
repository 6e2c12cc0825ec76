package pmfg_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/planfilt/core"
	"github.com/katalvlaran/planfilt/matrix"
	"github.com/katalvlaran/planfilt/planarity"
	"github.com/katalvlaran/planfilt/pmfg" // package under test
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustMatrix wraps matrix.New for literal tables.
func mustMatrix(t *testing.T, data [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(data)
	require.NoError(t, err)

	return m
}

// randomProximity builds a deterministic random symmetric matrix with
// strictly positive off-diagonal weights.
func randomProximity(t *testing.T, n int, seed int64) *matrix.Matrix {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := 0.01 + r.Float64()
			data[i][j] = w
			data[j][i] = w
		}
	}
	m, err := matrix.New(data)
	require.NoError(t, err)

	return m
}

// rejectAll is an adversarial oracle: every insertion is vetoed.
type rejectAll struct{}

func (rejectAll) IsPlanar(*core.Graph) bool { return false }

// countingOracle wraps the default oracle and counts consultations.
type countingOracle struct{ calls int }

func (c *countingOracle) IsPlanar(g *core.Graph) bool {
	c.calls++

	return planarity.IsPlanar(g)
}

// TestConstruct_NilMatrix verifies the guard sentinel.
func TestConstruct_NilMatrix(t *testing.T) {
	_, err := pmfg.Construct(nil)
	assert.ErrorIs(t, err, pmfg.ErrNilMatrix)
}

// TestConstruct_Degenerate covers N < 3: the complete graph over the
// positive candidates.
func TestConstruct_Degenerate(t *testing.T) {
	g, err := pmfg.Construct(mustMatrix(t, [][]float64{}))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())

	g, err = pmfg.Construct(mustMatrix(t, [][]float64{{0}}))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Size())

	// Two nodes, one positive weight: the single edge survives.
	g, err = pmfg.Construct(mustMatrix(t, [][]float64{{0, 2}, {2, 0}}))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Size())
	w, ok := g.Weight(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 2.0, w)
}

// TestConstruct_EmptyCandidates verifies that non-positive weights produce a
// zero-edge result over isolated nodes, not an error.
func TestConstruct_EmptyCandidates(t *testing.T) {
	g, err := pmfg.Construct(mustMatrix(t, [][]float64{
		{0, 0, -1},
		{0, 0, 0},
		{-1, 0, 0},
	}))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.Equal(t, []int{0, 1, 2}, g.IsolatedNodes())
}

// TestConstruct_K5DropsWeakestEdge verifies descending-order acceptance on a
// complete 5-node matrix with distinct weights: the planar maximum is 9, so
// exactly the globally weakest edge is left out.
func TestConstruct_K5DropsWeakestEdge(t *testing.T) {
	// Distinct weights 1..10; the weakest pair is (3,4) with weight 1.
	g, err := pmfg.Construct(mustMatrix(t, [][]float64{
		{0, 10, 9, 8, 7},
		{10, 0, 6, 5, 4},
		{9, 6, 0, 3, 2},
		{8, 5, 3, 0, 1},
		{7, 4, 2, 1, 0},
	}))
	require.NoError(t, err)

	assert.Equal(t, 9, g.Size()) // 3(N-2) for N=5
	assert.False(t, g.HasEdge(3, 4))
	assert.True(t, planarity.IsPlanar(g))
}

// TestConstruct_Clusters is the two-cluster scenario: strong intra-cluster
// weights, weak positive cross-cluster weights. Under a 12-edge budget only
// intra-cluster edges are accepted; without the budget, cross edges fill the
// remaining planar capacity.
func TestConstruct_Clusters(t *testing.T) {
	const n = 8
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
	}
	set := func(i, j int, w float64) { data[i][j] = w; data[j][i] = w }
	// Cluster A = {0..3}, cluster B = {4..7}: distinct strong weights.
	strong := 5.0
	for _, cluster := range [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}} {
		for x := 0; x < 4; x++ {
			for y := x + 1; y < 4; y++ {
				set(cluster[x], cluster[y], strong)
				strong += 0.125
			}
		}
	}
	// Weak positive cross weights.
	weak := 0.01
	for i := 0; i < 4; i++ {
		for j := 4; j < n; j++ {
			set(i, j, weak)
			weak += 0.001
		}
	}
	m := mustMatrix(t, data)

	// With the budget: exactly the 12 intra-cluster edges, nothing across.
	budgeted, err := pmfg.Construct(m, pmfg.WithEdgeBudget(12))
	require.NoError(t, err)
	assert.Equal(t, 12, budgeted.Size())
	for i := 0; i < 4; i++ {
		for j := 4; j < n; j++ {
			assert.False(t, budgeted.HasEdge(i, j), "cross edge %d-%d", i, j)
		}
	}

	// Without it: all intra edges plus cross edges up to planarity/3(N-2).
	full, err := pmfg.Construct(m)
	require.NoError(t, err)
	for _, cluster := range [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}} {
		for x := 0; x < 4; x++ {
			for y := x + 1; y < 4; y++ {
				assert.True(t, full.HasEdge(cluster[x], cluster[y]))
			}
		}
	}
	assert.Greater(t, full.Size(), 12)
	assert.LessOrEqual(t, full.Size(), 3*(n-2))
	assert.True(t, planarity.IsPlanar(full))
}

// TestConstruct_TieBreak verifies the (lowest source, lowest target) rule on
// equal weights: under a one-edge budget, candidate (0,3) beats (1,2).
func TestConstruct_TieBreak(t *testing.T) {
	g, err := pmfg.Construct(mustMatrix(t, [][]float64{
		{0, 0.1, 0.2, 5},
		{0.1, 0, 5, 0.3},
		{0.2, 5, 0, 0.4},
		{5, 0.3, 0.4, 0},
	}), pmfg.WithEdgeBudget(1))
	require.NoError(t, err)

	assert.Equal(t, 1, g.Size())
	assert.True(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(1, 2))
}

// TestConstruct_PlanarAndBounded checks the structural contract over a range
// of sizes: final count ≤ 3(N-2) and a planar result.
func TestConstruct_PlanarAndBounded(t *testing.T) {
	for _, n := range []int{4, 6, 10, 18, 30} {
		g, err := pmfg.Construct(randomProximity(t, n, int64(n)))
		require.NoError(t, err, "n=%d", n)

		assert.LessOrEqual(t, g.Size(), 3*(n-2), "n=%d", n)
		assert.True(t, planarity.IsPlanar(g), "n=%d", n)
	}
}

// TestConstruct_Determinism runs the construction twice on a tie-heavy
// matrix; the edge sets must match exactly, weights included.
func TestConstruct_Determinism(t *testing.T) {
	m := randomProximity(t, 24, 5)

	a, err := pmfg.Construct(m)
	require.NoError(t, err)
	b, err := pmfg.Construct(m)
	require.NoError(t, err)

	assert.Equal(t, a.SortedEdges(), b.SortedEdges())
}

// TestConstruct_WeightRoundTrip verifies stored weights equal the matrix
// entries for their pairs.
func TestConstruct_WeightRoundTrip(t *testing.T) {
	m := randomProximity(t, 15, 11)
	g, err := pmfg.Construct(m)
	require.NoError(t, err)

	require.NotZero(t, g.Size())
	for _, e := range g.Edges() {
		assert.Equal(t, m.At(e.U, e.V), e.Weight)
	}
}

// TestConstruct_OracleInjection verifies the capability interface: a veto
// oracle leaves the graph empty (every insertion reverted), and a counting
// oracle observes one consultation per considered candidate.
func TestConstruct_OracleInjection(t *testing.T) {
	m := randomProximity(t, 6, 21)

	empty, err := pmfg.Construct(m, pmfg.WithOracle(rejectAll{}))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())
	assert.Len(t, empty.IsolatedNodes(), 6)

	counter := &countingOracle{}
	g, err := pmfg.Construct(m, pmfg.WithOracle(counter))
	require.NoError(t, err)
	assert.NotZero(t, g.Size())
	// 6 nodes, all 15 pairs positive; the limit 3(N-2)=12 stops early, so
	// consultations never exceed the candidate count.
	assert.GreaterOrEqual(t, counter.calls, g.Size())
	assert.LessOrEqual(t, counter.calls, 15)
}

// TestConstruct_Cancellation verifies the cooperative-cancellation sentinel.
func TestConstruct_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pmfg.Construct(randomProximity(t, 8, 3), pmfg.WithContext(ctx))
	assert.ErrorIs(t, err, pmfg.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestConstruct_Progress verifies acceptance-fraction reporting under a
// budget: monotone, ending exactly at 1.0.
func TestConstruct_Progress(t *testing.T) {
	var fractions []float64
	_, err := pmfg.Construct(
		randomProximity(t, 8, 17),
		pmfg.WithEdgeBudget(5),
		pmfg.WithProgress(func(f float64) { fractions = append(fractions, f) }),
	)
	require.NoError(t, err)

	require.Len(t, fractions, 5)
	assert.Equal(t, 1.0, fractions[len(fractions)-1])
	for i := 1; i < len(fractions); i++ {
		assert.Greater(t, fractions[i], fractions[i-1])
	}
}

// TestWithEdgeBudget_Panic verifies the option constructor rejects negatives.
func TestWithEdgeBudget_Panic(t *testing.T) {
	assert.PanicsWithValue(t, pmfg.ErrBadEdgeBudget.Error(), func() {
		var o pmfg.Options
		pmfg.WithEdgeBudget(-3)(&o)
	})
}
