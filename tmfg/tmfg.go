// Package tmfg: the constructive growth scheduler.
package tmfg

import (
	"fmt"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/planfilt/core"
	"github.com/katalvlaran/planfilt/matrix"
)

// selection is one candidate insertion: a remaining node, an open face and
// the gain of putting the node into that face.
type selection struct {
	gain float64
	node int
	tri  Triangle
}

// better is the total selection order: higher gain first, ties by lowest
// node index, then by lexicographically smallest triangle. Totality is what
// makes batching and parallel scans reproduce the sequential choice.
func better(a, b selection) bool {
	if b.node < 0 {
		return true // anything beats the empty slot
	}
	if a.node < 0 {
		return false
	}
	if a.gain != b.gain {
		return a.gain > b.gain
	}
	if a.node != b.node {
		return a.node < b.node
	}

	return a.tri.Less(b.tri)
}

// Construct builds the TMFG of m.
//
// Contract:
//   - m must be non-nil; its validity (square, symmetric, finite) was already
//     enforced by matrix.New, so gains never see NaN/Inf.
//   - N < 4 returns the complete graph on N nodes (degenerate case).
//   - For N ≥ 4 the result has exactly 3N-6 edges, no isolated nodes, and is
//     planar by construction; no planarity check is ever invoked.
//
// Steps:
//  1. Seed: rank nodes by proximity row sum (ties: lowest index), take the
//     top four as the tetrahedron; insert its 6 edges and 4 open faces.
//  2. Repeat exactly N-4 times: check cancellation and memory, scan all
//     (remaining node, open face) pairs for the maximum gain — the sum of
//     the node's three proximities to the face — insert the winner's three
//     edges, split the filled face into three, shrink the remaining set.
//  3. Return the graph; the caller owns it, all working state dies here.
//
// Errors: ErrNilMatrix, ErrCancelled (wraps ctx.Err()), ErrResourceExhausted.
//
// Complexity: O(N²) gain arithmetic per iteration, O(N³) total, O(N) working
// memory beyond the output graph.
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

	// Degenerate terminal case: below the seed size no filtering is possible.
	if n < 4 {
		return completeGraph(m)
	}

	// 1) Seed tetrahedron: top-4 nodes by row sum, deterministic ranking.
	sums := m.RowSums()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if sums[order[i]] != sums[order[j]] {
			return sums[order[i]] > sums[order[j]]
		}

		return order[i] < order[j]
	})
	seed := make([]int, 4)
	copy(seed, order[:4])
	sort.Ints(seed)

	g := core.NewGraph(n)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if err := g.AddEdge(seed[i], seed[j], m.At(seed[i], seed[j])); err != nil {
				return nil, err
			}
		}
	}

	// Open faces: the four triangular faces of the tetrahedron.
	faces := newFaceSet(2 * n)
	faces.add(NewTriangle(seed[0], seed[1], seed[2]))
	faces.add(NewTriangle(seed[0], seed[1], seed[3]))
	faces.add(NewTriangle(seed[0], seed[2], seed[3]))
	faces.add(NewTriangle(seed[1], seed[2], seed[3]))

	// Remaining set: arena-style index array with swap-remove.
	inSeed := make([]bool, n)
	for _, v := range seed {
		inSeed[v] = true
	}
	remaining := make([]int, 0, n-4)
	for v := 0; v < n; v++ {
		if !inSeed[v] {
			remaining = append(remaining, v)
		}
	}

	// 2) Greedy insertion loop: exactly N-4 iterations.
	total := n - 4
	for k := 0; k < total; k++ {
		// Cooperative cancellation at the iteration boundary.
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		// Memory policy: reclaim between iterations, abort on persistence.
		if err := checkMemory(&o); err != nil {
			return nil, err
		}

		best := scanRemaining(m, faces, remaining, &o)

		// Insert the winner: three new edges into the chosen face.
		for _, v := range best.tri {
			if err := g.AddEdge(best.node, v, m.At(best.node, v)); err != nil {
				return nil, err
			}
		}

		// The filled face closes; three new faces open around the node.
		faces.remove(best.tri)
		faces.add(NewTriangle(best.node, best.tri[0], best.tri[1]))
		faces.add(NewTriangle(best.node, best.tri[0], best.tri[2]))
		faces.add(NewTriangle(best.node, best.tri[1], best.tri[2]))

		// Swap-remove the node from the remaining set.
		for i, v := range remaining {
			if v == best.node {
				remaining[i] = remaining[len(remaining)-1]
				remaining = remaining[:len(remaining)-1]
				break
			}
		}

		if o.Progress != nil {
			o.Progress(float64(k+1) / float64(total))
		}
	}

	return g, nil
}

// scanRemaining finds the globally best (node, face) pair for one iteration.
// The scan is partitioned into batches; each batch reduces into a private
// slot and a final pass re-merges the global maximum, so batch geometry and
// worker scheduling never influence the selection.
func scanRemaining(m *matrix.Matrix, faces *faceSet, remaining []int, o *Options) selection {
	chunks := partition(remaining, o.BatchSize, o.Parallelism)
	results := make([]selection, len(chunks))

	if o.Parallelism > 1 && len(chunks) > 1 {
		// Read-only fan-out: workers share m and faces, write disjoint slots.
		var eg errgroup.Group
		eg.SetLimit(o.Parallelism)
		for ci, chunk := range chunks {
			ci, chunk := ci, chunk
			eg.Go(func() error {
				results[ci] = scanChunk(m, faces, chunk)

				return nil
			})
		}
		_ = eg.Wait() // workers never fail
	} else {
		for ci, chunk := range chunks {
			results[ci] = scanChunk(m, faces, chunk)
		}
	}

	// Single reduction picks the global maximum under the total order.
	best := selection{gain: math.Inf(-1), node: -1}
	for _, r := range results {
		if better(r, best) {
			best = r
		}
	}

	return best
}

// scanChunk evaluates every (node, face) gain within one batch of nodes.
func scanChunk(m *matrix.Matrix, faces *faceSet, nodes []int) selection {
	best := selection{gain: math.Inf(-1), node: -1}
	for _, node := range nodes {
		for _, tri := range faces.faces {
			gain := m.At(node, tri[0]) + m.At(node, tri[1]) + m.At(node, tri[2])
			cand := selection{gain: gain, node: node, tri: tri}
			if better(cand, best) {
				best = cand
			}
		}
	}

	return best
}

// partition splits the remaining set into contiguous batches. With an
// explicit batch size the count follows from it; otherwise the scan splits
// into one chunk per worker.
func partition(nodes []int, batchSize, parallelism int) [][]int {
	if len(nodes) == 0 {
		return nil
	}
	size := batchSize
	if size <= 0 {
		size = (len(nodes) + parallelism - 1) / parallelism
	}
	chunks := make([][]int, 0, (len(nodes)+size-1)/size)
	for start := 0; start < len(nodes); start += size {
		end := start + size
		if end > len(nodes) {
			end = len(nodes)
		}
		chunks = append(chunks, nodes[start:end])
	}

	return chunks
}

// completeGraph is the N < 4 degenerate result: every pair connected with
// its matrix weight.
func completeGraph(m *matrix.Matrix) (*core.Graph, error) {
	n := m.Size()
	g := core.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j, m.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// checkMemory enforces the optional heap threshold: notify, reclaim, re-read,
// abort on persistent exceedance. Never touches selection state.
func checkMemory(o *Options) error {
	if o.MemoryLimit == 0 {
		return nil
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.HeapAlloc <= o.MemoryLimit {
		return nil
	}
	if o.OnMemoryPressure != nil {
		o.OnMemoryPressure(ms.HeapAlloc, o.MemoryLimit)
	}
	// Reclamation pass: drop transient candidate arrays from prior iterations.
	runtime.GC()
	runtime.ReadMemStats(&ms)
	if ms.HeapAlloc > o.MemoryLimit {
		return ErrResourceExhausted
	}

	return nil
}
