// Package planarity: the left-right planarity test (Brandes' formulation).
package planarity

import (
	"sort"

	"github.com/katalvlaran/planfilt/core"
)

// arc is a DFS-oriented edge u→v. The zero value is never a valid arc; nilArc
// marks "no edge" slots (empty interval bounds, root parent edges).
type arc struct{ u, v int }

// nilArc is the sentinel for an absent arc.
var nilArc = arc{-1, -1}

// interval is a range of back edges [low, high] on one side of a conflict
// pair; both bounds are nilArc when the interval is empty.
type interval struct{ low, high arc }

// empty reports whether the interval holds no back edges.
func (i interval) empty() bool { return i.low == nilArc && i.high == nilArc }

// conflictPair groups the back-edge intervals that must embed on opposite
// sides of the current tree path.
type conflictPair struct{ l, r interval }

// swap exchanges the two sides in place.
func (p *conflictPair) swap() { p.l, p.r = p.r, p.l }

// lrState carries all working structures of one IsPlanar call.
type lrState struct {
	height []int   // DFS height per node; -1 = unvisited
	parent []arc   // parent tree edge per node; nilArc at roots
	adj    [][]int // sorted neighbor lists, fixed for the whole call
	ind    []int   // per-node resume cursor shared by both DFS phases

	outAdj  [][]int     // oriented out-neighbors, later nesting-ordered
	lowpt   map[arc]int // lowest return height over the arc's subtree
	lowpt2  map[arc]int // second-lowest return height
	nesting map[arc]int // nesting order key for the testing DFS

	stack       []*conflictPair
	stackBottom map[arc]int // stack height when the arc was sprouted
	lowptEdge   map[arc]arc // back edge realizing lowpt
	ref         map[arc]arc // next-in-chain reference between back edges
}

// IsPlanar reports whether g admits a planar embedding.
//
// Steps:
//  1. Fast paths: order < 5 ⇒ planar; size > 3n-6 (n ≥ 3) ⇒ non-planar.
//  2. Orientation DFS from every unvisited node: orient edges, compute
//     height, lowpt, lowpt2 and the nesting order (O(V+E)).
//  3. Reorder each out-adjacency by nesting order (O(E log E) overall).
//  4. Testing DFS per root: maintain the conflict-pair stack, merging the
//     return-edge intervals of each sprouted subtree; any forced same-side
//     conflict rejects the graph (O(V+E)).
//
// Both DFS phases run over explicit stacks, so the call stack stays flat
// however deep the tree grows.
//
// Disconnected graphs are covered by the per-root loops: each component is
// tested independently and the first violation answers false.
//
// Complexity: O(V + E) time and memory (plus the adjacency sort).
func IsPlanar(g *core.Graph) bool {
	n := g.Order()
	m := g.Size()

	// 1) Euler-bound fast paths.
	if n < 5 {
		return true
	}
	if m > 3*n-6 {
		return false
	}

	s := &lrState{
		height:      make([]int, n),
		parent:      make([]arc, n),
		adj:         make([][]int, n),
		ind:         make([]int, n),
		outAdj:      make([][]int, n),
		lowpt:       make(map[arc]int, m),
		lowpt2:      make(map[arc]int, m),
		nesting:     make(map[arc]int, m),
		stackBottom: make(map[arc]int, m),
		lowptEdge:   make(map[arc]arc, m),
		ref:         make(map[arc]arc, m),
	}
	for v := 0; v < n; v++ {
		s.height[v] = -1
		s.parent[v] = nilArc
		s.adj[v] = g.Neighbors(v)
	}

	// 2) Orientation phase, one DFS tree per component.
	var roots []int
	for v := 0; v < n; v++ {
		if s.height[v] < 0 {
			s.height[v] = 0
			roots = append(roots, v)
			s.orient(v)
		}
	}

	// 3) Nesting order: sort each out-adjacency by nesting key; ties keep
	//    ascending neighbor index for determinism.
	for v := 0; v < n; v++ {
		vv := v
		sort.SliceStable(s.outAdj[vv], func(i, j int) bool {
			return s.nesting[arc{vv, s.outAdj[vv][i]}] < s.nesting[arc{vv, s.outAdj[vv][j]}]
		})
	}

	// 4) Testing phase; the resume cursors restart from the reordered lists.
	for v := range s.ind {
		s.ind[v] = 0
	}
	for _, r := range roots {
		if !s.test(r) {
			return false
		}
	}

	return true
}

// orient runs the first DFS from root over an explicit stack: orients each
// undirected edge the way the DFS first traverses it, computes heights and
// low-points, and derives the nesting key 2·lowpt(e) (+1 when the subtree is
// chordal, lowpt2 < height).
//
// A tree edge pushes its endpoint and re-pushes the current node; the resume
// cursor ind[v] keeps pointing at that edge so its low-points fold into the
// parent only after the whole subtree is done. sprouted marks edges whose
// descent already happened, so the resumed pass skips straight to the fold.
func (s *lrState) orient(root int) {
	dfs := []int{root}
	sprouted := make(map[arc]bool)
	for len(dfs) > 0 {
		v := dfs[len(dfs)-1]
		dfs = dfs[:len(dfs)-1]
		e := s.parent[v]

		for s.ind[v] < len(s.adj[v]) {
			w := s.adj[v][s.ind[v]]
			vw := arc{v, w}

			if !sprouted[vw] {
				if _, seen := s.lowpt[vw]; seen {
					s.ind[v]++
					continue // already oriented v→w
				}
				if _, seen := s.lowpt[arc{w, v}]; seen {
					s.ind[v]++
					continue // already oriented w→v
				}
				s.outAdj[v] = append(s.outAdj[v], w)
				s.lowpt[vw] = s.height[v]
				s.lowpt2[vw] = s.height[v]

				if s.height[w] < 0 { // tree edge: descend, resume v later
					s.parent[w] = vw
					s.height[w] = s.height[v] + 1
					sprouted[vw] = true
					dfs = append(dfs, v, w)
					break
				}
				s.lowpt[vw] = s.height[w] // back edge
			}

			// Nesting key: deeper-reaching subtrees come first; chordal ones
			// last among equals.
			s.nesting[vw] = 2 * s.lowpt[vw]
			if s.lowpt2[vw] < s.height[v] {
				s.nesting[vw]++
			}

			// Fold vw's low-points into the parent edge.
			if e != nilArc {
				switch {
				case s.lowpt[vw] < s.lowpt[e]:
					s.lowpt2[e] = min(s.lowpt[e], s.lowpt2[vw])
					s.lowpt[e] = s.lowpt[vw]
				case s.lowpt[vw] > s.lowpt[e]:
					s.lowpt2[e] = min(s.lowpt2[e], s.lowpt[vw])
				default:
					s.lowpt2[e] = min(s.lowpt2[e], s.lowpt2[vw])
				}
			}
			s.ind[v]++
		}
	}
}

// test runs the second DFS from root over the nesting-ordered adjacency and
// an explicit stack, maintaining the conflict pairs. Returns false on the
// first forced same-side conflict (the graph is non-planar).
//
// Descending into a tree edge re-pushes the current node so its remaining
// out-edges resume afterwards; the leaving-v trim runs only on the pass that
// exhausts the adjacency, never on a pass interrupted by a descent.
func (s *lrState) test(root int) bool {
	dfs := []int{root}
	sprouted := make(map[arc]bool)
	for len(dfs) > 0 {
		v := dfs[len(dfs)-1]
		dfs = dfs[:len(dfs)-1]
		e := s.parent[v]

		descended := false
		for s.ind[v] < len(s.outAdj[v]) {
			w := s.outAdj[v][s.ind[v]]
			ei := arc{v, w}

			if !sprouted[ei] {
				s.stackBottom[ei] = len(s.stack)
				if ei == s.parent[w] { // tree edge: descend, resume v later
					sprouted[ei] = true
					dfs = append(dfs, v, w)
					descended = true
					break
				}
				// Back edge: its own one-element right interval.
				s.lowptEdge[ei] = ei
				s.stack = append(s.stack, &conflictPair{
					l: interval{nilArc, nilArc},
					r: interval{low: ei, high: ei},
				})
			}

			// Integrate ei's return edges into the constraints of e.
			if s.lowpt[ei] < s.height[v] { // ei has a return edge
				if s.ind[v] == 0 {
					s.lowptEdge[e] = s.lowptEdge[ei]
				} else if !s.addConstraints(ei, e) {
					return false
				}
			}
			s.ind[v]++
		}
		if descended {
			continue
		}

		// Leaving v: drop back edges that return to its parent.
		if e != nilArc {
			u := e.u
			s.trimBackEdges(u)
			// The side of e follows its highest remaining return edge.
			if s.lowpt[e] < s.height[u] && len(s.stack) > 0 {
				top := s.stack[len(s.stack)-1]
				hl := top.l.high
				hr := top.r.high
				if hl != nilArc && (hr == nilArc || s.lowpt[hl] > s.lowpt[hr]) {
					s.ref[e] = hl
				} else if hr != nilArc {
					s.ref[e] = hr
				}
			}
		}
	}

	return true
}

// addConstraints merges the return edges of ei into a fresh conflict pair and
// aligns it against the pairs sprouted by ei's elder siblings. Returns false
// when two return edges are forced onto the same side below lowpt(e).
func (s *lrState) addConstraints(ei, e arc) bool {
	p := &conflictPair{l: interval{nilArc, nilArc}, r: interval{nilArc, nilArc}}

	// Merge return edges of ei into p.r.
	for {
		q := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if !q.l.empty() {
			q.swap()
		}
		if !q.l.empty() {
			return false // both sides occupied: K5/K3,3 subdivision
		}
		if s.lowpt[q.r.low] > s.lowpt[e] {
			// q returns strictly above lowpt(e): keep it on ei's side.
			if p.r.empty() {
				p.r.high = q.r.high
			} else {
				s.ref[p.r.low] = q.r.high
			}
			p.r.low = q.r.low
		} else {
			// q returns to lowpt(e) or below: align with e's lowest return.
			s.ref[q.r.low] = s.lowptEdge[e]
		}
		if len(s.stack) == s.stackBottom[ei] {
			break
		}
	}

	// Merge the conflicting pairs of ei's elder siblings into p.l.
	for len(s.stack) > 0 &&
		(s.conflicting(s.stack[len(s.stack)-1].l, ei) || s.conflicting(s.stack[len(s.stack)-1].r, ei)) {
		q := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if s.conflicting(q.r, ei) {
			q.swap()
		}
		if s.conflicting(q.r, ei) {
			return false // both sides conflict with ei
		}
		// The part of q.r below lowpt(ei) joins p.r.
		s.ref[p.r.low] = q.r.high
		if q.r.low != nilArc {
			p.r.low = q.r.low
		}
		if p.l.empty() {
			p.l.high = q.l.high
		} else {
			s.ref[p.l.low] = q.l.high
		}
		p.l.low = q.l.low
	}

	if !p.l.empty() || !p.r.empty() {
		s.stack = append(s.stack, p)
	}

	return true
}

// conflicting reports whether interval i still holds a return edge strictly
// above lowpt(b), i.e. it cannot share a side with b.
func (s *lrState) conflicting(i interval, b arc) bool {
	return !i.empty() && s.lowpt[i.high] > s.lowpt[b]
}

// trimBackEdges removes back edges that return to u from the top of the
// stack: whole pairs whose lowest return is at height(u), then a partial trim
// of the topmost surviving pair.
func (s *lrState) trimBackEdges(u int) {
	// Drop entire conflict pairs returning only to u.
	for len(s.stack) > 0 && s.lowest(s.stack[len(s.stack)-1]) == s.height[u] {
		s.stack = s.stack[:len(s.stack)-1]
	}

	if len(s.stack) == 0 {
		return
	}

	// Partially trim the next pair.
	p := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	for p.l.high != nilArc && p.l.high.v == u {
		p.l.high = s.refOrNil(p.l.high)
	}
	if p.l.high == nilArc && p.l.low != nilArc {
		// The left interval just emptied; rechain its low end to the right.
		s.ref[p.l.low] = p.r.low
		p.l.low = nilArc
	}
	for p.r.high != nilArc && p.r.high.v == u {
		p.r.high = s.refOrNil(p.r.high)
	}
	if p.r.high == nilArc && p.r.low != nilArc {
		s.ref[p.r.low] = p.l.low
		p.r.low = nilArc
	}
	s.stack = append(s.stack, p)
}

// refOrNil follows the ref chain one step, mapping "unset" to nilArc.
func (s *lrState) refOrNil(e arc) arc {
	if r, ok := s.ref[e]; ok {
		return r
	}

	return nilArc
}

// lowest returns the lowest return height of a conflict pair.
func (s *lrState) lowest(p *conflictPair) int {
	if p.l.empty() {
		return s.lowpt[p.r.low]
	}
	if p.r.empty() {
		return s.lowpt[p.l.low]
	}

	return min(s.lowpt[p.l.low], s.lowpt[p.r.low])
}
