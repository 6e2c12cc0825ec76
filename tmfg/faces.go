// Package tmfg: the open-face tracker.
package tmfg

// Triangle is a canonical open face: three distinct node indices in strictly
// ascending order. Canonical form makes value equality and lexicographic
// comparison well defined, so faces can key a set directly.
type Triangle [3]int

// NewTriangle canonicalizes three distinct node indices into a Triangle.
func NewTriangle(a, b, c int) Triangle {
	// Three-element sorting network.
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}

	return Triangle{a, b, c}
}

// Less reports lexicographic order between canonical triangles; this is the
// second-level tie-break of the greedy selection.
func (t Triangle) Less(u Triangle) bool {
	for i := 0; i < 3; i++ {
		if t[i] != u[i] {
			return t[i] < u[i]
		}
	}

	return false
}

// faceSet is an index-stable set of open faces: a slice for O(1) iteration
// plus a position map for O(1) membership and swap-remove. Iteration order is
// unconstrained — the selection comparator is total, so any order yields the
// same greedy choice.
type faceSet struct {
	faces []Triangle
	pos   map[Triangle]int
}

// newFaceSet preallocates for the expected face-count ceiling. A maximal
// planar graph on n nodes ends with 2n-4 faces.
func newFaceSet(capacity int) *faceSet {
	return &faceSet{
		faces: make([]Triangle, 0, capacity),
		pos:   make(map[Triangle]int, capacity),
	}
}

// add inserts t; adding a present face is a no-op.
func (s *faceSet) add(t Triangle) {
	if _, ok := s.pos[t]; ok {
		return
	}
	s.pos[t] = len(s.faces)
	s.faces = append(s.faces, t)
}

// remove deletes t by swap-remove; removing an absent face is a no-op.
func (s *faceSet) remove(t Triangle) {
	i, ok := s.pos[t]
	if !ok {
		return
	}
	last := len(s.faces) - 1
	if i != last {
		s.faces[i] = s.faces[last]
		s.pos[s.faces[i]] = i
	}
	s.faces = s.faces[:last]
	delete(s.pos, t)
}

// len returns the number of open faces.
func (s *faceSet) len() int { return len(s.faces) }
