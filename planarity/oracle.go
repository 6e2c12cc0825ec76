// Package planarity: the capability interface consulted by schedulers.
package planarity

import "github.com/katalvlaran/planfilt/core"

// Oracle answers planarity queries over a working graph. Implementations
// must be stateless with respect to the graph: a call may not mutate g and
// repeated calls on the same graph must agree.
type Oracle interface {
	IsPlanar(g *core.Graph) bool
}

// LeftRight is the default Oracle backed by the left-right criterion.
type LeftRight struct{}

// IsPlanar implements Oracle.
func (LeftRight) IsPlanar(g *core.Graph) bool { return IsPlanar(g) }

// Default is the Oracle used when a scheduler is given none.
var Default Oracle = LeftRight{}
