package datasource

import "github.com/katalvlaran/lvreport/hierarchy"

// Report is the result of one Generate call.
type Report struct {
	top    *hierarchy.Level
	shape  *Shape
	roots  []*Node
	nodes  int
	pruned int
}

// Roots returns the top nodes in discovery order.
func (r *Report) Roots() []*Node { return r.roots }

// Top returns the filter tree the report was built against.
func (r *Report) Top() *hierarchy.Level { return r.top }

// Shape returns the column shape of every node.
func (r *Report) Shape() *Shape { return r.shape }

// Len returns the number of nodes kept in the report.
func (r *Report) Len() int { return r.nodes }

// Pruned returns the number of nodes discarded as irrelevant.
func (r *Report) Pruned() int { return r.pruned }

// Walk visits every node in pre-order. Returning false from fn skips the
// subtree below the visited node.
func (r *Report) Walk(fn func(*Node) bool) {
	for _, root := range r.roots {
		walk(root, fn)
	}
}

func walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		walk(c, fn)
	}
}
