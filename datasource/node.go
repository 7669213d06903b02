// Package datasource: report nodes and lazy cells.
//
// Each Node owns one Column instance per Shape id. Values are computed on first
// read and memoised with their error. A cell read again while Gray is a
// circular dependency.

package datasource

import (
	"fmt"

	"github.com/katalvlaran/lvreport/hierarchy"
	"github.com/katalvlaran/lvreport/nested"
)

// cell evaluation states.
const (
	White = iota // White: the cell has not been computed yet.
	Gray         // Gray: the cell is being computed.
	Black        // Black: value and error are final.
)

type cell struct {
	col   Column
	state int
	value any
	err   error
}

// Node is one row of a report tree.
//
// The parent pointer is a back-reference only; a Node owns its children.
// The structure does not change after Generate returns.
type Node struct {
	element  *nested.Element
	level    *hierarchy.Level
	parent   *Node
	children []*Node
	visible  bool

	cells map[string]*cell
	rec   Recorder
}

func newNode(e *nested.Element, level *hierarchy.Level, visible bool, shape *Shape, rec Recorder) *Node {
	n := &Node{
		element: e,
		level:   level,
		visible: visible,
		cells:   make(map[string]*cell, shape.Len()),
		rec:     rec,
	}
	// 1. One fresh column per declared id
	for _, id := range shape.ids {
		n.cells[id] = &cell{col: shape.factories[id]()}
	}
	// 2. Initialize in declaration order
	for _, id := range shape.ids {
		n.cells[id].col.Initialize(n)
	}

	return n
}

func (n *Node) attach(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) detach(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Element returns the nested element this node represents.
func (n *Node) Element() *nested.Element { return n.element }

// Level returns the filter level the node occupies.
func (n *Node) Level() *hierarchy.Level { return n.level }

// Parent returns the parent node, nil for a report root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in discovery order.
// The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// IsVisible reports whether the element matched a level itself.
// Invisible nodes only hold level-skipped descendants in place.
func (n *Node) IsVisible() bool { return n.visible }

// IsRelevant reports whether n is visible or has a relevant descendant.
func (n *Node) IsRelevant() bool {
	if n.visible {
		return true
	}
	for _, c := range n.children {
		if c.IsRelevant() {
			return true
		}
	}

	return false
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Depth returns the distance to the report root, 0 for a root.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}

	return d
}

// Name returns the qualified short name of the element.
func (n *Node) Name() string { return n.element.ShortName() }

// Column returns the column instance bound to id on this node.
func (n *Node) Column(id string) (Column, error) {
	c, ok := n.cells[id]
	if !ok {
		return nil, fmt.Errorf("datasource: %s: column %q: %w", n.Name(), id, ErrUnknownColumn)
	}

	return c.col, nil
}

// Value returns the value of column id, computing it on first read.
func (n *Node) Value(id string) (any, error) {
	c, ok := n.cells[id]
	if !ok {
		return nil, fmt.Errorf("datasource: %s: column %q: %w", n.Name(), id, ErrUnknownColumn)
	}

	switch c.state {
	case Black:
		return c.value, c.err
	case Gray:
		return nil, fmt.Errorf("datasource: %s: column %q: %w", n.Name(), id, ErrCircularColumnDependency)
	}

	c.state = Gray
	c.value, c.err = c.col.Compute(n)
	c.state = Black
	n.rec.ColumnEvaluated(id, c.err)

	return c.value, c.err
}

// Get returns column id of n as a T.
func Get[T any](n *Node, id string) (T, error) {
	var zero T
	v, err := n.Value(id)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("datasource: %s: column %q holds %T, want %T: %w", n.Name(), id, v, zero, ErrColumnType)
	}

	return t, nil
}

// Sibling returns another column of the same row. It is Get, named for use
// inside Compute.
func Sibling[T any](n *Node, id string) (T, error) { return Get[T](n, id) }

// Children returns column id of every child of n, in child order.
// The first failing child aborts with its error.
func Children[T any](n *Node, id string) ([]T, error) {
	out := make([]T, 0, len(n.children))
	for _, c := range n.children {
		v, err := Get[T](c, id)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
