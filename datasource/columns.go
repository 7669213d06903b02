// Package datasource: built-in column kinds.
//
// Category flags, derived values over a node, and rollups over children
// (Sum, Max, Min, Count) that read a fallback column on leaves.

package datasource

import (
	"fmt"
	"math"
)

// categoryColumn reports transitive membership of the row element.
type categoryColumn struct {
	shortName string
}

// CategoryColumn returns a factory for a bool column that is true when the
// row element's categories are, possibly through super-categories, shortName.
func CategoryColumn(shortName string) ColumnFactory {
	if shortName == "" {
		panic("datasource: CategoryColumn short name must not be empty")
	}

	return func() Column { return &categoryColumn{shortName: shortName} }
}

func (c *categoryColumn) Initialize(*Node) {}

func (c *categoryColumn) Compute(n *Node) (any, error) {
	return n.Element().IsMemberOf(c.shortName), nil
}

// Derived is a column computed by a caller-supplied function.
type Derived[T any] struct {
	fn func(n *Node) (T, error)
}

// DerivedColumn returns a factory for a column computed by fn. fn may read
// sibling and child columns through Sibling and Children.
func DerivedColumn[T any](fn func(n *Node) (T, error)) ColumnFactory {
	if fn == nil {
		panic("datasource: DerivedColumn function must not be nil")
	}

	return func() Column { return &Derived[T]{fn: fn} }
}

// Initialize is a no-op.
func (d *Derived[T]) Initialize(*Node) {}

// Compute calls the function.
func (d *Derived[T]) Compute(n *Node) (any, error) {
	v, err := d.fn(n)
	if err != nil {
		return nil, err
	}

	return v, nil
}

// RollupOp selects how RollupColumn combines child values.
type RollupOp int

const (
	// Sum adds the child values.
	Sum RollupOp = iota
	// Max keeps the largest child value.
	Max
	// Min keeps the smallest child value.
	Min
	// Count counts the leaves below the node.
	Count
)

// String returns the lower-case op name.
func (op RollupOp) String() string {
	switch op {
	case Sum:
		return "sum"
	case Max:
		return "max"
	case Min:
		return "min"
	case Count:
		return "count"
	default:
		return fmt.Sprintf("RollupOp(%d)", int(op))
	}
}

type rollupColumn struct {
	self     string
	fallback string
	op       RollupOp
}

// RollupColumn returns a factory for a float64 column that combines the
// children's values of the column self with op. A node without children
// takes the value of its own fallback column; for Count it is 1.
//
//	shape.MustDeclare("mass", datasource.FloatParameter("m")).
//		MustDeclare("total_mass", datasource.RollupColumn("total_mass", "mass", datasource.Sum))
func RollupColumn(self, fallback string, op RollupOp) ColumnFactory {
	if self == "" {
		panic("datasource: RollupColumn self id must not be empty")
	}
	if op != Count && fallback == "" {
		panic("datasource: RollupColumn fallback id must not be empty")
	}

	return func() Column { return &rollupColumn{self: self, fallback: fallback, op: op} }
}

func (r *rollupColumn) Initialize(*Node) {}

func (r *rollupColumn) Compute(n *Node) (any, error) {
	// 1. Leaf: own value
	if n.IsLeaf() {
		if r.op == Count {
			return 1.0, nil
		}
		v, err := Sibling[float64](n, r.fallback)
		if err != nil {
			return nil, err
		}

		return v, nil
	}

	// 2. Inner node: fold the children
	vals, err := Children[float64](n, r.self)
	if err != nil {
		return nil, err
	}

	acc := vals[0]
	if r.op == Sum || r.op == Count {
		acc = 0
	}
	for _, v := range vals {
		switch r.op {
		case Sum, Count:
			acc += v
		case Max:
			acc = math.Max(acc, v)
		case Min:
			acc = math.Min(acc, v)
		}
	}

	return acc, nil
}
