package datasource

import "fmt"

// Column computes one cell of a report row.
//
// Initialize runs once, when the node is created; at that point only the
// node's element is reliable, children are not attached yet. Compute runs at
// most once per node, on first read, and may read other columns of the same
// node or of its children.
type Column interface {
	Initialize(n *Node)
	Compute(n *Node) (any, error)
}

// ColumnFactory returns a fresh Column for one node.
type ColumnFactory func() Column

// Shape is the ordered set of columns every report row carries.
//
// Shapes are declared up front and are read-only once handed to a Generator.
type Shape struct {
	ids       []string
	factories map[string]ColumnFactory
}

// NewShape returns an empty Shape.
func NewShape() *Shape {
	return &Shape{factories: make(map[string]ColumnFactory)}
}

// Declare registers factory under id. Declaration order is column order.
func (s *Shape) Declare(id string, factory ColumnFactory) error {
	if id == "" {
		return ErrEmptyColumnID
	}
	if factory == nil {
		return fmt.Errorf("datasource: Declare(%q): %w", id, ErrNilFactory)
	}
	if _, ok := s.factories[id]; ok {
		return fmt.Errorf("datasource: Declare(%q): %w", id, ErrDuplicateColumn)
	}
	s.ids = append(s.ids, id)
	s.factories[id] = factory

	return nil
}

// MustDeclare is Declare that panics on error. It returns s for chaining.
func (s *Shape) MustDeclare(id string, factory ColumnFactory) *Shape {
	if err := s.Declare(id, factory); err != nil {
		panic(err)
	}

	return s
}

// Columns returns the declared ids in declaration order.
func (s *Shape) Columns() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)

	return out
}

// Has reports whether id is declared.
func (s *Shape) Has(id string) bool {
	_, ok := s.factories[id]

	return ok
}

// Len returns the number of declared columns.
func (s *Shape) Len() int { return len(s.ids) }
