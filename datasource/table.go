// Package datasource: table projection.
//
// Project flattens a Report in pre-order into rows with one group slot per
// filter level, column values and per-cell errors. Row keys are name-based
// UUIDs (SHA-1), stable across runs for the same tree.

package datasource

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvreport/hierarchy"
)

// rowNamespace seeds the deterministic row keys.
var rowNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/katalvlaran/lvreport/row"))

// Group describes one level column of a Table.
type Group struct {
	Field         string
	Category      string
	GroupLevel    int
	FooterLabel   string
	FooterVisible bool
}

// Row is one projected report node.
//
// Groups[i] holds the element name of the ancestor, or the node itself,
// occupying Table.Groups[i]; it is empty when no node on the path does.
// Invisible rows carry neither values nor errors.
type Row struct {
	Key     uuid.UUID
	Name    string
	Depth   int
	Visible bool
	Groups  []string
	Values  map[string]any
	Errors  map[string]*CellError
}

// Table is the flat, pre-order projection of a Report.
type Table struct {
	Groups  []Group
	Columns []string
	Rows    []Row
}

// ProjectOption configures Project.
type ProjectOption func(*projectOptions)

type projectOptions struct {
	leavesOnly bool
	columns    []string
}

// WithLeavesOnly keeps only visible rows matched at a leaf level.
func WithLeavesOnly() ProjectOption {
	return func(o *projectOptions) { o.leavesOnly = true }
}

// WithColumns restricts the projection to ids, in that order. Ids unknown to
// the Shape show up as ErrUnknownColumn cell errors.
func WithColumns(ids ...string) ProjectOption {
	return func(o *projectOptions) { o.columns = ids }
}

// Project flattens r into a Table. Column errors never abort the projection;
// they are recorded per cell.
func Project(r *Report, opts ...ProjectOption) *Table {
	po := projectOptions{}
	for _, opt := range opts {
		opt(&po)
	}

	// 1. Header: one group per filter level, pre-order
	t := &Table{Columns: po.columns}
	if t.Columns == nil {
		t.Columns = r.shape.Columns()
	}
	levels := r.top.Levels()
	slot := make(map[*hierarchy.Level]int, len(levels))
	for i, l := range levels {
		slot[l] = i
		t.Groups = append(t.Groups, Group{
			Field:         l.FieldName(),
			Category:      l.Category().ShortName,
			GroupLevel:    l.GroupLevel(),
			FooterLabel:   l.FooterLabel(),
			FooterVisible: l.FooterVisible(),
		})
	}

	// 2. Rows in pre-order
	r.Walk(func(n *Node) bool {
		if po.leavesOnly && !(n.visible && n.level.IsLeaf()) {
			return true
		}
		t.Rows = append(t.Rows, project(n, t.Columns, slot, len(levels)))

		return true
	})

	return t
}

func project(n *Node, columns []string, slot map[*hierarchy.Level]int, groups int) Row {
	depth := n.Depth()
	row := Row{
		Key:     uuid.NewSHA1(rowNamespace, []byte(n.Name()+"#"+strconv.Itoa(depth))),
		Name:    n.Name(),
		Depth:   depth,
		Visible: n.visible,
		Groups:  make([]string, groups),
		Values:  make(map[string]any),
		Errors:  make(map[string]*CellError),
	}
	for p := n; p != nil; p = p.parent {
		if i, ok := slot[p.level]; ok && row.Groups[i] == "" {
			row.Groups[i] = p.element.Name()
		}
	}
	if !n.visible {
		return row
	}
	for _, id := range columns {
		v, err := n.Value(id)
		if err != nil {
			row.Errors[id] = &CellError{Row: row.Name, Column: id, Err: err}
			continue
		}
		row.Values[id] = v
	}

	return row
}
