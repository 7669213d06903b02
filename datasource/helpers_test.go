package datasource_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreport/category"
	"github.com/katalvlaran/lvreport/datasource"
	"github.com/katalvlaran/lvreport/hierarchy"
	"github.com/katalvlaran/lvreport/nested"
)

func def(short string, cats ...*category.Category) *nested.Definition {
	return &nested.Definition{ID: "d-" + short, ShortName: short, Name: short, Categories: cats}
}

func place(parent *nested.Definition, short string, d *nested.Definition, cats ...*category.Category) *nested.Usage {
	u := &nested.Usage{ID: "u-" + short, ShortName: short, Name: short, Definition: d, Categories: cats}
	parent.Contained = append(parent.Contained, u)

	return u
}

func param(d *nested.Definition, t string, values ...string) *nested.Definition {
	d.Parameters = append(d.Parameters, &nested.Parameter{Type: t, Owner: "SYS", Values: values})

	return d
}

func flatten(t *testing.T, root *nested.Definition) []*nested.Element {
	t.Helper()
	elements, err := nested.Flatten(root)
	require.NoError(t, err)

	return elements
}

func chain(t *testing.T, cats ...*category.Category) (*hierarchy.Level, []*hierarchy.Level) {
	t.Helper()
	top, err := hierarchy.CreateTopLevelCategoryHierarchy(cats[0])
	require.NoError(t, err)
	levels := []*hierarchy.Level{top}
	for _, c := range cats[1:] {
		l, err := levels[len(levels)-1].AddChildCategory(c)
		require.NoError(t, err)
		levels = append(levels, l)
	}

	return top, levels
}

func generate(t *testing.T, shape *datasource.Shape, top *hierarchy.Level, root *nested.Definition) *datasource.Report {
	t.Helper()
	r, err := datasource.NewGenerator(shape).Generate(top, flatten(t, root))
	require.NoError(t, err)

	return r
}

// outline renders the report as "name" entries, prefixed with "~" for
// invisible nodes and indented with "." per depth.
func outline(r *datasource.Report) []string {
	var out []string
	r.Walk(func(n *datasource.Node) bool {
		s := ""
		for i := 0; i < n.Depth(); i++ {
			s += "."
		}
		if !n.IsVisible() {
			s += "~"
		}
		out = append(out, s+n.Name())
		return true
	})

	return out
}

type countingRecorder struct {
	visible, invisible, pruned int
	evaluated                  map[string]int
	failed                     map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{evaluated: map[string]int{}, failed: map[string]int{}}
}

func (c *countingRecorder) NodeCreated(visible bool) {
	if visible {
		c.visible++
		return
	}
	c.invisible++
}

func (c *countingRecorder) NodePruned() { c.pruned++ }

func (c *countingRecorder) ColumnEvaluated(column string, err error) {
	c.evaluated[column]++
	if err != nil {
		c.failed[column]++
	}
}
