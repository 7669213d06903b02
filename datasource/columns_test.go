package datasource_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreport/category"
	"github.com/katalvlaran/lvreport/datasource"
	"github.com/katalvlaran/lvreport/nested"
)

// massTree is sat { cell A: m=2.0, cell B: m=3.0 } on a Project > Module chain.
func massTree(t *testing.T, shape *datasource.Shape) *datasource.Report {
	t.Helper()
	top, _ := chain(t, catProject, catModule)
	root := def("sat", catProject)
	place(root, "a", param(def("cellA"), "m", "2.0"), catModule)
	place(root, "b", param(def("cellB"), "m", "3.0"), catModule)

	return generate(t, shape, top, root)
}

func TestRollup_Sum(t *testing.T) {
	shape := datasource.NewShape().
		MustDeclare("mass", datasource.FloatParameter("m")).
		MustDeclare("total_mass", datasource.RollupColumn("total_mass", "mass", datasource.Sum))
	r := massTree(t, shape)

	parent := r.Roots()[0]
	total, err := datasource.Get[float64](parent, "total_mass")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, total, 1e-9)

	leaves, err := datasource.Children[float64](parent, "total_mass")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.0, 3.0}, leaves, 1e-9)

	_, err = datasource.Get[float64](parent, "mass")
	assert.ErrorIs(t, err, datasource.ErrNoSuchParameter, "the parent itself carries no mass")
}

func TestRollup_Ops(t *testing.T) {
	shape := datasource.NewShape().
		MustDeclare("mass", datasource.FloatParameter("m")).
		MustDeclare("max", datasource.RollupColumn("max", "mass", datasource.Max)).
		MustDeclare("min", datasource.RollupColumn("min", "mass", datasource.Min)).
		MustDeclare("count", datasource.RollupColumn("count", "", datasource.Count))
	parent := massTree(t, shape).Roots()[0]

	tests := []struct {
		id   string
		want float64
	}{
		{"max", 3.0},
		{"min", 2.0},
		{"count", 2.0},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			v, err := datasource.Get[float64](parent, tc.id)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, v, 1e-9)
		})
	}

	assert.Equal(t, "count", datasource.Count.String())
	assert.Panics(t, func() { datasource.RollupColumn("x", "", datasource.Sum) })
}

func TestNode_Memoization(t *testing.T) {
	calls := 0
	shape := datasource.NewShape().
		MustDeclare("expensive", datasource.DerivedColumn(func(*datasource.Node) (int, error) {
			calls++
			return 42, nil
		})).
		MustDeclare("reader", datasource.DerivedColumn(func(n *datasource.Node) (int, error) {
			return datasource.Sibling[int](n, "expensive")
		})).
		MustDeclare("parent_reader", datasource.DerivedColumn(func(n *datasource.Node) (int, error) {
			vals, err := datasource.Children[int](n, "expensive")
			if err != nil {
				return 0, err
			}
			sum := 0
			for _, v := range vals {
				sum += v
			}
			return sum, nil
		}))
	r := massTree(t, shape)
	leaf := r.Roots()[0].Children()[0]

	for i := 0; i < 3; i++ {
		v, err := datasource.Get[int](leaf, "expensive")
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}
	_, err := leaf.Value("reader")
	require.NoError(t, err)
	_, err = r.Roots()[0].Value("parent_reader")
	require.NoError(t, err)
	_, err = r.Roots()[0].Value("parent_reader")
	require.NoError(t, err)

	assert.Equal(t, 2, calls, "once for each leaf, however often it is read")
}

func TestNode_ErrorsAreCached(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	shape := datasource.NewShape().MustDeclare("fails", datasource.DerivedColumn(func(*datasource.Node) (float64, error) {
		calls++
		return 0, boom
	}))
	n := massTree(t, shape).Roots()[0]

	_, err := n.Value("fails")
	assert.ErrorIs(t, err, boom)
	_, err = n.Value("fails")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestNode_CircularDependency(t *testing.T) {
	shape := datasource.NewShape().
		MustDeclare("a", datasource.DerivedColumn(func(n *datasource.Node) (int, error) {
			return datasource.Sibling[int](n, "b")
		})).
		MustDeclare("b", datasource.DerivedColumn(func(n *datasource.Node) (int, error) {
			return datasource.Sibling[int](n, "a")
		})).
		MustDeclare("self", datasource.DerivedColumn(func(n *datasource.Node) (int, error) {
			return datasource.Sibling[int](n, "self")
		}))
	n := massTree(t, shape).Roots()[0]

	_, err := n.Value("a")
	assert.ErrorIs(t, err, datasource.ErrCircularColumnDependency)
	_, err = n.Value("b")
	assert.ErrorIs(t, err, datasource.ErrCircularColumnDependency, "b cached the failure it saw")
	_, err = n.Value("self")
	assert.ErrorIs(t, err, datasource.ErrCircularColumnDependency)
}

func TestNode_UnknownColumnAndType(t *testing.T) {
	shape := datasource.NewShape().MustDeclare("mass", datasource.FloatParameter("m"))
	leaf := massTree(t, shape).Roots()[0].Children()[0]

	_, err := leaf.Value("nope")
	assert.ErrorIs(t, err, datasource.ErrUnknownColumn)
	_, err = leaf.Column("nope")
	assert.ErrorIs(t, err, datasource.ErrUnknownColumn)

	_, err = datasource.Get[string](leaf, "mass")
	assert.ErrorIs(t, err, datasource.ErrColumnType)
}

func TestCategoryColumn_Transitive(t *testing.T) {
	c1 := category.New("C1", "c1")
	c2 := category.New("C2", "c2", c1)
	top, _ := chain(t, catProject, c2)
	root := def("sat", catProject)
	place(root, "x", def("x", c2))

	shape := datasource.NewShape().
		MustDeclare("is_c1", datasource.CategoryColumn("C1")).
		MustDeclare("is_c2", datasource.CategoryColumn("C2")).
		MustDeclare("is_module", datasource.CategoryColumn("Module"))
	x := generate(t, shape, top, root).Roots()[0].Children()[0]

	for id, want := range map[string]bool{"is_c1": true, "is_c2": true, "is_module": false} {
		v, err := datasource.Get[bool](x, id)
		require.NoError(t, err)
		assert.Equal(t, want, v, id)
	}
}

func TestParameterColumn_Resolution(t *testing.T) {
	top, _ := chain(t, catProject, catModule)
	root := def("sat", catProject)
	cell := param(def("cell"), "m", "2.0")
	place(root, "plain", cell, catModule)
	over := place(root, "over", cell, catModule)
	over.Overrides = []*nested.Override{{Type: "m", Owner: "THR", Values: []string{"4.5"}}}

	elements := flatten(t, root)
	elements[1].Values = []*nested.Value{{Type: "m", Owner: "AOCS", Values: []string{"7", "8"}}}

	shape := datasource.NewShape().MustDeclare("mass", datasource.FloatParameter("m"))
	r, err := datasource.NewGenerator(shape).Generate(top, elements)
	require.NoError(t, err)
	kids := r.Roots()[0].Children()
	require.Len(t, kids, 2)

	tests := []struct {
		name   string
		node   *datasource.Node
		want   float64
		source nested.Source
		owner  string
	}{
		{"nested value wins, first value", kids[0], 7, nested.SourceNested, "AOCS"},
		{"override before definition", kids[1], 4.5, nested.SourceOverride, "THR"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := datasource.Get[float64](tc.node, "mass")
			require.NoError(t, err)
			assert.InDelta(t, tc.want, v, 1e-9)

			col, err := tc.node.Column("mass")
			require.NoError(t, err)
			p, ok := col.(*datasource.Parameter[float64])
			require.True(t, ok)
			assert.True(t, p.Resolved())
			assert.Equal(t, tc.source, p.Source())
			assert.Equal(t, tc.owner, p.Owner())
			assert.Equal(t, "m", p.ShortName())
		})
	}
}

func TestParameterColumn_Errors(t *testing.T) {
	top, _ := chain(t, catProject, catModule)
	root := def("sat", catProject)
	place(root, "bad", param(def("bad"), "m", "abc"), catModule)
	place(root, "empty", param(def("empty"), "m", "-"), catModule)
	place(root, "none", def("none"), catModule)
	place(root, "count", param(def("count"), "n", "12"), catModule)

	shape := datasource.NewShape().
		MustDeclare("mass", datasource.FloatParameter("m")).
		MustDeclare("n", datasource.IntParameter("n"))
	kids := generate(t, shape, top, root).Roots()[0].Children()
	require.Len(t, kids, 4)

	_, err := kids[0].Value("mass")
	var pe *datasource.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "abc", pe.Raw)
	assert.Equal(t, "m", pe.Target)
	assert.Equal(t, "float64", pe.Type)
	assert.Contains(t, pe.Error(), `cannot parse "abc" as float64`)
	assert.ErrorIs(t, err, datasource.ErrParse)
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = kids[1].Value("mass")
	assert.ErrorIs(t, err, datasource.ErrNoValue)

	_, err = kids[2].Value("mass")
	assert.ErrorIs(t, err, datasource.ErrNoSuchParameter)
	col, err := kids[2].Column("mass")
	require.NoError(t, err)
	assert.False(t, col.(*datasource.Parameter[float64]).Resolved())
	assert.Empty(t, col.(*datasource.Parameter[float64]).Raw())

	n, err := datasource.Get[int64](kids[3], "n")
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}

func TestParsers(t *testing.T) {
	f, err := datasource.ParseFloat(" 1.5 ")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, f, 1e-9)

	_, err = datasource.ParseFloat("1,5")
	assert.Error(t, err, "only the invariant '.' separator is accepted")

	f, err = datasource.ParseFloat("-2.5e3")
	require.NoError(t, err)
	assert.InDelta(t, -2500, f, 1e-9)

	for _, raw := range []string{"0x1p-2", "1_000.5", "Inf", "-inf", "NaN", ""} {
		_, err = datasource.ParseFloat(raw)
		assert.ErrorIs(t, err, strconv.ErrSyntax, raw)
	}

	b, err := datasource.ParseBool("true")
	require.NoError(t, err)
	assert.True(t, b)
	_, err = datasource.ParseBool("-")
	assert.ErrorIs(t, err, datasource.ErrNoValue)

	s, err := datasource.ParseString("-")
	require.NoError(t, err)
	assert.Equal(t, "-", s)

	assert.Panics(t, func() { datasource.ParameterColumn[int]("", nil) })
	assert.Panics(t, func() { datasource.CategoryColumn("") })
	assert.Panics(t, func() { datasource.DerivedColumn[int](nil) })
}

func TestShape_Declare(t *testing.T) {
	s := datasource.NewShape()
	require.NoError(t, s.Declare("a", datasource.StringParameter("a")))
	require.NoError(t, s.Declare("b", datasource.BoolParameter("b")))

	assert.ErrorIs(t, s.Declare("a", datasource.StringParameter("a")), datasource.ErrDuplicateColumn)
	assert.ErrorIs(t, s.Declare("", datasource.StringParameter("a")), datasource.ErrEmptyColumnID)
	assert.ErrorIs(t, s.Declare("c", nil), datasource.ErrNilFactory)

	assert.Equal(t, []string{"a", "b"}, s.Columns())
	assert.True(t, s.Has("b"))
	assert.False(t, s.Has("c"))
	assert.Equal(t, 2, s.Len())
	assert.Panics(t, func() { s.MustDeclare("a", datasource.StringParameter("a")) })
}
