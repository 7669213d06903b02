package nested_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreport/category"
	"github.com/katalvlaran/lvreport/nested"
)

// fixture builds ed1 { eu2: ed2 { eu3: ed3 }, eu4: ed3 }.
func fixture() (*nested.Definition, map[string]*category.Category) {
	equipment := category.New("Equipment", "equipment")
	battery := category.New("Battery", "battery", equipment)
	cats := map[string]*category.Category{"Equipment": equipment, "Battery": battery}

	ed3 := &nested.Definition{
		ID: "d3", ShortName: "ed3", Name: "Cell",
		Categories: []*category.Category{battery},
		Parameters: []*nested.Parameter{{Type: "mass", Owner: "PWR", Values: []string{"2.5"}}},
	}
	ed2 := &nested.Definition{
		ID: "d2", ShortName: "ed2", Name: "Pack",
		Contained: []*nested.Usage{{ID: "u3", ShortName: "eu3", Name: "cell A", Definition: ed3}},
	}
	ed1 := &nested.Definition{
		ID: "d1", ShortName: "ed1", Name: "Satellite",
		Contained: []*nested.Usage{
			{ID: "u2", ShortName: "eu2", Name: "pack", Definition: ed2},
			{
				ID: "u4", ShortName: "eu4", Name: "spare cell", Definition: ed3,
				Categories: []*category.Category{equipment},
				Overrides:  []*nested.Override{{Type: "mass", Owner: "PWR", Values: []string{"3"}}},
			},
		},
	}

	return ed1, cats
}

func TestFlatten_PreOrder(t *testing.T) {
	root, _ := fixture()

	elements, err := nested.Flatten(root)
	require.NoError(t, err)

	names := make([]string, 0, len(elements))
	for _, e := range elements {
		names = append(names, e.ShortName())
	}
	assert.Equal(t, []string{"ed1", "ed1.eu2", "ed1.eu2.eu3", "ed1.eu4"}, names)
	assert.True(t, elements[0].IsRoot())
	assert.Equal(t, 2, elements[2].Depth())
	assert.Equal(t, "d1/u2/u3", elements[2].Key())
	assert.Equal(t, "d1/u2", elements[2].ParentKey())
	assert.Empty(t, elements[0].ParentKey())
}

func TestFlatten_Errors(t *testing.T) {
	_, err := nested.Flatten(nil)
	assert.ErrorIs(t, err, nested.ErrNilDefinition)

	a := &nested.Definition{ShortName: "a"}
	b := &nested.Definition{ShortName: "b"}
	a.Contained = []*nested.Usage{{ShortName: "ub", Definition: b}}
	b.Contained = []*nested.Usage{{ShortName: "ua", Definition: a}}

	_, err = nested.Flatten(a)
	assert.ErrorIs(t, err, nested.ErrContainmentCycle)
}

func TestElement_Categories(t *testing.T) {
	root, cats := fixture()
	elements, err := nested.Flatten(root)
	require.NoError(t, err)

	cell := elements[2]
	assert.Equal(t, []*category.Category{cats["Battery"]}, cell.Categories(), "definition categories when the usage has none")
	assert.True(t, cell.IsMemberOf("Equipment"), "membership is transitive")

	spare := elements[3]
	assert.Equal(t, []*category.Category{cats["Equipment"]}, spare.Categories(), "usage categories take precedence")
	assert.False(t, spare.IsMemberOf("Battery"))

	assert.Equal(t, "spare cell", spare.Name())
	assert.Equal(t, "Satellite", elements[0].Name())
	assert.Same(t, root, elements[0].Definition())
	assert.Nil(t, elements[0].Usage())
}

func TestElement_Resolve(t *testing.T) {
	root, _ := fixture()
	elements, err := nested.Flatten(root)
	require.NoError(t, err)

	v, src := elements[2].Resolve("mass")
	assert.Equal(t, nested.SourceDefinition, src)
	assert.Equal(t, "2.5", v.First())

	v, src = elements[3].Resolve("mass")
	assert.Equal(t, nested.SourceOverride, src)
	assert.Equal(t, "3", v.First())

	elements[3].Values = []*nested.Value{{Type: "mass", Values: []string{"4", "5"}}}
	v, src = elements[3].Resolve("mass")
	assert.Equal(t, nested.SourceNested, src)
	assert.Equal(t, "4", v.First(), "first value wins")

	_, src = elements[0].Resolve("mass")
	assert.Equal(t, nested.SourceNone, src)
	assert.Equal(t, "none", src.String())
}

func TestIndex_Children(t *testing.T) {
	root, _ := fixture()
	elements, err := nested.Flatten(root)
	require.NoError(t, err)

	// Shuffle the list: children follow list order, not containment order.
	list := []*nested.Element{elements[3], elements[0], elements[2], elements[1]}
	idx := nested.NewIndex(list)

	assert.Same(t, elements[0], idx.Root())
	kids := idx.Children(elements[0])
	require.Len(t, kids, 2)
	assert.Same(t, elements[3], kids[0])
	assert.Same(t, elements[1], kids[1])
	assert.Len(t, idx.Children(elements[2]), 0)

	assert.True(t, idx.Contains(nested.NewElement(root, elements[1].Path...)), "membership is by key")
	assert.False(t, idx.Contains(nested.NewElement(&nested.Definition{ShortName: "other"})))
	assert.Same(t, elements[2], idx.Find("ed1.eu2.eu3"))
	assert.Nil(t, idx.Find("missing"))
	assert.Equal(t, 4, idx.Len())
}

func TestIndex_ValueByPath(t *testing.T) {
	root, _ := fixture()
	elements, err := nested.Flatten(root)
	require.NoError(t, err)
	idx := nested.NewIndex(elements)

	v, err := idx.ValueByPath(`ed1.eu4\mass`)
	require.NoError(t, err)
	assert.Equal(t, "3", v.First())

	v, err = idx.ValueByPath(`ed1.eu2.eu3\mass\nominal\launch`)
	require.NoError(t, err)
	assert.Equal(t, "2.5", v.First())

	tests := []struct {
		name string
		path string
		want error
	}{
		{"no parameter segment", "ed1.eu4", nested.ErrBadPath},
		{"too many segments", `a\b\c\d\e`, nested.ErrBadPath},
		{"empty element", `\mass`, nested.ErrBadPath},
		{"unknown element", `ed9\mass`, nested.ErrElementNotFound},
		{"unknown parameter", `ed1\power`, nested.ErrParameterNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := idx.ValueByPath(tc.path)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFirst_Empty(t *testing.T) {
	p := &nested.Parameter{Type: "mass"}
	assert.Equal(t, nested.NoValue, p.First())
}
