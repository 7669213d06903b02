// Package config: compilation of a validated Document.
//
// Compile builds, in order, the category library, the filter tree, the column
// shape, the product definitions, the flat element list and its index, then
// pins nested values onto elements by qualified short name.

package config

import (
	"fmt"

	"github.com/katalvlaran/lvreport/category"
	"github.com/katalvlaran/lvreport/datasource"
	"github.com/katalvlaran/lvreport/hierarchy"
	"github.com/katalvlaran/lvreport/nested"
)

// Compiled is a Document turned into generator inputs.
type Compiled struct {
	Library   *category.Library
	Hierarchy *hierarchy.Level
	Shape     *datasource.Shape
	Root      *nested.Definition
	Elements  []*nested.Element
	Index     *nested.Index
}

// Compile validates d and builds the library, filter tree, shape and the
// flattened product tree.
func (d *Document) Compile() (*Compiled, error) {
	// 1. Reject invalid documents up front
	if err := d.Validate(); err != nil {
		return nil, err
	}

	// 2. Build each part; any failure aborts
	lib, err := d.library()
	if err != nil {
		return nil, err
	}
	top, err := d.hierarchy(lib)
	if err != nil {
		return nil, err
	}
	shape, err := d.shape()
	if err != nil {
		return nil, err
	}
	root, err := d.product(lib)
	if err != nil {
		return nil, err
	}
	elements, err := nested.Flatten(root)
	if err != nil {
		return nil, fmt.Errorf("config: product: %w", err)
	}

	// 3. Pin nested values on their elements
	idx := nested.NewIndex(elements)
	for _, v := range d.Product.Values {
		e := idx.Find(v.Element)
		if e == nil {
			return nil, fmt.Errorf("%w: value %q: unknown element %q", ErrInvalidDocument, v.Type, v.Element)
		}
		e.Values = append(e.Values, &nested.Value{Type: v.Type, Owner: v.Owner, Values: v.Values})
	}

	return &Compiled{
		Library:   lib,
		Hierarchy: top,
		Shape:     shape,
		Root:      root,
		Elements:  elements,
		Index:     idx,
	}, nil
}

func (d *Document) library() (*category.Library, error) {
	lib := category.NewLibrary()
	for _, c := range d.Categories {
		if err := lib.Add(category.New(c.ShortName, c.Name)); err != nil {
			return nil, fmt.Errorf("config: categories: %w", err)
		}
	}
	// Supers are linked once every category exists, so order does not matter.
	for _, c := range d.Categories {
		cat, _ := lib.Get(c.ShortName)
		for _, s := range c.Super {
			sup, err := lib.Get(s)
			if err != nil {
				return nil, fmt.Errorf("config: category %q: %w", c.ShortName, err)
			}
			cat.SuperCategories = append(cat.SuperCategories, sup)
		}
	}

	return lib, nil
}

func (d *Document) hierarchy(lib *category.Library) (*hierarchy.Level, error) {
	cat, err := lib.Get(d.Hierarchy.Category)
	if err != nil {
		return nil, fmt.Errorf("config: hierarchy: %w", err)
	}
	top, err := hierarchy.CreateTopLevelCategoryHierarchy(cat, levelOptions(d.Hierarchy)...)
	if err != nil {
		return nil, fmt.Errorf("config: hierarchy: %w", err)
	}
	if err := addChildren(lib, top, d.Hierarchy.Children); err != nil {
		return nil, err
	}

	return top, nil
}

func addChildren(lib *category.Library, parent *hierarchy.Level, specs []LevelSpec) error {
	for _, s := range specs {
		cat, err := lib.Get(s.Category)
		if err != nil {
			return fmt.Errorf("config: hierarchy: %w", err)
		}
		child, err := parent.AddChildCategory(cat, levelOptions(s)...)
		if err != nil {
			return fmt.Errorf("config: hierarchy: %w", err)
		}
		if err := addChildren(lib, child, s.Children); err != nil {
			return err
		}
	}

	return nil
}

func levelOptions(s LevelSpec) []hierarchy.LevelOption {
	var opts []hierarchy.LevelOption
	if s.Field != "" {
		opts = append(opts, hierarchy.WithFieldName(s.Field))
	}
	if s.Footer != nil {
		opts = append(opts, hierarchy.WithFooter(s.Footer.Label, s.Footer.Visible))
	}
	if s.DenySkip {
		opts = append(opts, hierarchy.WithDenySkip())
	}
	if s.MaxRecursion > 1 {
		opts = append(opts, hierarchy.WithMaxRecursion(s.MaxRecursion))
	}

	return opts
}

func (d *Document) shape() (*datasource.Shape, error) {
	shape := datasource.NewShape()
	for _, c := range d.Columns {
		factory, err := columnFactory(c)
		if err != nil {
			return nil, err
		}
		if err := shape.Declare(c.ID, factory); err != nil {
			return nil, fmt.Errorf("config: columns: %w", err)
		}
	}

	return shape, nil
}

func columnFactory(c ColumnSpec) (datasource.ColumnFactory, error) {
	switch c.Kind {
	case KindParameter:
		switch c.Type {
		case "", TypeFloat:
			return datasource.FloatParameter(c.Parameter), nil
		case TypeInt:
			return datasource.IntParameter(c.Parameter), nil
		case TypeBool:
			return datasource.BoolParameter(c.Parameter), nil
		case TypeString:
			return datasource.StringParameter(c.Parameter), nil
		}
	case KindCategory:
		return datasource.CategoryColumn(c.Category), nil
	case KindRollup:
		op, err := ParseOp(c.Op)
		if err != nil {
			return nil, err
		}
		return datasource.RollupColumn(c.ID, c.Of, op), nil
	}

	return nil, fmt.Errorf("%w: column %q: kind %q type %q", ErrInvalidDocument, c.ID, c.Kind, c.Type)
}

// ParseOp maps "sum", "max", "min" and "count" to a RollupOp.
func ParseOp(s string) (datasource.RollupOp, error) {
	switch s {
	case "sum":
		return datasource.Sum, nil
	case "max":
		return datasource.Max, nil
	case "min":
		return datasource.Min, nil
	case "count":
		return datasource.Count, nil
	}

	return 0, fmt.Errorf("%w: unknown rollup op %q", ErrInvalidDocument, s)
}

func (d *Document) product(lib *category.Library) (*nested.Definition, error) {
	// 1. Create every definition so usages can point forward
	defs := make(map[string]*nested.Definition, len(d.Product.Definitions))
	for _, s := range d.Product.Definitions {
		cats, err := lookup(lib, s.Categories)
		if err != nil {
			return nil, fmt.Errorf("config: definition %q: %w", s.ShortName, err)
		}
		def := &nested.Definition{
			ID:         s.ID,
			ShortName:  s.ShortName,
			Name:       orDefault(s.Name, s.ShortName),
			Categories: cats,
		}
		for _, p := range s.Parameters {
			def.Parameters = append(def.Parameters, &nested.Parameter{Type: p.Type, Owner: p.Owner, Values: p.Values})
		}
		defs[s.ShortName] = def
	}

	// 2. Link usages
	for _, s := range d.Product.Definitions {
		owner := defs[s.ShortName]
		for _, us := range s.Usages {
			cats, err := lookup(lib, us.Categories)
			if err != nil {
				return nil, fmt.Errorf("config: usage %s.%s: %w", s.ShortName, us.ShortName, err)
			}
			u := &nested.Usage{
				ID:         us.ID,
				ShortName:  us.ShortName,
				Name:       orDefault(us.Name, us.ShortName),
				Definition: defs[us.Definition],
				Categories: cats,
			}
			for _, o := range us.Overrides {
				u.Overrides = append(u.Overrides, &nested.Override{Type: o.Type, Owner: o.Owner, Values: o.Values})
			}
			owner.Contained = append(owner.Contained, u)
		}
	}

	return defs[d.Product.Root], nil
}

func lookup(lib *category.Library, names []string) ([]*category.Category, error) {
	out := make([]*category.Category, 0, len(names))
	for _, n := range names {
		c, err := lib.Get(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}

	return s
}
