// SPDX-License-Identifier: MIT
// Package: lvreport/hierarchy
//
// builder.go: fluent construction of linear filter chains by short name.

package hierarchy

import (
	"fmt"

	"github.com/katalvlaran/lvreport/category"
)

// Builder assembles a linear filter chain from category short names.
//
//	top, err := hierarchy.NewBuilder(lib).
//		AddLevel("Project").
//		AddLevel("Module", hierarchy.WithFieldName("module")).
//		Build()
//
// The first error encountered is kept and returned by Build; later calls are
// no-ops.
type Builder struct {
	lib     *category.Library
	top     *Level
	current *Level
	err     error
}

// NewBuilder returns a Builder resolving short names against lib.
func NewBuilder(lib *category.Library) *Builder {
	return &Builder{lib: lib}
}

// AddLevel appends a level for shortName below the last added level.
func (b *Builder) AddLevel(shortName string, opts ...LevelOption) *Builder {
	if b.err != nil {
		return b
	}

	// 1. Resolve the category in the library
	c, err := b.lib.Get(shortName)
	if err != nil {
		b.err = fmt.Errorf("hierarchy: AddLevel: %w", err)
		return b
	}

	// 2. First level becomes the root
	if b.current == nil {
		b.top, _ = CreateTopLevelCategoryHierarchy(c, opts...)
		b.current = b.top
		return b
	}

	// 3. Otherwise chain below the current level
	next, err := b.current.AddChildCategory(c, opts...)
	if err != nil {
		b.err = err
		return b
	}
	b.current = next

	return b
}

// AddRecursiveLevel is AddLevel for a level that may match up to
// maxRecursion nested elements of its category. It panics when
// maxRecursion < 1.
func (b *Builder) AddRecursiveLevel(shortName string, maxRecursion int, opts ...LevelOption) *Builder {
	return b.AddLevel(shortName, append([]LevelOption{WithMaxRecursion(maxRecursion)}, opts...)...)
}

// Build returns the root level of the chain.
func (b *Builder) Build() (*Level, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.top == nil {
		return nil, ErrEmptyHierarchy
	}

	return b.top, nil
}
