// SPDX-License-Identifier: MIT
// Package: lvreport/hierarchy
//
// level.go: the Level node of the category filter tree.
//
// Contract:
//   • GroupLevel is 0 at the root and grows by one per child level.
//   • Sibling levels never share a category (DuplicateLevelError).
//   • A recursive level (MaxRecursion > 1) may match nested elements of its
//     own category; every other level matches once per path.

package hierarchy

import (
	"github.com/katalvlaran/lvreport/category"
)

// Level is one node of the category filter tree.
//
// A Level is built top-down and is not modified once report generation starts.
// The parent pointer is a back-reference only; a Level owns its children.
type Level struct {
	category   *category.Category
	groupLevel int

	fieldName     string
	footerLabel   string
	footerVisible bool
	allowSkip     bool
	maxRecursion  int

	parent   *Level
	children []*Level
}

// CreateTopLevelCategoryHierarchy returns the root level (GroupLevel 0) for c.
func CreateTopLevelCategoryHierarchy(c *category.Category, opts ...LevelOption) (*Level, error) {
	if c == nil {
		return nil, ErrNilCategory
	}

	return newLevel(c, 0, nil, opts), nil
}

// AddChildCategory appends a child level for c and returns it.
// The child's GroupLevel is one more than l's. Adding a category that is
// already a child of l fails with a *DuplicateLevelError.
func (l *Level) AddChildCategory(c *category.Category, opts ...LevelOption) (*Level, error) {
	if c == nil {
		return nil, ErrNilCategory
	}
	for _, ch := range l.children {
		if ch.category.Equal(c) {
			return nil, &DuplicateLevelError{Category: c.ShortName, GroupLevel: l.groupLevel + 1}
		}
	}

	child := newLevel(c, l.groupLevel+1, l, opts)
	l.children = append(l.children, child)

	return child, nil
}

func newLevel(c *category.Category, depth int, parent *Level, opts []LevelOption) *Level {
	l := &Level{
		category:     c,
		groupLevel:   depth,
		fieldName:    c.ShortName,
		allowSkip:    true,
		maxRecursion: 1,
		parent:       parent,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Category returns the category an element must carry to match this level.
func (l *Level) Category() *category.Category { return l.category }

// GroupLevel returns the depth of the level, 0 for the root.
func (l *Level) GroupLevel() int { return l.groupLevel }

// Depth is an alias of GroupLevel.
func (l *Level) Depth() int { return l.groupLevel }

// FieldName returns the table field for this level.
func (l *Level) FieldName() string { return l.fieldName }

// FooterLabel returns the footer label, empty when none was set.
func (l *Level) FooterLabel() string { return l.footerLabel }

// FooterVisible reports whether the footer should be rendered.
func (l *Level) FooterVisible() bool { return l.footerVisible }

// AllowSkip reports whether the level-skip fallback may bypass this level.
func (l *Level) AllowSkip() bool { return l.allowSkip }

// MaxRecursion returns how many times the level may match along one path of
// the product tree. It is at least 1.
func (l *Level) MaxRecursion() int { return l.maxRecursion }

// IsRecursive reports whether elements of the level's category may nest
// inside each other and still match the level.
func (l *Level) IsRecursive() bool { return l.maxRecursion > 1 }

// Parent returns the parent level, nil for the root.
func (l *Level) Parent() *Level { return l.parent }

// IsRoot reports whether l is the top level.
func (l *Level) IsRoot() bool { return l.parent == nil }

// Child returns the first child level, or nil for a leaf.
func (l *Level) Child() *Level {
	if len(l.children) == 0 {
		return nil
	}

	return l.children[0]
}

// Children returns the child levels in insertion order.
// The slice must not be modified.
func (l *Level) Children() []*Level { return l.children }

// IsLeaf reports whether l has no child levels.
func (l *Level) IsLeaf() bool { return len(l.children) == 0 }

// Walk visits l and its descendants in pre-order. Returning false from fn
// skips the subtree below the visited level.
func (l *Level) Walk(fn func(*Level) bool) {
	if !fn(l) {
		return
	}
	for _, ch := range l.children {
		ch.Walk(fn)
	}
}

// Levels returns l and all descendants in pre-order.
func (l *Level) Levels() []*Level {
	var out []*Level
	l.Walk(func(x *Level) bool {
		out = append(out, x)
		return true
	})

	return out
}
