// SPDX-License-Identifier: MIT
// Package: lvreport/hierarchy
//
// options.go: functional options for Level construction.
//
// Contract:
//   • Options are functional (type LevelOption func(*Level)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Later options override earlier ones.

package hierarchy

// LevelOption customizes a Level while it is created.
type LevelOption func(*Level)

// WithFieldName sets the table field the level's element names are written to.
// Panics on an empty name; omit the option to keep the category short name.
func WithFieldName(name string) LevelOption {
	if name == "" {
		panic("hierarchy: WithFieldName(\"\")")
	}
	return func(l *Level) {
		l.fieldName = name
	}
}

// WithFooter attaches a footer label and its visibility to the level.
func WithFooter(label string, visible bool) LevelOption {
	return func(l *Level) {
		l.footerLabel = label
		l.footerVisible = visible
	}
}

// WithDenySkip forbids the level-skip fallback for elements searched at this
// level: an element that misses this level's category is never matched
// against the next level instead.
func WithDenySkip() LevelOption {
	return func(l *Level) {
		l.allowSkip = false
	}
}

// WithMaxRecursion lets the level match up to n nested elements of its
// category on one path, e.g. equipment inside equipment. The default is 1.
// Panics when n < 1.
func WithMaxRecursion(n int) LevelOption {
	if n < 1 {
		panic("hierarchy: WithMaxRecursion(n < 1)")
	}
	return func(l *Level) {
		l.maxRecursion = n
	}
}
