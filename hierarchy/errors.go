// SPDX-License-Identifier: MIT
// Package: lvreport/hierarchy
//
// errors.go: sentinel errors for filter tree construction.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX).
//   • DuplicateLevelError carries the offending category and depth and
//     unwraps to ErrDuplicateLevel.
//   • Option constructors (WithX) panic on meaningless input; construction
//     methods return errors.

package hierarchy

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCategory indicates a nil *category.Category was given to a constructor.
	ErrNilCategory = errors.New("hierarchy: category is nil")

	// ErrDuplicateLevel indicates the category is already a child of the same parent.
	ErrDuplicateLevel = errors.New("hierarchy: duplicate level")

	// ErrEmptyHierarchy indicates Builder.Build was called before any AddLevel.
	ErrEmptyHierarchy = errors.New("hierarchy: at least one level is required")
)

// DuplicateLevelError reports a category added twice below the same parent.
type DuplicateLevelError struct {
	// Category is the short name of the rejected category.
	Category string

	// GroupLevel is the depth the duplicate would have occupied.
	GroupLevel int
}

// Error implements error.
func (e *DuplicateLevelError) Error() string {
	return fmt.Sprintf("hierarchy: category %q already present at group level %d", e.Category, e.GroupLevel)
}

// Unwrap exposes ErrDuplicateLevel to errors.Is.
func (e *DuplicateLevelError) Unwrap() error { return ErrDuplicateLevel }
