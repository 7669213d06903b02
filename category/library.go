package category

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	// ErrEmptyShortName indicates a category without a short name.
	ErrEmptyShortName = errors.New("category: short name is empty")

	// ErrDuplicateCategory indicates the short name is already registered.
	ErrDuplicateCategory = errors.New("category: duplicate short name")

	// ErrCategoryNotFound indicates the short name is unknown to the library.
	ErrCategoryNotFound = errors.New("category: not found")
)

// Library is an insertion-ordered set of categories keyed by short name.
// It is not safe for concurrent mutation.
type Library struct {
	order   []*Category
	byShort map[string]*Category
}

// NewLibrary returns an empty Library.
func NewLibrary() *Library {
	return &Library{byShort: make(map[string]*Category)}
}

// Add registers c. It fails for nil or unnamed categories and for short names
// that are already present.
func (l *Library) Add(c *Category) error {
	if c == nil || c.ShortName == "" {
		return ErrEmptyShortName
	}
	if _, ok := l.byShort[c.ShortName]; ok {
		return fmt.Errorf("category: Add(%q): %w", c.ShortName, ErrDuplicateCategory)
	}
	l.byShort[c.ShortName] = c
	l.order = append(l.order, c)

	return nil
}

// Get returns the category registered under shortName.
func (l *Library) Get(shortName string) (*Category, error) {
	c, ok := l.byShort[shortName]
	if !ok {
		return nil, fmt.Errorf("category: Get(%q): %w", shortName, ErrCategoryNotFound)
	}

	return c, nil
}

// All returns the registered categories in insertion order.
func (l *Library) All() []*Category {
	out := make([]*Category, len(l.order))
	copy(out, l.order)

	return out
}

// Len returns the number of registered categories.
func (l *Library) Len() int { return len(l.order) }
