// Package category: Category and transitive membership.

package category

// Category classifies element definitions and usages.
//
// SuperCategories lists the direct parents in the classification; the chain
// is walked transitively by IsA and Closure. A Category is treated as
// immutable while a report is built.
type Category struct {
	// ShortName is the unique, machine-friendly name (e.g. "Equipment").
	ShortName string

	// Name is the human-readable label.
	Name string

	// SuperCategories are the direct super-categories.
	SuperCategories []*Category
}

// New returns a Category with the given short name, name and super-categories.
func New(shortName, name string, supers ...*Category) *Category {
	return &Category{
		ShortName:       shortName,
		Name:            name,
		SuperCategories: supers,
	}
}

// Equal reports whether c and other denote the same category.
// Nil categories are equal only to nil.
func (c *Category) Equal(other *Category) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c == other || c.ShortName == other.ShortName
}

// String returns the short name.
func (c *Category) String() string {
	if c == nil {
		return "<nil>"
	}

	return c.ShortName
}

// IsA reports whether c, or any category reachable through its super-category
// chain, has the given short name.
func (c *Category) IsA(shortName string) bool {
	for _, cc := range c.Closure() {
		if cc.ShortName == shortName {
			return true
		}
	}

	return false
}

// Closure returns c followed by every transitive super-category in breadth
// first order. Each category appears once, so a cyclic chain terminates.
func (c *Category) Closure() []*Category {
	if c == nil {
		return nil
	}

	// 1. Seed the queue with c itself
	out := []*Category{c}
	seen := map[string]struct{}{c.ShortName: {}}

	// 2. Expand level by level; out doubles as the BFS queue
	for i := 0; i < len(out); i++ {
		for _, sup := range out[i].SuperCategories {
			if sup == nil {
				continue
			}
			if _, ok := seen[sup.ShortName]; ok {
				continue
			}
			seen[sup.ShortName] = struct{}{}
			out = append(out, sup)
		}
	}

	return out
}

// Contains reports whether cats holds a category equal to target.
// Only direct membership is checked; super-categories are not expanded.
func Contains(cats []*Category, target *Category) bool {
	for _, c := range cats {
		if c.Equal(target) {
			return true
		}
	}

	return false
}

// AnyIsA reports whether any category in cats IsA shortName.
func AnyIsA(cats []*Category, shortName string) bool {
	for _, c := range cats {
		if c.IsA(shortName) {
			return true
		}
	}

	return false
}
