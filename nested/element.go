package nested

import (
	"strings"

	"github.com/katalvlaran/lvreport/category"
)

// keySep separates usage identifiers inside an Element key.
const keySep = "/"

// Element is one positioned occurrence inside a product tree.
//
// Root is the top definition of the tree; Path is the chain of usages from
// Root down to the occurrence. Values holds parameter values the nested
// element engine already resolved for this occurrence.
type Element struct {
	Root   *Definition
	Path   []*Usage
	Values []*Value
}

// NewElement returns an Element for the given root and usage path.
func NewElement(root *Definition, path ...*Usage) *Element {
	return &Element{Root: root, Path: path}
}

// IsRoot reports whether e is the root definition itself.
func (e *Element) IsRoot() bool { return len(e.Path) == 0 }

// Depth returns the number of usages between the root and e.
func (e *Element) Depth() int { return len(e.Path) }

// Usage returns the last usage of the path, nil for the root element.
func (e *Element) Usage() *Usage {
	if len(e.Path) == 0 {
		return nil
	}

	return e.Path[len(e.Path)-1]
}

// Definition returns the definition instantiated at this position.
func (e *Element) Definition() *Definition {
	if u := e.Usage(); u != nil {
		return u.Definition
	}

	return e.Root
}

// Categories returns the categories held directly by the occurrence.
// Usage categories take precedence; when the usage has none, or e is the
// root, the definition's categories apply.
func (e *Element) Categories() []*category.Category {
	if u := e.Usage(); u != nil && len(u.Categories) > 0 {
		return u.Categories
	}
	if d := e.Definition(); d != nil {
		return d.Categories
	}

	return nil
}

// IsMemberOf reports whether any held category is, transitively, shortName.
func (e *Element) IsMemberOf(shortName string) bool {
	return category.AnyIsA(e.Categories(), shortName)
}

// ShortName returns the fully qualified short name, e.g. "ed1.eu4.eu5".
func (e *Element) ShortName() string {
	parts := make([]string, 0, len(e.Path)+1)
	if e.Root != nil {
		parts = append(parts, e.Root.ShortName)
	}
	for _, u := range e.Path {
		parts = append(parts, u.ShortName)
	}

	return strings.Join(parts, ".")
}

// Name returns the usage name, or the definition name for the root.
func (e *Element) Name() string {
	if u := e.Usage(); u != nil {
		return u.Name
	}
	if e.Root != nil {
		return e.Root.Name
	}

	return ""
}

// Key returns a stable identifier of the position in the tree.
func (e *Element) Key() string { return pathKey(e.Root, e.Path) }

// ParentKey returns the Key of the structural parent. It is empty for the root.
func (e *Element) ParentKey() string {
	if len(e.Path) == 0 {
		return ""
	}

	return pathKey(e.Root, e.Path[:len(e.Path)-1])
}

// Value returns the pre-resolved value of parameter type t, or nil.
func (e *Element) Value(t string) *Value {
	for _, v := range e.Values {
		if v.Type == t {
			return v
		}
	}

	return nil
}

func pathKey(root *Definition, path []*Usage) string {
	var sb strings.Builder
	if root != nil {
		sb.WriteString(identity(root.ID, root.ShortName))
	}
	for _, u := range path {
		sb.WriteString(keySep)
		sb.WriteString(identity(u.ID, u.ShortName))
	}

	return sb.String()
}

func identity(id, shortName string) string {
	if id != "" {
		return id
	}

	return shortName
}
