// Package nested: ordered element index and value paths.

package nested

import (
	"fmt"
	"strings"
)

// pathSep separates the segments of a value path.
const pathSep = `\`

// Index is a read-only view over a flat element list.
//
// The list order is kept: Children returns elements in the order they appear
// in the list, so building twice from the same list gives the same tree.
type Index struct {
	elements []*Element
	byKey    map[string]*Element
	byParent map[string][]*Element
	byShort  map[string]*Element
}

// NewIndex indexes elements. Nil entries are ignored. When two entries share
// a key the first one wins.
func NewIndex(elements []*Element) *Index {
	idx := &Index{
		elements: make([]*Element, 0, len(elements)),
		byKey:    make(map[string]*Element, len(elements)),
		byParent: make(map[string][]*Element),
		byShort:  make(map[string]*Element, len(elements)),
	}
	for _, e := range elements {
		if e == nil {
			continue
		}
		k := e.Key()
		if _, dup := idx.byKey[k]; dup {
			continue
		}
		idx.elements = append(idx.elements, e)
		idx.byKey[k] = e
		if !e.IsRoot() {
			pk := e.ParentKey()
			idx.byParent[pk] = append(idx.byParent[pk], e)
		}
		if _, ok := idx.byShort[e.ShortName()]; !ok {
			idx.byShort[e.ShortName()] = e
		}
	}

	return idx
}

// Len returns the number of indexed elements.
func (x *Index) Len() int { return len(x.elements) }

// Elements returns the indexed elements in list order.
func (x *Index) Elements() []*Element { return x.elements }

// Contains reports whether an element with e's key is indexed.
func (x *Index) Contains(e *Element) bool {
	if e == nil {
		return false
	}
	_, ok := x.byKey[e.Key()]

	return ok
}

// Root returns the first root element of the list, or nil.
func (x *Index) Root() *Element {
	for _, e := range x.elements {
		if e.IsRoot() {
			return e
		}
	}

	return nil
}

// Children returns the elements directly contained by e, in list order.
func (x *Index) Children(e *Element) []*Element {
	if e == nil {
		return nil
	}

	return x.byParent[e.Key()]
}

// Find returns the element with the given qualified short name, or nil.
func (x *Index) Find(shortName string) *Element {
	return x.byShort[shortName]
}

// ValueByPath resolves a value path of the form
//
//	<element short name>\<parameter type>[\<state>[\<option>]]
//
// e.g. `ed1.eu4\mass`. State and option segments are accepted and ignored;
// the first value of the set is the value.
func (x *Index) ValueByPath(path string) (*Value, error) {
	segs := strings.Split(path, pathSep)
	if len(segs) < 2 || len(segs) > 4 || segs[0] == "" || segs[1] == "" {
		return nil, fmt.Errorf("nested: ValueByPath(%q): %w", path, ErrBadPath)
	}

	e := x.Find(segs[0])
	if e == nil {
		return nil, fmt.Errorf("nested: ValueByPath(%q): %w", path, ErrElementNotFound)
	}
	v, src := e.Resolve(segs[1])
	if src == SourceNone {
		return nil, fmt.Errorf("nested: ValueByPath(%q): %w", path, ErrParameterNotFound)
	}

	return v, nil
}
