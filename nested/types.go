package nested

import (
	"github.com/katalvlaran/lvreport/category"
)

// NoValue is the marker a value set holds when nothing has been entered.
const NoValue = "-"

// Definition is an element definition: a reusable building block.
type Definition struct {
	ID         string
	ShortName  string
	Name       string
	Categories []*category.Category

	// Parameters are the definition's own parameters.
	Parameters []*Parameter

	// Contained are the usages placed inside this definition, in order.
	Contained []*Usage
}

// Usage is an element usage: one placement of a Definition inside another.
type Usage struct {
	ID         string
	ShortName  string
	Name       string
	Definition *Definition
	Categories []*category.Category

	// Overrides replace definition parameter values for this usage only.
	Overrides []*Override
}

// Parameter is a definition parameter. Type is the parameter type short name.
type Parameter struct {
	Type   string
	Owner  string
	Values []string
}

// First returns the first value of the value set, NoValue when empty.
func (p *Parameter) First() string { return first(p.Values) }

// Override is a usage parameter override. Type is the short name of the
// overridden parameter's type.
type Override struct {
	Type   string
	Owner  string
	Values []string
}

// First returns the first value of the value set, NoValue when empty.
func (o *Override) First() string { return first(o.Values) }

// Value is a parameter value already resolved for one Element.
type Value struct {
	Type   string
	Owner  string
	Values []string
}

// First returns the first value of the value set, NoValue when empty.
func (v *Value) First() string { return first(v.Values) }

func first(values []string) string {
	if len(values) == 0 {
		return NoValue
	}

	return values[0]
}
