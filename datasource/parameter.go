// Package datasource: parameter columns and value parsers.

package datasource

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvreport/nested"
)

// Parameter is the column bound to one parameter type.
//
// The value is looked up when the node is created: a nested value first,
// then a usage override, then a definition parameter. Only the first value
// of the set is used.
type Parameter[T any] struct {
	shortName string
	parse     func(string) (T, error)

	value  *nested.Value
	source nested.Source
}

// ParameterColumn returns a factory for parameter type shortName, parsed with
// parse. It panics on an empty short name or a nil parser.
func ParameterColumn[T any](shortName string, parse func(string) (T, error)) ColumnFactory {
	if shortName == "" {
		panic("datasource: ParameterColumn short name must not be empty")
	}
	if parse == nil {
		panic("datasource: ParameterColumn parser must not be nil")
	}

	return func() Column {
		return &Parameter[T]{shortName: shortName, parse: parse}
	}
}

// FloatParameter binds a float64 parameter.
func FloatParameter(shortName string) ColumnFactory { return ParameterColumn(shortName, ParseFloat) }

// IntParameter binds an int64 parameter.
func IntParameter(shortName string) ColumnFactory { return ParameterColumn(shortName, ParseInt) }

// BoolParameter binds a bool parameter.
func BoolParameter(shortName string) ColumnFactory { return ParameterColumn(shortName, ParseBool) }

// StringParameter binds a parameter as its raw text.
func StringParameter(shortName string) ColumnFactory { return ParameterColumn(shortName, ParseString) }

// Initialize resolves the parameter on n's element.
func (p *Parameter[T]) Initialize(n *Node) {
	p.value, p.source = n.Element().Resolve(p.shortName)
}

// Compute parses the resolved raw value.
func (p *Parameter[T]) Compute(n *Node) (any, error) {
	if p.source == nested.SourceNone {
		return nil, fmt.Errorf("datasource: %s: parameter %q: %w", n.Name(), p.shortName, ErrNoSuchParameter)
	}

	raw := p.value.First()
	v, err := p.parse(raw)
	switch {
	case errors.Is(err, ErrNoValue):
		return nil, fmt.Errorf("datasource: %s: parameter %q: %w", n.Name(), p.shortName, ErrNoValue)
	case err != nil:
		return nil, &ParseError{Raw: raw, Target: p.shortName, Type: reflect.TypeFor[T]().String(), Err: err}
	}

	return v, nil
}

// ShortName returns the bound parameter type.
func (p *Parameter[T]) ShortName() string { return p.shortName }

// Resolved reports whether the element carries the parameter.
func (p *Parameter[T]) Resolved() bool { return p.source != nested.SourceNone }

// Source returns where the value was found.
func (p *Parameter[T]) Source() nested.Source { return p.source }

// Owner returns the owner of the resolved value, empty when unresolved.
func (p *Parameter[T]) Owner() string {
	if p.value == nil {
		return ""
	}

	return p.value.Owner
}

// Raw returns the unparsed first value, empty when unresolved.
func (p *Parameter[T]) Raw() string {
	if p.value == nil {
		return ""
	}

	return p.value.First()
}

// ParseFloat parses plain decimal text with the invariant '.' separator and
// an optional exponent. Hex floats, digit separators, Inf and NaN are
// rejected with strconv.ErrSyntax.
func ParseFloat(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == nested.NoValue {
		return 0, ErrNoValue
	}
	if raw == "" || strings.IndexFunc(raw, notDecimal) >= 0 {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: raw, Err: strconv.ErrSyntax}
	}

	return strconv.ParseFloat(raw, 64)
}

func notDecimal(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return false
	case r == '.', r == '+', r == '-', r == 'e', r == 'E':
		return false
	}

	return true
}

// ParseInt parses a base 10 integer.
func ParseInt(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == nested.NoValue {
		return 0, ErrNoValue
	}

	return strconv.ParseInt(raw, 10, 64)
}

// ParseBool accepts the strconv.ParseBool forms.
func ParseBool(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == nested.NoValue {
		return false, ErrNoValue
	}

	return strconv.ParseBool(raw)
}

// ParseString returns raw unchanged.
func ParseString(raw string) (string, error) { return raw, nil }
