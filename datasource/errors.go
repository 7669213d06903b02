package datasource

import (
	"errors"
	"fmt"
)

var (
	// ErrNilHierarchy indicates Generate was called without a top level.
	ErrNilHierarchy = errors.New("datasource: category hierarchy is nil")

	// ErrNilShape indicates the Generator has no Shape.
	ErrNilShape = errors.New("datasource: shape is nil")

	// ErrMissingRootElement indicates the root element is absent from the list.
	ErrMissingRootElement = errors.New("datasource: root element not in element list")

	// ErrUnknownColumn indicates a column id the Shape never declared.
	ErrUnknownColumn = errors.New("datasource: unknown column")

	// ErrNoSuchParameter indicates the element carries no parameter of that type.
	ErrNoSuchParameter = errors.New("datasource: no such parameter")

	// ErrNoValue indicates the value set holds the "no value" marker.
	ErrNoValue = errors.New("datasource: no value")

	// ErrParse indicates a raw value that could not be parsed.
	ErrParse = errors.New("datasource: parse error")

	// ErrCircularColumnDependency indicates a column read itself through a chain.
	ErrCircularColumnDependency = errors.New("datasource: circular column dependency")

	// ErrColumnType indicates a column value of a different type than requested.
	ErrColumnType = errors.New("datasource: column value type mismatch")

	// ErrEmptyColumnID indicates Declare was called with an empty id.
	ErrEmptyColumnID = errors.New("datasource: column id is empty")

	// ErrDuplicateColumn indicates the id is already declared.
	ErrDuplicateColumn = errors.New("datasource: duplicate column")

	// ErrNilFactory indicates Declare was called with a nil factory.
	ErrNilFactory = errors.New("datasource: column factory is nil")
)

// ParseError reports a raw parameter value that did not parse.
//
// errors.Is matches both ErrParse and the underlying parser error.
type ParseError struct {
	// Raw is the value as found in the value set.
	Raw string

	// Target is the parameter type short name.
	Target string

	// Type is the Go type the value was parsed into, e.g. "float64".
	Type string

	// Err is the parser error.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("datasource: parameter %q: cannot parse %q as %s: %v", e.Target, e.Raw, e.Type, e.Err)
}

// Unwrap exposes ErrParse and the parser error.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// CellError attributes a column error to the row it occurred on.
type CellError struct {
	// Row is the qualified name of the row element.
	Row string

	// Column is the column id.
	Column string

	// Err is the column error.
	Err error
}

// Error implements error.
func (e *CellError) Error() string {
	return fmt.Sprintf("datasource: row %s, column %q: %v", e.Row, e.Column, e.Err)
}

// Unwrap returns the column error.
func (e *CellError) Unwrap() error { return e.Err }
