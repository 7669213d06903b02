package nested

import "errors"

var (
	// ErrContainmentCycle indicates a definition contains itself, directly or
	// through its usages.
	ErrContainmentCycle = errors.New("nested: containment cycle")

	// ErrNilDefinition indicates Flatten was called without a root definition.
	ErrNilDefinition = errors.New("nested: root definition is nil")

	// ErrBadPath indicates a malformed value path.
	ErrBadPath = errors.New("nested: malformed value path")

	// ErrElementNotFound indicates no element carries the requested short name.
	ErrElementNotFound = errors.New("nested: element not found")

	// ErrParameterNotFound indicates the element has no such parameter type.
	ErrParameterNotFound = errors.New("nested: parameter not found")
)
