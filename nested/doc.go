// Package nested describes positioned occurrences of element definitions and
// usages inside a product tree, in the flat form handed to report generation.
//
// What:
//
//   - Definition, Usage, Parameter, Override: the product model an Element
//     refers to. A Definition contains Usages; each Usage points at the
//     Definition it instantiates and may override that definition's parameters.
//   - Value: a parameter value already resolved for one Element.
//   - Element: the root Definition plus the ordered usage Path leading to the
//     occurrence. The root element has an empty path.
//   - Index: the flat element list with stable, order-preserving child lookup.
//   - Flatten: expands a root Definition into its pre-order element list.
//
// Naming:
//
//	ShortName of an Element is fully qualified: the root definition short
//	name followed by each usage short name, joined with ".":
//
//	  ed1            root
//	  ed1.eu4        usage eu4 in ed1
//	  ed1.eu4.eu5    usage eu5 in the definition of eu4
//
// Value sets:
//
//	Parameters carry a value set as a slice. Option- and state-dependent
//	values are not modelled; the first value is the value (First).
//
// Errors:
//
//   - ErrNilDefinition      Flatten called with a nil root.
//   - ErrContainmentCycle   Flatten met a definition already on the path.
//   - ErrBadPath            malformed ValueByPath path.
//   - ErrElementNotFound    ValueByPath element short name unknown.
//   - ErrParameterNotFound  ValueByPath parameter type not on the element.
package nested
