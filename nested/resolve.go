package nested

// Source tells where a resolved parameter value came from.
type Source int

const (
	// SourceNone means the parameter type is not present on the element.
	SourceNone Source = iota
	// SourceNested is a value pre-resolved by the nested element engine.
	SourceNested
	// SourceOverride is a parameter override on the element's usage.
	SourceOverride
	// SourceDefinition is a parameter of the element's definition.
	SourceDefinition
)

// String returns a lower-case label for s.
func (s Source) String() string {
	switch s {
	case SourceNested:
		return "nested"
	case SourceOverride:
		return "override"
	case SourceDefinition:
		return "definition"
	default:
		return "none"
	}
}

// Resolve looks up parameter type t on e. The nested values are consulted
// first, then the usage overrides, then the definition parameters; the first
// hit wins. The returned Value is nil when Source is SourceNone.
func (e *Element) Resolve(t string) (*Value, Source) {
	if v := e.Value(t); v != nil {
		return v, SourceNested
	}
	if u := e.Usage(); u != nil {
		for _, o := range u.Overrides {
			if o.Type == t {
				return &Value{Type: o.Type, Owner: o.Owner, Values: o.Values}, SourceOverride
			}
		}
	}
	if d := e.Definition(); d != nil {
		for _, p := range d.Parameters {
			if p.Type == t {
				return &Value{Type: p.Type, Owner: p.Owner, Values: p.Values}, SourceDefinition
			}
		}
	}

	return nil, SourceNone
}
