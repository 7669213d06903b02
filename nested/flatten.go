package nested

import "fmt"

// Flatten expands root into its element list in pre-order: the root element
// first, then each contained usage followed by its own expansion.
//
// A definition reached again while it is still being expanded is a cycle and
// fails with ErrContainmentCycle. The same definition used from two separate
// branches is fine.
func Flatten(root *Definition) ([]*Element, error) {
	if root == nil {
		return nil, ErrNilDefinition
	}

	out := []*Element{NewElement(root)}
	onPath := map[*Definition]bool{root: true}
	if err := flatten(root, root, nil, onPath, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func flatten(root, def *Definition, path []*Usage, onPath map[*Definition]bool, out *[]*Element) error {
	for _, u := range def.Contained {
		// 1. Own the path slice so siblings never share a backing array
		p := make([]*Usage, len(path)+1)
		copy(p, path)
		p[len(path)] = u
		e := NewElement(root, p...)
		*out = append(*out, e)

		if u.Definition == nil {
			continue
		}

		// 2. Reject re-entry of a definition that is still open
		if onPath[u.Definition] {
			return fmt.Errorf("nested: Flatten %s: definition %q: %w",
				e.ShortName(), u.Definition.ShortName, ErrContainmentCycle)
		}

		// 3. Descend, then release the definition for sibling branches
		onPath[u.Definition] = true
		if err := flatten(root, u.Definition, p, onPath, out); err != nil {
			return err
		}
		delete(onPath, u.Definition)
	}

	return nil
}
