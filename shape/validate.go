package shape

import (
	"fmt"
	"strings"
)

// reservedChars cannot appear in a wire name: they are selector syntax.
const reservedChars = "/(),"

// Validate checks that s can be synthesized: no nil nodes, known kinds,
// well-formed wire names, Flatten only over composites, and no node that
// reaches itself.
func Validate(s *Shape) error {
	v := validator{onStack: make(map[*Shape]bool)}
	return v.validate(s, "")
}

// ValidateName reports whether name can be used as a wire name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}

	if i := strings.IndexAny(name, reservedChars); i >= 0 {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, name[i])
	}

	return nil
}

type validator struct {
	onStack map[*Shape]bool
}

func (v *validator) validate(s *Shape, path string) error {
	if s == nil {
		return &SchemaError{Path: path, Err: ErrNilShape}
	}

	if v.onStack[s] {
		return &SchemaError{Path: path, Err: ErrCycle}
	}

	v.onStack[s] = true
	defer delete(v.onStack, s)

	switch s.Kind {
	case KindLeaf, KindMap:
		return nil

	case KindOptional, KindCollection:
		return v.validate(s.Elem, path)

	case KindFlatten:
		if inner := s.Elem.Unwrap(); inner != nil && inner.Kind != KindComposite {
			return &SchemaError{Path: path, Err: ErrFlattenNotComposite}
		}

		return v.validate(s.Elem, path)

	case KindComposite:
		for _, f := range s.Fields {
			childPath := MountPath(path, f)

			if !f.Shape.IsFlatten() {
				if err := ValidateName(f.WireName); err != nil {
					return &SchemaError{Path: childPath, Err: err}
				}
			}

			if err := v.validate(f.Shape, childPath); err != nil {
				return err
			}
		}

		return nil

	default:
		return &SchemaError{Path: path, Err: fmt.Errorf("%w: %s", ErrInvalidKind, s.Kind)}
	}
}
