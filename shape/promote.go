package shape

import "fmt"

// promoted is a wire name visible in a composite and how many Flatten
// levels it sits below it.
type promoted struct {
	name  string
	depth int
}

// Promote resolves wire names that fields spliced in by Flatten share with
// their parent, the way encoding/json resolves embedded struct fields: the
// shallowest field wins and deeper ones are dropped. Two fields with the same
// name at the same depth are an ErrDuplicateName. s is never modified; a
// pruned copy is returned when a field is dropped.
func Promote(s *Shape, path string) (*Shape, error) {
	if s == nil || s.Kind != KindComposite {
		return s, nil
	}

	visible := collectPromoted(s, 0, nil)

	winners := make(map[string]int, len(visible))
	seen := make(map[string]int, len(visible))

	for _, p := range visible {
		if d, ok := winners[p.name]; !ok || p.depth < d {
			winners[p.name] = p.depth
		}
	}

	for _, p := range visible {
		if p.depth != winners[p.name] {
			continue
		}

		seen[p.name]++
		if seen[p.name] > 1 {
			return nil, &SchemaError{
				Path: MountPath(path, F(p.name, Leaf())),
				Err:  fmt.Errorf("%w: %q", ErrDuplicateName, p.name),
			}
		}
	}

	return prune(s, 0, winners), nil
}

func collectPromoted(s *Shape, depth int, out []promoted) []promoted {
	for _, f := range s.Fields {
		if f.Shape.IsFlatten() {
			if inner := f.Shape.Unwrap(); inner != nil && inner.Kind == KindComposite {
				out = collectPromoted(inner, depth+1, out)
			}

			continue
		}

		out = append(out, promoted{name: f.WireName, depth: depth})
	}

	return out
}

func prune(s *Shape, depth int, winners map[string]int) *Shape {
	fields := make([]Field, 0, len(s.Fields))
	changed := false

	for _, f := range s.Fields {
		if f.Shape.IsFlatten() {
			inner := f.Shape.Unwrap()
			if inner != nil && inner.Kind == KindComposite {
				if pruned := prune(inner, depth+1, winners); pruned != inner {
					f = F(f.WireName, rewrap(f.Shape, pruned))
					changed = true
				}
			}

			fields = append(fields, f)

			continue
		}

		if winners[f.WireName] != depth {
			changed = true
			continue
		}

		fields = append(fields, f)
	}

	if !changed {
		return s
	}

	return Composite(fields...)
}

// rewrap replaces the innermost shape under s's Optional and Flatten wrappers.
func rewrap(s, inner *Shape) *Shape {
	if s == nil || !s.Kind.IsWrapper() {
		return inner
	}

	return &Shape{Kind: s.Kind, Elem: rewrap(s.Elem, inner)}
}
