package shape

import (
	"fmt"
	"io"
	"strings"
)

// Shape is the selectable structure of a type or field.
type Shape struct {
	Kind   Kind
	Elem   *Shape  // inner shape for Optional, Collection and Flatten
	Fields []Field // children of a Composite, in declaration order
}

// Field is a named child of a Composite.
type Field struct {
	WireName string // name used on the wire, already case-converted
	Shape    *Shape
}

// Leaf returns a scalar shape.
func Leaf() *Shape {
	return &Shape{Kind: KindLeaf}
}

// Map returns an opaque keyed-mapping shape.
func Map() *Shape {
	return &Shape{Kind: KindMap}
}

// Optional wraps inner without contributing any syntax.
func Optional(inner *Shape) *Shape {
	return &Shape{Kind: KindOptional, Elem: inner}
}

// Collection returns a sequence of inner.
func Collection(inner *Shape) *Shape {
	return &Shape{Kind: KindCollection, Elem: inner}
}

// Composite returns a record with the given fields.
func Composite(fields ...Field) *Shape {
	return &Shape{Kind: KindComposite, Fields: fields}
}

// Flatten splices the fields of inner into the parent composite.
// inner must be a Composite, optionally wrapped in Optional.
func Flatten(inner *Shape) *Shape {
	return &Shape{Kind: KindFlatten, Elem: inner}
}

// F is shorthand for a Field literal.
func F(wireName string, s *Shape) Field {
	return Field{WireName: wireName, Shape: s}
}

// Unwrap strips Optional and Flatten wrappers.
func (s *Shape) Unwrap() *Shape {
	for s != nil && s.Kind.IsWrapper() {
		s = s.Elem
	}

	return s
}

// IsFlatten reports whether s, ignoring Optional wrappers, is a Flatten.
// Flattened fields are mounted at their parent's path.
func (s *Shape) IsFlatten() bool {
	for s != nil && s.Kind == KindOptional {
		s = s.Elem
	}

	return s != nil && s.Kind == KindFlatten
}

// MountPath returns the path at which field f of a composite mounted at path
// is emitted.
func MountPath(path string, f Field) string {
	if f.Shape.IsFlatten() {
		return path
	}

	if path == "" {
		return f.WireName
	}

	return path + "/" + f.WireName
}

// Field returns the direct child with the given wire name, or nil.
func (s *Shape) Field(wireName string) *Shape {
	if s == nil || s.Kind != KindComposite {
		return nil
	}

	for _, f := range s.Fields {
		if f.WireName == wireName {
			return f.Shape
		}
	}

	return nil
}

// String renders a compact single-line form, e.g. {id:leaf tags:[]leaf owner:?{name:leaf}}.
func (s *Shape) String() string {
	var b strings.Builder
	s.write(&b)

	return b.String()
}

func (s *Shape) write(b *strings.Builder) {
	if s == nil {
		b.WriteString("<nil>")
		return
	}

	switch s.Kind {
	case KindLeaf:
		b.WriteString("leaf")
	case KindMap:
		b.WriteString("map")
	case KindOptional:
		b.WriteByte('?')
		s.Elem.write(b)
	case KindCollection:
		b.WriteString("[]")
		s.Elem.write(b)
	case KindFlatten:
		b.WriteString("...")
		s.Elem.write(b)
	case KindComposite:
		b.WriteByte('{')
		for i, f := range s.Fields {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(f.WireName)
			b.WriteByte(':')
			f.Shape.write(b)
		}
		b.WriteByte('}')
	default:
		b.WriteString(s.Kind.String())
	}
}

// Dump writes an indented tree of s labelled with name, one field per line.
func Dump(w io.Writer, name string, s *Shape) error {
	return dump(w, "", name, s)
}

func dump(w io.Writer, indent, label string, s *Shape) error {
	var chain []string

	cur := s
	for cur != nil && (cur.Kind.IsWrapper() || cur.Kind == KindCollection) {
		chain = append(chain, strings.ToLower(cur.Kind.String()))
		cur = cur.Elem
	}

	if cur == nil {
		chain = append(chain, "<nil>")
	} else {
		chain = append(chain, strings.ToLower(cur.Kind.String()))
	}

	if _, err := fmt.Fprintf(w, "%s%s: %s\n", indent, label, strings.Join(chain, " ")); err != nil {
		return err
	}

	if cur == nil || cur.Kind != KindComposite {
		return nil
	}

	for _, f := range cur.Fields {
		if err := dump(w, indent+"  ", f.WireName, f.Shape); err != nil {
			return err
		}
	}

	return nil
}
