package selector

import (
	"strings"

	"selector-generator/shape"
)

const (
	separator = ','
	pathSep   = "/"
)

// Synthesize returns the selector for root. The result depends only on the
// shape, so repeated calls yield identical strings.
func Synthesize(root *shape.Shape) string {
	var buf strings.Builder
	emit("", root, &buf)

	return buf.String()
}

// emit appends the segments contributed by s mounted at path.
func emit(path string, s *shape.Shape, buf *strings.Builder) {
	if s == nil {
		return
	}

	switch s.Kind {
	case shape.KindLeaf, shape.KindMap:
		separate(buf)
		buf.WriteString(path)

	case shape.KindOptional, shape.KindFlatten:
		emit(path, s.Elem, buf)

	case shape.KindCollection:
		separate(buf)
		buf.WriteString(path)

		// Element fields are relative to the collection, not to path.
		var group strings.Builder
		emit("", s.Elem, &group)

		if group.Len() > 0 {
			buf.WriteByte('(')
			buf.WriteString(group.String())
			buf.WriteByte(')')
		}

	case shape.KindComposite:
		for _, f := range s.Fields {
			emit(shape.MountPath(path, f), f.Shape, buf)
		}
	}
}

// separate writes a comma unless buf is empty or already ends with one.
func separate(buf *strings.Builder) {
	n := buf.Len()
	if n == 0 || buf.String()[n-1] == separator {
		return
	}

	buf.WriteByte(separator)
}
