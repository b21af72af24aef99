package schema

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"

	"selector-generator/internal/structtag"
	"selector-generator/shape"
)

var (
	describerType     = reflect.TypeFor[Describer]()
	jsonMarshalerType = reflect.TypeFor[json.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// builder holds the state of a single Registry.build call.
type builder struct {
	registry   *Registry
	root       string
	inProgress map[reflect.Type]bool // struct types on the current descent
}

func (b *builder) errorf(path string, err error) error {
	return &SchemaError{Type: b.root, Path: path, Err: err}
}

// described returns the shape a Describer provides for t, if any.
func (b *builder) described(t reflect.Type, path string) (*shape.Shape, bool, error) {
	if t.Kind() == reflect.Interface || !reflect.PointerTo(t).Implements(describerType) {
		return nil, false, nil
	}

	d := reflect.New(t).Interface().(Describer)

	s := d.SelectorShape()
	if err := shape.Validate(s); err != nil {
		if se, ok := err.(*SchemaError); ok {
			return nil, true, b.errorf(join(path, se.Path), se.Err)
		}

		return nil, true, b.errorf(path, err)
	}

	return s, true, nil
}

func (b *builder) typeShape(t reflect.Type, path string) (*shape.Shape, error) {
	if t.Kind() == reflect.Pointer {
		inner, err := b.typeShape(t.Elem(), path)
		if err != nil {
			return nil, err
		}

		return shape.Optional(inner), nil
	}

	if s, ok, err := b.described(t, path); ok {
		return s, err
	}

	if isOpaque(t) {
		return shape.Leaf(), nil
	}

	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return shape.Leaf(), nil

	case reflect.Slice, reflect.Array:
		// encoding/json writes byte slices as base64 strings
		if t.Elem().Kind() == reflect.Uint8 {
			return shape.Leaf(), nil
		}

		inner, err := b.typeShape(t.Elem(), path)
		if err != nil {
			return nil, err
		}

		return shape.Collection(inner), nil

	case reflect.Map:
		return shape.Map(), nil

	case reflect.Struct:
		return b.structShape(t, path)

	default:
		return nil, b.errorf(path, fmt.Errorf("%w: %s", ErrUnsupportedType, t))
	}
}

func (b *builder) structShape(t reflect.Type, path string) (*shape.Shape, error) {
	if b.inProgress[t] {
		return nil, b.errorf(path, fmt.Errorf("%w: %s", ErrCycle, t))
	}

	b.inProgress[t] = true
	defer delete(b.inProgress, t)

	fields := make([]shape.Field, 0, t.NumField())

	for i := range t.NumField() {
		f := t.Field(i)

		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}

		// encoding/json promotes fields of unexported embedded structs
		if !f.IsExported() && !(f.Anonymous && ft.Kind() == reflect.Struct) {
			continue
		}

		opts := structtag.Parse(f.Tag, b.registry.tagKey)
		if opts.Skip {
			continue
		}

		flatten := opts.Flatten ||
			(f.Anonymous && opts.Name == "" && ft.Kind() == reflect.Struct && !isOpaque(ft))

		name := opts.Name
		if name == "" {
			name = b.registry.naming.Apply(f.Name)
		}

		fieldPath := join(path, name)
		if flatten {
			fieldPath = path
		}

		var (
			fs  *shape.Shape
			err error
		)

		if opts.Leaf {
			fs = shape.Leaf()
		} else {
			fs, err = b.typeShape(f.Type, fieldPath)
			if err != nil {
				return nil, err
			}
		}

		if flatten {
			if inner := fs.Unwrap(); inner == nil || inner.Kind != shape.KindComposite {
				return nil, b.errorf(join(path, name), shape.ErrFlattenNotComposite)
			}

			fields = append(fields, shape.F(name, shape.Flatten(fs)))

			continue
		}

		if err := shape.ValidateName(name); err != nil {
			return nil, b.errorf(fieldPath, err)
		}

		fields = append(fields, shape.F(name, fs))
	}

	s, err := shape.Promote(shape.Composite(fields...), path)
	if err != nil {
		if se, ok := err.(*shape.SchemaError); ok {
			return nil, b.errorf(se.Path, se.Err)
		}

		return nil, err
	}

	return s, nil
}

// isOpaque reports whether t serializes itself and so has no selectable fields.
func isOpaque(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}

	pt := reflect.PointerTo(t)

	return t.Implements(jsonMarshalerType) || pt.Implements(jsonMarshalerType) ||
		t.Implements(textMarshalerType) || pt.Implements(textMarshalerType)
}

func join(path, name string) string {
	if path == "" {
		return name
	}

	if name == "" {
		return path
	}

	return path + "/" + name
}
