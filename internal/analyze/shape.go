package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"sort"

	"selector-generator/internal/common"
	"selector-generator/internal/diagnostic"
	"selector-generator/internal/structtag"
	"selector-generator/naming"
	"selector-generator/shape"
)

var errDescribesItself = errors.New("type provides its own shape at runtime")

// ShapeBuilder converts analyzed struct types into shapes.
type ShapeBuilder struct {
	graph  *TypeGraph
	naming naming.Convention
	tagKey string
}

// NewShapeBuilder creates a ShapeBuilder over graph. Untagged field names are
// converted with conv; wire names are read from the tagKey struct tag.
func NewShapeBuilder(graph *TypeGraph, conv naming.Convention, tagKey string) *ShapeBuilder {
	if tagKey == "" {
		tagKey = structtag.DefaultNameKey
	}

	return &ShapeBuilder{graph: graph, naming: conv, tagKey: tagKey}
}

// DisplayName returns the package-qualified short name used in messages, e.g. drive.FileList.
func DisplayName(id TypeID) string {
	if alias := common.PkgAlias(id.PkgPath); alias != "" {
		return alias + "." + id.Name
	}

	return id.Name
}

// Build returns the shape of the named struct type id.
func (b *ShapeBuilder) Build(id TypeID) (*shape.Shape, error) {
	info := b.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}

	root := DisplayName(id)

	if info.Describes {
		return nil, &shape.SchemaError{Type: root, Err: fmt.Errorf("%w: %w", shape.ErrUnsupportedType, errDescribesItself)}
	}

	if info.Kind != TypeKindStruct || info.Generic {
		return nil, &shape.SchemaError{Type: root, Err: shape.ErrNotStruct}
	}

	sb := &shapeBuild{
		ShapeBuilder: b,
		root:         root,
		inProgress:   make(map[*TypeInfo]bool),
	}

	s, err := sb.structShape(info, "")
	if err != nil {
		return nil, err
	}

	if err := shape.Validate(s); err != nil {
		var se *shape.SchemaError
		if errors.As(err, &se) {
			return nil, &shape.SchemaError{Type: root, Path: se.Path, Err: se.Err}
		}

		return nil, err
	}

	return s, nil
}

// BuildAll builds every id, collecting failures as diagnostics. Types with
// errors are absent from the result.
func (b *ShapeBuilder) BuildAll(ids []TypeID) (map[TypeID]*shape.Shape, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	sorted := append([]TypeID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].String() < sorted[j].String() })

	shapes := make(map[TypeID]*shape.Shape, len(sorted))
	for _, id := range sorted {
		s, err := b.Build(id)
		if err != nil {
			diags.AddSchemaError(DisplayName(id), err)
			continue
		}

		shapes[id] = s
	}

	return shapes, diags
}

// shapeBuild holds the state of a single Build call.
type shapeBuild struct {
	*ShapeBuilder

	root       string
	inProgress map[*TypeInfo]bool
}

func (b *shapeBuild) errorf(path string, err error) error {
	return &shape.SchemaError{Type: b.root, Path: path, Err: err}
}

func (b *shapeBuild) typeShape(t *TypeInfo, path string) (*shape.Shape, error) {
	if t == nil {
		return nil, b.errorf(path, shape.ErrUnsupportedType)
	}

	if t.Describes {
		return nil, b.errorf(path, fmt.Errorf("%w: %s: %w", shape.ErrUnsupportedType, TypeString(t), errDescribesItself))
	}

	switch t.Kind {
	case TypeKindPointer:
		inner, err := b.typeShape(t.ElemType, path)
		if err != nil {
			return nil, err
		}

		return shape.Optional(inner), nil

	case TypeKindExternal:
		return shape.Leaf(), nil

	case TypeKindBasic:
		if basic, ok := t.GoType.Underlying().(*types.Basic); ok {
			if basic.Info()&types.IsComplex != 0 || basic.Kind() == types.UnsafePointer {
				return nil, b.errorf(path, fmt.Errorf("%w: %s", shape.ErrUnsupportedType, basic))
			}
		}

		return shape.Leaf(), nil

	case TypeKindAlias:
		return b.typeShape(t.Underlying, path)

	case TypeKindSlice, TypeKindArray:
		if isByte(t.ElemType) {
			return shape.Leaf(), nil
		}

		inner, err := b.typeShape(t.ElemType, path)
		if err != nil {
			return nil, err
		}

		return shape.Collection(inner), nil

	case TypeKindMap:
		return shape.Map(), nil

	case TypeKindStruct:
		return b.structShape(t, path)

	default:
		return nil, b.errorf(path, fmt.Errorf("%w: %s", shape.ErrUnsupportedType, TypeString(t)))
	}
}

func (b *shapeBuild) structShape(t *TypeInfo, path string) (*shape.Shape, error) {
	if b.inProgress[t] {
		return nil, b.errorf(path, fmt.Errorf("%w: %s", shape.ErrCycle, TypeString(t)))
	}

	b.inProgress[t] = true
	defer delete(b.inProgress, t)

	fields := make([]shape.Field, 0, len(t.Fields))

	for i := range t.Fields {
		f := &t.Fields[i]

		isStruct := structKind(f.Type)
		if !f.Exported && !(f.Embedded && isStruct) {
			continue
		}

		opts := f.TagOptions(b.tagKey)
		if opts.Skip {
			continue
		}

		flatten := opts.Flatten || (f.Embedded && opts.Name == "" && isStruct)

		name := opts.Name
		if name == "" {
			name = b.naming.Apply(f.Name)
		}

		fieldPath := joinPath(path, name)
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
				return nil, b.errorf(joinPath(path, name), shape.ErrFlattenNotComposite)
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

// structKind reports whether t, after dereferencing pointers, is a struct.
func structKind(t *TypeInfo) bool {
	for t != nil && t.Kind == TypeKindPointer {
		t = t.ElemType
	}

	return t != nil && t.Kind == TypeKindStruct
}

// isByte reports whether t has underlying type uint8; byte slices marshal as strings.
func isByte(t *TypeInfo) bool {
	if t == nil || t.GoType == nil {
		return false
	}

	basic, ok := t.GoType.Underlying().(*types.Basic)

	return ok && basic.Kind() == types.Uint8
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}

	if name == "" {
		return path
	}

	return path + "/" + name
}
