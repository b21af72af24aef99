package schema

import (
	"reflect"
	"sync"

	"selector-generator/internal/structtag"
	"selector-generator/naming"
	"selector-generator/shape"
)

// SchemaError is returned for types that cannot be described.
type SchemaError = shape.SchemaError

// Errors wrapped by SchemaError.
var (
	ErrNotStruct       = shape.ErrNotStruct
	ErrUnsupportedType = shape.ErrUnsupportedType
	ErrCycle           = shape.ErrCycle
	ErrDuplicateName   = shape.ErrDuplicateName
)

// Describer is implemented by types that provide their own shape instead of
// having it derived from their fields.
type Describer interface {
	SelectorShape() *shape.Shape
}

// Default is the process-wide registry.
var Default = NewRegistry()

// Option configures a Registry.
type Option func(*Registry)

// WithTagKey sets the serialization tag consulted for wire names (json by default).
func WithTagKey(key string) Option {
	return func(r *Registry) { r.tagKey = key }
}

// WithNaming sets the convention applied to untagged field names (camelCase by default).
func WithNaming(c naming.Convention) Option {
	return func(r *Registry) { r.naming = c }
}

// Registry builds and caches shapes per reflect.Type. It is safe for
// concurrent use; concurrent first lookups of a type converge on one shape.
type Registry struct {
	tagKey string
	naming naming.Convention

	cache sync.Map // reflect.Type -> *entry
}

type entry struct {
	shape *shape.Shape
	err   error
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		tagKey: structtag.DefaultNameKey,
		naming: naming.Camel,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Of returns the shape of t. Pointer types are described by their element type.
func (r *Registry) Of(t reflect.Type) (*shape.Shape, error) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil {
		return nil, &SchemaError{Err: ErrNotStruct}
	}

	if v, ok := r.cache.Load(t); ok {
		e := v.(*entry)
		return e.shape, e.err
	}

	s, err := r.build(t)
	actual, _ := r.cache.LoadOrStore(t, &entry{shape: s, err: err})
	e := actual.(*entry)

	return e.shape, e.err
}

// Of returns the shape of t from the default registry.
func Of(t reflect.Type) (*shape.Shape, error) {
	return Default.Of(t)
}

// For returns the shape of T from the default registry.
func For[T any]() (*shape.Shape, error) {
	return Default.Of(reflect.TypeFor[T]())
}

func (r *Registry) build(t reflect.Type) (*shape.Shape, error) {
	b := &builder{
		registry:   r,
		root:       t.String(),
		inProgress: make(map[reflect.Type]bool),
	}

	if s, ok, err := b.described(t, ""); ok {
		return s, err
	}

	if t.Kind() != reflect.Struct {
		return nil, &SchemaError{Type: t.String(), Err: ErrNotStruct}
	}

	s, err := b.structShape(t, "")
	if err != nil {
		return nil, err
	}

	if err := shape.Validate(s); err != nil {
		return nil, withType(err, t.String())
	}

	return s, nil
}

func withType(err error, typeName string) error {
	if se, ok := err.(*SchemaError); ok && se.Type == "" {
		return &SchemaError{Type: typeName, Path: se.Path, Err: se.Err}
	}

	return err
}
