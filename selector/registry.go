package selector

import (
	"net/url"
	"reflect"

	"selector-generator/schema"
)

// Param is the query parameter that carries a selector.
const Param = "fields"

// For returns the selector of t, building and caching its schema in
// schema.Default on first use.
func For(t reflect.Type) (string, error) {
	s, err := schema.Default.Of(t)
	if err != nil {
		return "", err
	}

	return Synthesize(s), nil
}

// Of returns the selector of T.
func Of[T any]() (string, error) {
	return For(reflect.TypeFor[T]())
}

// MustOf is like Of but panics when T has no valid schema.
// It is meant for package-level variable initialization.
func MustOf[T any]() string {
	sel, err := Of[T]()
	if err != nil {
		panic(err)
	}

	return sel
}

// Attach sets the fields parameter on v. Empty selectors are not attached,
// leaving the server to return its default projection.
func Attach(v url.Values, sel string) {
	if sel == "" {
		return
	}

	v.Set(Param, sel)
}
