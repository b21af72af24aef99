package shape

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by SchemaError.
var (
	ErrNilShape            = errors.New("nil shape")
	ErrInvalidKind         = errors.New("invalid kind")
	ErrInvalidName         = errors.New("invalid wire name")
	ErrDuplicateName       = errors.New("duplicate wire name")
	ErrFlattenNotComposite = errors.New("flattened field is not a composite")
	ErrCycle               = errors.New("recursive type")
	ErrUnsupportedType     = errors.New("unsupported field type")
	ErrNotStruct           = errors.New("not a struct type")
)

// SchemaError reports a schema description that cannot be built or used.
type SchemaError struct {
	Type string // root type being described, if known
	Path string // slash-joined wire path of the offending field
	Err  error
}

func (e *SchemaError) Error() string {
	where := e.Type
	if e.Path != "" {
		if where != "" {
			where += "."
		}
		where += e.Path
	}

	if where == "" {
		return fmt.Sprintf("schema: %v", e.Err)
	}

	return fmt.Sprintf("schema: %s: %v", where, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
