// Package schema derives shapes from Go struct types by reflection.
//
// Rules applied to each exported field (and to embedded structs):
//   - `selector:"-"` or `json:"-"` skips the field
//   - the wire name comes from the selector tag, then the json tag, then the
//     Go field name converted by the registry's naming convention (camelCase
//     by default)
//   - an embedded struct without an explicit name is flattened into its parent,
//     as encoding/json does; `selector:",flatten"` flattens a named field
//   - `selector:",leaf"` makes a field opaque
//   - types implementing json.Marshaler or encoding.TextMarshaler (time.Time)
//     and byte slices are leaves; pointers are optional; slices and arrays are
//     collections; maps are opaque
//   - interfaces, channels, funcs and complex numbers are rejected
//
// Types may also describe themselves by implementing Describer.
//
// Schemas are memoized per type for the lifetime of the Registry. Build errors
// are memoized too: a type that cannot be described never will be.
package schema
