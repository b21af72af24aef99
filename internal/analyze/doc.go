// Package analyze loads Go packages and derives selector shapes statically.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory graph of named types and their fields, then converts named
// struct types into shape.Shape descriptions with the same rules as the
// runtime schema package.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/array/map/external)
//   - FieldInfo: describes field name, type, tags, and embedding
//   - ShapeBuilder: converts TypeInfo graphs into shapes
package analyze
