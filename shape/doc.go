// Package shape describes the selectable structure of a data type.
//
// A Shape is a small tree over a closed set of kinds:
//   - Leaf: scalar value with no selectable sub-fields (strings, numbers, timestamps)
//   - Optional: wraps another shape, contributes no syntax
//   - Collection: sequence of another shape, selected as name(...)
//   - Map: keyed mapping, opaque for selection purposes
//   - Composite: ordered list of named fields, selected by slash paths
//   - Flatten: composite spliced into its parent at the parent's path
//
// Shapes are built once by a schema provider and never mutated afterwards.
package shape
