// Package gen provides deterministic Go code generation for selector constants.
//
// Generation approach uses text/template + go/format for readable Go code.
//
// Output modes:
//   - const: one <Type>Fields string constant per type
//   - method: a Selector() string method per type
package gen
