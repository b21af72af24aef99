// Package diagnostic provides structured warnings and errors for schema
// building and selector generation.
//
// Key capabilities:
//   - Unsupported field type and recursive type errors
//   - Unknown type reports with closest-name suggestions
//   - Merging results across packages
package diagnostic
