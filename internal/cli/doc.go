// Package cli implements the selector-generator command tree.
//
// Commands:
//   - print: print the selector of each struct type in a package
//   - analyze: print the shape tree the selectors are synthesized from
//   - gen: write the generated selectors file described by a config
//   - check: fail when the generated file is out of date
//   - validate: check a selector string against the grammar
package cli
