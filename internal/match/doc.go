// Package match provides name normalization and Levenshtein distance
// calculation for suggesting close matches to misspelled type names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Distance: computes the edit distance between strings
//   - Suggest: ranks candidate names by similarity
package match
