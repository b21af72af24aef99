// Package selector synthesizes partial-response field selectors from shapes.
//
// A selector is the value of the "fields" query parameter understood by
// partial-response APIs:
//
//	selector     := segment (',' segment)*
//	segment      := scalarPath | groupSegment
//	scalarPath   := identifier ('/' identifier)*
//	groupSegment := identifier '(' selector ')'
//
// Fields of nested records are addressed by repeating the slash-joined path
// per leaf (owner/name,owner/email). Fields of collection elements are listed
// once inside parentheses, relative to the collection (files(id,name)).
package selector
