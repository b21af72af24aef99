// Package naming converts Go identifiers to wire-name conventions.
package naming

import (
	"fmt"
	"strings"
	"unicode"
)

// Convention is a wire-name case convention.
type Convention int

const (
	AsIs   Convention = iota // Go field name unchanged
	Camel                    // mimeType
	Pascal                   // MimeType
	Snake                    // mime_type
	Kebab                    // mime-type
)

var conventionNames = [...]string{
	AsIs:   "as-is",
	Camel:  "camel",
	Pascal: "pascal",
	Snake:  "snake",
	Kebab:  "kebab",
}

// String returns the configuration name of the convention.
func (c Convention) String() string {
	if c < 0 || int(c) >= len(conventionNames) {
		return fmt.Sprintf("Convention(%d)", int(c))
	}

	return conventionNames[c]
}

// Parse looks up a convention by its configuration name.
func Parse(s string) (Convention, error) {
	for i, name := range conventionNames {
		if strings.EqualFold(s, name) {
			return Convention(i), nil
		}
	}

	return AsIs, fmt.Errorf("unknown naming convention %q (want one of %s)",
		s, strings.Join(conventionNames[:], ", "))
}

// Apply converts a Go identifier to the convention.
func (c Convention) Apply(name string) string {
	if c == AsIs {
		return name
	}

	tokens := Tokenize(name)
	if len(tokens) == 0 {
		return name
	}

	switch c {
	case Camel:
		tokens[0] = strings.ToLower(tokens[0])
		for i := 1; i < len(tokens); i++ {
			tokens[i] = capitalize(tokens[i])
		}

		return strings.Join(tokens, "")

	case Pascal:
		for i := range tokens {
			tokens[i] = capitalize(tokens[i])
		}

		return strings.Join(tokens, "")

	case Snake:
		return strings.ToLower(strings.Join(tokens, "_"))

	case Kebab:
		return strings.ToLower(strings.Join(tokens, "-"))

	default:
		return name
	}
}

// capitalize upper-cases the first rune and lower-cases the rest, so
// acronyms become words: ID -> Id, HTTP -> Http.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}

	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// Tokenize splits a CamelCase, camelCase or separated identifier into words.
// Examples:
//   - "MimeType" -> ["Mime", "Type"]
//   - "OrderID" -> ["Order", "ID"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "PermissionIDs" -> ["Permission", "IDs"]
//   - "md5_checksum" -> ["md5", "checksum"]
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && startsToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsToken reports whether a new word starts at runes[i].
func startsToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// orderID: lower-to-upper transition
	if !unicode.IsUpper(prev) {
		return true
	}

	if i+1 >= len(runes) || !unicode.IsLower(runes[i+1]) {
		return false
	}

	// PermissionIDs, URLsList: a plural s stays with its acronym
	if runes[i+1] == 's' && (i+2 == len(runes) || unicode.IsUpper(runes[i+2])) {
		return false
	}

	// XMLParser: last capital of an acronym followed by lowercase
	return true
}
