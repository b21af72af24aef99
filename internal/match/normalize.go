package match

import (
	"strings"

	"selector-generator/naming"
)

// NormalizeIdent normalizes an identifier for fuzzy matching.
// The identifier is tokenized, joined without separators and case-folded,
// so OrderID, order_id and orderId all normalize to "orderid".
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(naming.Tokenize(s), ""))
}
