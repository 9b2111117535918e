// Package quoting provides AQL identifier and string escaping utilities.
package quoting

import (
	"encoding/json"
	"strings"
)

// QuoteIdent quotes an AQL identifier with backticks. Internal backslashes
// and backticks are backslash-escaped.
func QuoteIdent(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	return "`" + s + "`"
}

// QuoteString renders s as an AQL string literal. AQL string syntax
// follows JSON string rules, so the JSON encoding is the escaped form.
//
// SECURITY: escaping is intended for debugging and tooling output only.
// User-provided values belong in bind parameters, never in query text.
func QuoteString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
