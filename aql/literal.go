package aql

import "fmt"

// Literal marks text to inline verbatim into the query instead of binding
// it as a parameter.
//
// SECURITY: the wrapped text is rendered directly into the query string
// without escaping or parameterization. Never pass user-controlled input
// to NewLiteral; bind user-provided values as parameters instead.
type Literal struct {
	text string
}

// NewLiteral wraps a value as a Literal. An existing Literal is returned
// unchanged. Omit renders as the empty string, nil as the query language's
// null literal, and anything else as its plain string form.
func NewLiteral(v any) Literal {
	switch t := v.(type) {
	case Literal:
		return t
	case omitted:
		return Literal{}
	case nil:
		return Literal{text: "null"}
	}
	return Literal{text: fmt.Sprint(v)}
}

// String returns the raw text this literal inlines.
func (l Literal) String() string { return l.text }
