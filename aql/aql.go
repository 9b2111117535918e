// Package aql assembles parameterized AQL queries from literal text
// fragments and interpolated Go values.
//
// Build walks an ordered list of n+1 text fragments and the n values
// interpolated between them, turning every bindable value into a bind
// parameter instead of query text. Generated queries nest inside other
// Build invocations without bind-name collisions, and collection, graph,
// and view handles bind as schema-object parameters.
package aql

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// GeneratedQuery is the result of Build: the assembled query text plus its
// bind parameters, the record shipped to a query-execution collaborator.
// It also carries the source fragments and arguments that produced it, so
// it can be re-expanded losslessly when interpolated into another Build
// invocation. Those stay unexported; the serialized form is exactly
// {query, bindVars}.
type GeneratedQuery struct {
	Query    string         `json:"query"`
	BindVars map[string]any `json:"bindVars"`

	// replay source, builder-internal
	parts []string
	args  []any
}

type omitted struct{}

// Omit marks an interpolation slot as absent. It contributes no query text
// and no bind parameter; the surrounding fragments join directly. Untyped
// nil is not absent — it binds as a null value.
var Omit omitted

// Build assembles a query from n+1 text fragments and n interpolated
// values. Each value is handled by the first matching rule:
//
//  1. a *GeneratedQuery is inlined from its source fragments and
//     arguments, so bind names are assigned once across the combined
//     stream;
//  2. Omit contributes nothing;
//  3. a Literal inlines its raw text;
//  4. anything else becomes a bind parameter. A value identical to one
//     already bound in this invocation reuses its parameter; otherwise the
//     next 0-based index is assigned. NamedResource values bind their name
//     under an @-prefixed key with an @@ placeholder, everything else
//     binds as-is under a bare key with an @ placeholder.
//
// Build never fails for any value shape. It panics only when
// len(parts) != len(args)+1, which is a malformed invocation, not a
// runtime condition.
func Build(parts []string, args ...any) *GeneratedQuery {
	if len(parts) != len(args)+1 {
		panic(fmt.Sprintf("aql: %d fragments require %d interpolated values, got %d",
			len(parts), len(parts)-1, len(args)))
	}
	parts, args = flatten(parts, args)

	var text strings.Builder
	bindVars := make(map[string]any)
	var bound []any // distinct bound values, first-appearance order

	for i, part := range parts {
		text.WriteString(part)
		if i >= len(args) {
			break
		}
		switch v := args[i].(type) {
		case omitted:
			// absent slot: fragments concatenate across the gap
		case Literal:
			text.WriteString(v.String())
		default:
			idx := -1
			for j, prev := range bound {
				if identicalTo(prev, args[i]) {
					idx = j
					break
				}
			}
			if idx < 0 {
				idx = len(bound)
				bound = append(bound, args[i])
			}
			name := "value" + strconv.Itoa(idx)
			if res, ok := args[i].(NamedResource); ok {
				bindVars["@"+name] = res.Name()
				text.WriteString("@@" + name)
			} else {
				bindVars[name] = args[i]
				text.WriteString("@" + name)
			}
		}
	}

	return &GeneratedQuery{
		Query:    text.String(),
		BindVars: bindVars,
		parts:    append([]string(nil), parts...),
		args:     append([]any(nil), args...),
	}
}

// flatten expands nested generated queries into a single fragment/argument
// stream, preserving the invariant len(parts) == len(args)+1. A nested
// query that captured no arguments is pure text and contributes its
// finalized query string; one with arguments contributes its source
// fragments and arguments so deduplication sees the raw values, not
// already-finalized bind names. Stored sources are themselves flat, so one
// pass suffices for any nesting depth.
func flatten(parts []string, args []any) ([]string, []any) {
	nested := false
	for _, arg := range args {
		if _, ok := arg.(*GeneratedQuery); ok {
			nested = true
			break
		}
	}
	if !nested {
		return parts, args
	}

	outParts := make([]string, 1, len(parts))
	outParts[0] = parts[0]
	outArgs := make([]any, 0, len(args))
	for i, arg := range args {
		tail := parts[i+1]
		q, ok := arg.(*GeneratedQuery)
		switch {
		case ok && len(q.args) == 0:
			outParts[len(outParts)-1] += q.Query + tail
		case ok:
			outParts[len(outParts)-1] += q.parts[0]
			outArgs = append(outArgs, q.args...)
			outParts = append(outParts, q.parts[1:]...)
			outParts[len(outParts)-1] += tail
		default:
			outArgs = append(outArgs, arg)
			outParts = append(outParts, tail)
		}
	}
	return outParts, outArgs
}

// identicalTo reports strict identity between two interpolated values:
// type-equal comparable values compare with ==, maps, slices, and funcs
// compare by pointer. Distinct instances of other non-comparable types are
// never identical, so they bind separately.
func identicalTo(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Map, reflect.Func:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}
