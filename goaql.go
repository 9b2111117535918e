// Package goaql provides a safe query-construction library for AQL.
//
// This package re-exports commonly used types and functions from
// subpackages for convenience. Advanced users can import subpackages
// directly:
//   - github.com/bawdo/goaql/aql (query builder core)
//   - github.com/bawdo/goaql/resources (collection/graph/view handles)
package goaql

import (
	"github.com/bawdo/goaql/aql"
	"github.com/bawdo/goaql/resources"
)

// --- Core Types ---

// GeneratedQuery is an assembled query: the query text plus its bind
// parameters, ready for a query-execution collaborator, and nestable
// inside another AQL invocation.
type GeneratedQuery = aql.GeneratedQuery

// Literal marks text to inline verbatim instead of binding as a parameter.
type Literal = aql.Literal

// NamedResource is implemented by collection, graph, and view handles.
type NamedResource = aql.NamedResource

// ResourceKind discriminates collection, edge collection, graph, and view.
type ResourceKind = aql.ResourceKind

// Omit marks an interpolation slot as absent: no text, no binding.
var Omit = aql.Omit

// --- Builder ---

// AQL assembles a query from n+1 text fragments and n interpolated values.
func AQL(parts []string, args ...any) *aql.GeneratedQuery {
	return aql.Build(parts, args...)
}

// Join interpolates values in order with a literal separator between each
// pair (default single space).
func Join(values []any, sep ...string) *aql.GeneratedQuery {
	return aql.Join(values, sep...)
}

// Lit wraps a value as a Literal to be inlined as raw query text.
func Lit(v any) aql.Literal {
	return aql.NewLiteral(v)
}

// --- Resource Handles ---

// Collection creates a handle to a document collection.
func Collection(name string) *resources.Collection {
	return resources.NewCollection(name)
}

// EdgeCollection creates a handle to an edge collection.
func EdgeCollection(name string) *resources.Collection {
	return resources.NewEdgeCollection(name)
}

// Graph creates a handle to a named graph.
func Graph(name string) *resources.Graph {
	return resources.NewGraph(name)
}

// View creates a handle to a named view.
func View(name string) *resources.View {
	return resources.NewView(name)
}
