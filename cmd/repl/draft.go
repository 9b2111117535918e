package main

import (
	"encoding/json"
	"fmt"

	"github.com/bawdo/goaql/aql"
	"github.com/bawdo/goaql/resources"
)

// Draft argument kinds. Slots are tagged so a draft can round-trip
// through the snippet store and rebuild into the same query.
const (
	argBind       = "bind"
	argLiteral    = "literal"
	argSkip       = "skip"
	argCollection = "collection"
	argEdges      = "edges"
	argGraph      = "graph"
	argView       = "view"
	argQuery      = "query"
)

// draftArg is one interpolated slot in a draft.
type draftArg struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"` // argBind: the JSON-encoded value
	Text  string          `json:"text,omitempty"`  // literal text or resource name
	Parts []string        `json:"parts,omitempty"` // argQuery: nested fragments
	Args  []draftArg      `json:"args,omitempty"`  // argQuery: nested slots
}

// handleCache shares resource handles across a whole build (nested drafts
// included), so repeated references to the same collection, graph, or
// view resolve to one handle and therefore one bind parameter.
type handleCache map[string]aql.NamedResource

func (c handleCache) handle(kind, name string) aql.NamedResource {
	key := kind + ":" + name
	if h, ok := c[key]; ok {
		return h
	}
	var h aql.NamedResource
	switch kind {
	case argEdges:
		h = resources.NewEdgeCollection(name)
	case argGraph:
		h = resources.NewGraph(name)
	case argView:
		h = resources.NewView(name)
	default:
		h = resources.NewCollection(name)
	}
	c[key] = h
	return h
}

// bindArg interprets a bind command argument: JSON when it parses,
// otherwise the raw text as a string.
func bindArg(text string) (draftArg, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		v = text
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return draftArg{}, fmt.Errorf("encode bind value: %w", err)
	}
	return draftArg{Kind: argBind, Value: raw}, nil
}

// value resolves the tagged slot to the value handed to the builder.
func (d draftArg) value(cache handleCache) (any, error) {
	switch d.Kind {
	case argBind:
		var v any
		if err := json.Unmarshal(d.Value, &v); err != nil {
			return nil, fmt.Errorf("decode bind value: %w", err)
		}
		return v, nil
	case argLiteral:
		return aql.NewLiteral(d.Text), nil
	case argSkip:
		return aql.Omit, nil
	case argCollection, argEdges, argGraph, argView:
		return cache.handle(d.Kind, d.Text), nil
	case argQuery:
		return buildDraft(d.Parts, d.Args, cache)
	default:
		return nil, fmt.Errorf("unknown argument kind %q", d.Kind)
	}
}

// summary returns a short display form for the parts listing.
func (d draftArg) summary() string {
	switch d.Kind {
	case argBind:
		return "bind " + string(d.Value)
	case argLiteral:
		return "literal " + d.Text
	case argSkip:
		return "skip"
	case argQuery:
		return fmt.Sprintf("query (%d fragments, %d args)", len(d.Parts), len(d.Args))
	default:
		return d.Kind + " " + d.Text
	}
}
