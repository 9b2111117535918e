package aql

// ResourceKind discriminates the schema-object categories a bind
// parameter can target.
type ResourceKind int

const (
	KindCollection ResourceKind = iota
	KindEdgeCollection
	KindGraph
	KindView
)

// String returns the display name for this resource kind.
func (k ResourceKind) String() string {
	switch k {
	case KindCollection:
		return "collection"
	case KindEdgeCollection:
		return "edge collection"
	case KindGraph:
		return "graph"
	case KindView:
		return "view"
	default:
		return "resource"
	}
}

// NamedResource is implemented by handles for schema-level named objects
// (collections, graphs, views). Interpolating one binds its name string
// under an @-prefixed key with an @@ placeholder; the handle itself is
// never bound or mutated.
type NamedResource interface {
	Name() string
	Kind() ResourceKind
}
