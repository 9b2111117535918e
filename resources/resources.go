// Package resources provides handle types for named schema objects:
// collections, graphs, and views. Handles carry only a name and a kind;
// they are the shapes the query builder recognizes as resource bindings.
// Request plumbing around these handles lives in the calling client, not
// here.
package resources

import "github.com/bawdo/goaql/aql"

// Collection is a handle to a document or edge collection.
type Collection struct {
	name string
	kind aql.ResourceKind
}

// NewCollection creates a handle to a document collection.
func NewCollection(name string) *Collection {
	return &Collection{name: name, kind: aql.KindCollection}
}

// NewEdgeCollection creates a handle to an edge collection.
func NewEdgeCollection(name string) *Collection {
	return &Collection{name: name, kind: aql.KindEdgeCollection}
}

// Name returns the collection name.
func (c *Collection) Name() string { return c.name }

// Kind returns KindCollection or KindEdgeCollection.
func (c *Collection) Kind() aql.ResourceKind { return c.kind }

func (c *Collection) String() string { return c.kind.String() + " " + c.name }

// Graph is a handle to a named graph.
type Graph struct {
	name string
}

// NewGraph creates a handle to a named graph.
func NewGraph(name string) *Graph {
	return &Graph{name: name}
}

// Name returns the graph name.
func (g *Graph) Name() string { return g.name }

// Kind returns KindGraph.
func (g *Graph) Kind() aql.ResourceKind { return aql.KindGraph }

func (g *Graph) String() string { return "graph " + g.name }

// View is a handle to a named view.
type View struct {
	name string
}

// NewView creates a handle to a named view.
func NewView(name string) *View {
	return &View{name: name}
}

// Name returns the view name.
func (v *View) Name() string { return v.name }

// Kind returns KindView.
func (v *View) Kind() aql.ResourceKind { return aql.KindView }

func (v *View) String() string { return "view " + v.name }

var (
	_ aql.NamedResource = (*Collection)(nil)
	_ aql.NamedResource = (*Graph)(nil)
	_ aql.NamedResource = (*View)(nil)
)
