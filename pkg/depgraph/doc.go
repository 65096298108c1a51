// Package depgraph provides the resolved dependency graph of a workspace.
//
// # Overview
//
// Nodes are resolved packages keyed by the resolver's package ID. Edges point
// from a dependent to a dependency and carry the set of [Kind]s under which the
// dependency is declared (normal, dev, build). The graph is not required to be
// acyclic: dev-dependency edges routinely close cycles in real workspaces, and
// nothing in the report pipeline walks more than one hop.
//
// # Basic Usage
//
//	g := depgraph.New()
//	g.AddNode(depgraph.Node{ID: "app 0.1.0"})
//	g.AddNode(depgraph.Node{ID: "serde 1.0.0"})
//	g.AddEdge(depgraph.Edge{From: "app 0.1.0", To: "serde 1.0.0", Kinds: []depgraph.Kind{depgraph.KindNormal}})
//
//	for _, e := range g.Outgoing("app 0.1.0") {
//	    fmt.Println(e.To, e.Kinds)
//	}
//
// # Rendering
//
// [ToDOT] emits Graphviz DOT for the subgraph reachable in one hop from a set
// of roots, and [RenderSVG] turns DOT source into SVG through go-graphviz.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. The pipeline builds a
// graph once and only reads it afterwards.
package depgraph
