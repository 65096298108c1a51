package depgraph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Kind classifies a dependency edge.
type Kind string

const (
	// KindNormal is a regular dependency, always built.
	KindNormal Kind = "normal"
	// KindDev is a development-only dependency (tests, examples, benches).
	KindDev Kind = "dev"
	// KindBuild is a build-script dependency.
	KindBuild Kind = "build"
)

// Node is a resolved package in the graph.
type Node struct {
	ID string // Resolver package ID
}

// Edge is a directed dependency from one package to another.
type Edge struct {
	From  string
	To    string
	Kinds []Kind // Declared kinds; empty means the resolver reported none
}

// Has reports whether the edge is declared with kind k.
// An edge without any kind counts as [KindNormal].
func (e Edge) Has(k Kind) bool {
	if len(e.Kinds) == 0 {
		return k == KindNormal
	}
	return slices.Contains(e.Kinds, k)
}

// Graph is a directed dependency graph keyed by package ID.
//
// The zero value is not usable; use New.
type Graph struct {
	nodes    map[string]*Node
	edges    []Edge
	outgoing map[string][]int // node ID -> indices into edges
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]int),
	}
}

// AddNode adds a node to the graph.
// Returns ErrInvalidNodeID if the ID is empty, or ErrDuplicateNodeID if a node
// with the same ID already exists.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[n.ID] = &n
	return nil
}

// EnsureNode adds a bare node with the given ID unless it already exists.
func (g *Graph) EnsureNode(id string) error {
	if _, ok := g.nodes[id]; ok {
		return nil
	}
	return g.AddNode(Node{ID: id})
}

// AddEdge adds a directed edge between two existing nodes.
// Multiple edges between the same pair are kept; the resolver never emits
// them, but callers that merge graphs may.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	e.Kinds = slices.Clone(e.Kinds)
	idx := len(g.edges)
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], idx)
	return nil
}

// Node returns the node with the given ID and true, or nil and false if not found.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Outgoing returns the edges leaving the node in insertion order.
// Returns nil if the node has no dependencies or doesn't exist.
func (g *Graph) Outgoing(id string) []Edge {
	idx := g.outgoing[id]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Edge, len(idx))
	for i, j := range idx {
		out[i] = g.edges[j]
	}
	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }
