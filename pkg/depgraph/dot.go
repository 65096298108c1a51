package depgraph

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"
)

// DOTOptions configures DOT generation.
type DOTOptions struct {
	// Label returns the display label for a node ID. Defaults to the ID.
	Label func(id string) string
	// Keep filters edges; a nil Keep keeps every edge.
	Keep func(Edge) bool
}

// ToDOT converts the one-hop neighbourhood of roots into Graphviz DOT.
// Root nodes are drawn filled; edges that are not normal dependencies are
// dashed and labelled with their kinds.
func ToDOT(g *Graph, roots []string, opts DOTOptions) string {
	label := opts.Label
	if label == nil {
		label = func(id string) string { return id }
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	roots = slices.Sorted(slices.Values(roots))
	seen := make(map[string]bool)
	for _, r := range roots {
		if _, ok := g.Node(r); !ok || seen[r] {
			continue
		}
		seen[r] = true
		fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled\", fillcolor=lightgrey];\n", r, label(r))
	}

	var edges []Edge
	for _, r := range roots {
		for _, e := range g.Outgoing(r) {
			if opts.Keep != nil && !opts.Keep(e) {
				continue
			}
			edges = append(edges, e)
			if !seen[e.To] {
				seen[e.To] = true
				fmt.Fprintf(&buf, "  %q [label=%q];\n", e.To, label(e.To))
			}
		}
	}

	buf.WriteString("\n")
	for _, e := range edges {
		if e.Has(KindNormal) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [style=dashed, label=%q];\n", e.From, e.To, kindLabel(e.Kinds))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func kindLabel(kinds []Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ",")
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
