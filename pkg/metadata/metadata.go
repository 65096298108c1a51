package metadata

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"

	"github.com/matzehuels/thirdparty/pkg/depgraph"
	"github.com/matzehuels/thirdparty/pkg/errors"
)

// Parse decodes a resolver JSON document.
func Parse(data []byte) (*Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "decode cargo metadata")
	}
	return &m, nil
}

// ReadFile parses a resolver JSON document stored on disk.
func ReadFile(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "read metadata file %s", path)
	}
	return Parse(data)
}

// Members returns the workspace member IDs as a set.
func (m *Metadata) Members() map[string]struct{} {
	return lo.SliceToMap(m.WorkspaceMembers, func(id string) (string, struct{}) {
		return id, struct{}{}
	})
}

// DefaultRoots returns the IDs the report is generated for: the default
// workspace members, or every workspace member if the resolver reports no
// default subset (older cargo versions, or an empty list).
func (m *Metadata) DefaultRoots() []string {
	if len(m.WorkspaceDefaultMembers) > 0 {
		return lo.Uniq(m.WorkspaceDefaultMembers)
	}
	return lo.Uniq(m.WorkspaceMembers)
}

// Graph builds the dependency graph from the resolve section.
// Returns MISSING_RESOLVE_GRAPH when the section is absent or carries no
// node list (`"resolve": {}`). An explicit empty list is a valid empty graph.
func (m *Metadata) Graph() (*depgraph.Graph, error) {
	if m.Resolve == nil || m.Resolve.Nodes == nil {
		return nil, errors.New(errors.ErrCodeMissingResolveGraph, "cargo metadata did not include a `resolve` graph")
	}

	g := depgraph.New()
	for _, n := range m.Resolve.Nodes {
		if err := g.EnsureNode(n.ID); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "resolve node %q", n.ID)
		}
	}

	for _, n := range m.Resolve.Nodes {
		for _, d := range n.Deps {
			if err := g.EnsureNode(d.Pkg); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "dependency of %q", n.ID)
			}
			edge := depgraph.Edge{From: n.ID, To: d.Pkg, Kinds: edgeKinds(d.DepKinds)}
			if err := g.AddEdge(edge); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "edge %q -> %q", n.ID, d.Pkg)
			}
		}
	}
	return g, nil
}

// edgeKinds maps dep_kinds entries to graph kinds. A null kind is a normal
// dependency; duplicates (the same kind under several targets) collapse.
func edgeKinds(infos []DepKindInfo) []depgraph.Kind {
	kinds := lo.Map(infos, func(info DepKindInfo, _ int) depgraph.Kind {
		if info.Kind == nil || *info.Kind == "" {
			return depgraph.KindNormal
		}
		return depgraph.Kind(*info.Kind)
	})
	return lo.Uniq(kinds)
}
