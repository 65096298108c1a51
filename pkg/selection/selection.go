// Package selection picks the direct third-party dependencies of a workspace.
//
// Only one hop from the default workspace roots is examined: the report covers
// what the workspace itself declares, not the full transitive closure.
// First-party packages (no origin and a manifest inside the repository) are
// never selected.
package selection

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/matzehuels/thirdparty/pkg/catalog"
	"github.com/matzehuels/thirdparty/pkg/depgraph"
)

// Options controls which dependency edges are followed.
type Options struct {
	IncludeDev   bool // Follow dev-dependency edges
	IncludeBuild bool // Follow build-dependency edges

	// IncludeOptional has no effect. The resolver's edge list only contains
	// dependencies that are enabled, so a disabled optional dependency never
	// appears, and an enabled one cannot be told apart from a required one.
	IncludeOptional bool
}

// Wants reports whether an edge of kind k is followed.
func (o Options) Wants(k depgraph.Kind) bool {
	switch k {
	case depgraph.KindNormal:
		return true
	case depgraph.KindDev:
		return o.IncludeDev
	case depgraph.KindBuild:
		return o.IncludeBuild
	default:
		return false
	}
}

// WantsEdge reports whether any of the edge's kinds is followed.
func (o Options) WantsEdge(e depgraph.Edge) bool {
	if len(e.Kinds) == 0 {
		return o.Wants(depgraph.KindNormal)
	}
	return lo.SomeBy(e.Kinds, o.Wants)
}

// Kinds lists the followed dependency kinds in report order.
func (o Options) Kinds() []string {
	kinds := []string{string(depgraph.KindNormal)}
	if o.IncludeDev {
		kinds = append(kinds, string(depgraph.KindDev))
	}
	if o.IncludeBuild {
		kinds = append(kinds, string(depgraph.KindBuild))
	}
	return kinds
}

// Select returns the direct third-party dependencies of roots, deduplicated
// by ID and ordered by (lowercase name, version). IDs missing from the catalog
// are skipped. An empty result is valid.
func Select(g *depgraph.Graph, roots []string, cat *catalog.Catalog, repoRoot string, opts Options) []catalog.Package {
	direct := make(map[string]struct{})
	for _, root := range roots {
		for _, e := range g.Outgoing(root) {
			if opts.WantsEdge(e) {
				direct[e.To] = struct{}{}
			}
		}
	}

	ids := lo.Keys(direct)
	slices.Sort(ids)

	result := lo.FilterMap(ids, func(id string, _ int) (catalog.Package, bool) {
		pkg, ok := cat.Get(id)
		if !ok {
			return catalog.Package{}, false
		}
		return pkg, !IsFirstParty(pkg, repoRoot)
	})

	slices.SortStableFunc(result, compare)
	return result
}

func compare(a, b catalog.Package) int {
	return cmp.Or(
		cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
		cmp.Compare(a.Version, b.Version),
	)
}

// IsFirstParty reports whether pkg has no origin and its manifest lies inside
// repoRoot.
func IsFirstParty(pkg catalog.Package, repoRoot string) bool {
	return pkg.IsLocal() && IsWithin(pkg.ManifestPath, repoRoot)
}

// IsWithin reports whether path is root or lies below it. Both paths are made
// absolute, and their longest existing prefix is symlink-resolved.
func IsWithin(path, root string) bool {
	rel, err := filepath.Rel(canonical(root), canonical(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	var rest []string
	for dir := abs; ; dir = filepath.Dir(dir) {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			slices.Reverse(rest)
			return filepath.Join(append([]string{resolved}, rest...)...)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs
		}
		rest = append(rest, filepath.Base(dir))
	}
}
