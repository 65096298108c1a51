package selection

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/thirdparty/pkg/catalog"
	"github.com/matzehuels/thirdparty/pkg/depgraph"
	"github.com/matzehuels/thirdparty/pkg/metadata"
)

const registry = "registry+https://github.com/rust-lang/crates.io-index"

// fixture describes a workspace for Select tests.
type fixture struct {
	repo  string
	cat   *catalog.Catalog
	graph *depgraph.Graph
}

type pkgSpec struct {
	id, name, version string
	manifest          string // absolute manifest path
	source            string
}

type edgeSpec struct {
	from, to string
	kinds    []depgraph.Kind
}

func newFixture(t *testing.T, repo string, pkgs []pkgSpec, edges []edgeSpec) fixture {
	t.Helper()

	raw := make([]metadata.Package, 0, len(pkgs))
	g := depgraph.New()
	for _, p := range pkgs {
		mp := metadata.Package{ID: p.id, Name: p.name, Version: p.version, ManifestPath: p.manifest}
		if p.source != "" {
			src := p.source
			mp.Source = &src
		}
		raw = append(raw, mp)
		if err := g.AddNode(depgraph.Node{ID: p.id}); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(depgraph.Edge{From: e.from, To: e.to, Kinds: e.kinds}); err != nil {
			t.Fatal(err)
		}
	}

	cat, err := catalog.Build(raw)
	if err != nil {
		t.Fatal(err)
	}
	return fixture{repo: repo, cat: cat, graph: g}
}

func titles(pkgs []catalog.Package) []string {
	out := make([]string, len(pkgs))
	for i, p := range pkgs {
		out[i] = p.Title()
	}
	return out
}

var (
	normal = []depgraph.Kind{depgraph.KindNormal}
	dev    = []depgraph.Kind{depgraph.KindDev}
	build  = []depgraph.Kind{depgraph.KindBuild}
)

func TestSelectDirectOnly(t *testing.T) {
	repo := t.TempDir()
	ext := t.TempDir()
	f := newFixture(t, repo, []pkgSpec{
		{"app", "app", "0.1.0", filepath.Join(repo, "Cargo.toml"), ""},
		{"alpha", "alpha", "1.0.0", filepath.Join(ext, "alpha", "Cargo.toml"), registry},
		{"beta", "beta", "2.0.0", filepath.Join(ext, "beta", "Cargo.toml"), registry},
	}, []edgeSpec{
		{"app", "alpha", normal},
		{"alpha", "beta", normal},
	})

	got := titles(Select(f.graph, []string{"app"}, f.cat, f.repo, Options{}))
	if !slices.Equal(got, []string{"alpha 1.0.0"}) {
		t.Errorf("Select() = %v, want [alpha 1.0.0]", got)
	}
}

func TestSelectFirstPartyExclusion(t *testing.T) {
	repo := t.TempDir()
	ext := t.TempDir()
	f := newFixture(t, repo, []pkgSpec{
		{"app", "app", "0.1.0", filepath.Join(repo, "app", "Cargo.toml"), ""},
		{"cli", "cli", "0.1.0", filepath.Join(repo, "cli", "Cargo.toml"), ""},
		{"core", "core", "0.1.0", filepath.Join(repo, "crates", "core", "Cargo.toml"), ""},
		{"vendored", "vendored", "0.3.0", filepath.Join(ext, "vendored", "Cargo.toml"), ""},
		{"inrepo-registry", "inrepo-registry", "1.0.0", filepath.Join(repo, "vendor", "x", "Cargo.toml"), registry},
	}, []edgeSpec{
		{"app", "core", normal},
		{"cli", "core", normal},
		{"app", "vendored", normal},
		{"cli", "inrepo-registry", normal},
	})

	got := titles(Select(f.graph, []string{"app", "cli"}, f.cat, f.repo, Options{}))
	want := []string{"inrepo-registry 1.0.0", "vendored 0.3.0"}
	if !slices.Equal(got, want) {
		t.Errorf("Select() = %v, want %v", got, want)
	}
}

func TestSelectDeduplicatesAcrossRoots(t *testing.T) {
	repo := t.TempDir()
	ext := t.TempDir()
	f := newFixture(t, repo, []pkgSpec{
		{"a", "a", "0.1.0", filepath.Join(repo, "a", "Cargo.toml"), ""},
		{"b", "b", "0.1.0", filepath.Join(repo, "b", "Cargo.toml"), ""},
		{"serde", "serde", "1.0.0", filepath.Join(ext, "serde", "Cargo.toml"), registry},
	}, []edgeSpec{
		{"a", "serde", normal},
		{"b", "serde", []depgraph.Kind{depgraph.KindNormal, depgraph.KindDev}},
	})

	got := Select(f.graph, []string{"a", "b", "a"}, f.cat, f.repo, Options{IncludeDev: true})
	if len(got) != 1 || got[0].ID != "serde" {
		t.Errorf("Select() = %v, want exactly serde", titles(got))
	}
}

func TestSelectOrdering(t *testing.T) {
	repo := t.TempDir()
	ext := t.TempDir()
	f := newFixture(t, repo, []pkgSpec{
		{"app", "app", "0.1.0", filepath.Join(repo, "Cargo.toml"), ""},
		{"zeta", "zeta", "1.0.0", filepath.Join(ext, "zeta", "Cargo.toml"), registry},
		{"Beta", "Beta", "1.0.0", filepath.Join(ext, "Beta", "Cargo.toml"), registry},
		{"alpha-2", "alpha", "2.0.0", filepath.Join(ext, "alpha2", "Cargo.toml"), registry},
		{"alpha-10", "alpha", "10.0.0", filepath.Join(ext, "alpha10", "Cargo.toml"), registry},
		{"gamma-git", "gamma", "1.0.0", filepath.Join(ext, "gamma-git", "Cargo.toml"), "git+https://example.com/gamma"},
		{"gamma-reg", "gamma", "1.0.0", filepath.Join(ext, "gamma-reg", "Cargo.toml"), registry},
	}, []edgeSpec{
		{"app", "zeta", normal},
		{"app", "gamma-reg", normal},
		{"app", "Beta", normal},
		{"app", "alpha-2", normal},
		{"app", "gamma-git", normal},
		{"app", "alpha-10", normal},
	})

	got := Select(f.graph, []string{"app"}, f.cat, f.repo, Options{})

	// Versions compare as strings, so 10.0.0 sorts before 2.0.0.
	wantTitles := []string{"alpha 10.0.0", "alpha 2.0.0", "Beta 1.0.0", "gamma 1.0.0", "gamma 1.0.0", "zeta 1.0.0"}
	if !slices.Equal(titles(got), wantTitles) {
		t.Fatalf("Select() = %v, want %v", titles(got), wantTitles)
	}
	// Equal keys keep ID order.
	if got[3].ID != "gamma-git" || got[4].ID != "gamma-reg" {
		t.Errorf("equal keys not in ID order: %s, %s", got[3].ID, got[4].ID)
	}
}

func TestSelectKindFiltering(t *testing.T) {
	repo := t.TempDir()
	ext := t.TempDir()
	f := newFixture(t, repo, []pkgSpec{
		{"app", "app", "0.1.0", filepath.Join(repo, "Cargo.toml"), ""},
		{"serde", "serde", "1.0.0", filepath.Join(ext, "serde", "Cargo.toml"), registry},
		{"tempfile", "tempfile", "3.0.0", filepath.Join(ext, "tempfile", "Cargo.toml"), registry},
		{"cc", "cc", "1.0.0", filepath.Join(ext, "cc", "Cargo.toml"), registry},
		{"nokind", "nokind", "1.0.0", filepath.Join(ext, "nokind", "Cargo.toml"), registry},
		{"weird", "weird", "1.0.0", filepath.Join(ext, "weird", "Cargo.toml"), registry},
	}, []edgeSpec{
		{"app", "serde", normal},
		{"app", "tempfile", dev},
		{"app", "cc", build},
		{"app", "nokind", nil},
		{"app", "weird", []depgraph.Kind{"unknown"}},
	})

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{"normal only", Options{}, []string{"nokind 1.0.0", "serde 1.0.0"}},
		{"with dev", Options{IncludeDev: true}, []string{"nokind 1.0.0", "serde 1.0.0", "tempfile 3.0.0"}},
		{"with build", Options{IncludeBuild: true}, []string{"cc 1.0.0", "nokind 1.0.0", "serde 1.0.0"}},
		{"all", Options{IncludeDev: true, IncludeBuild: true}, []string{"cc 1.0.0", "nokind 1.0.0", "serde 1.0.0", "tempfile 3.0.0"}},
		{"optional is a no-op", Options{IncludeOptional: true}, []string{"nokind 1.0.0", "serde 1.0.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Select(f.graph, []string{"app"}, f.cat, f.repo, tt.opts))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Select() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectEmpty(t *testing.T) {
	repo := t.TempDir()
	f := newFixture(t, repo, []pkgSpec{
		{"app", "app", "0.1.0", filepath.Join(repo, "Cargo.toml"), ""},
	}, nil)

	if got := Select(f.graph, []string{"app"}, f.cat, f.repo, Options{}); len(got) != 0 {
		t.Errorf("Select() = %v, want empty", titles(got))
	}
	if got := Select(f.graph, nil, f.cat, f.repo, Options{}); len(got) != 0 {
		t.Errorf("Select(no roots) = %v, want empty", titles(got))
	}
}

func TestSelectSkipsUnknownPackages(t *testing.T) {
	repo := t.TempDir()
	f := newFixture(t, repo, []pkgSpec{
		{"app", "app", "0.1.0", filepath.Join(repo, "Cargo.toml"), ""},
	}, nil)
	_ = f.graph.AddNode(depgraph.Node{ID: "ghost"})
	_ = f.graph.AddEdge(depgraph.Edge{From: "app", To: "ghost"})

	if got := Select(f.graph, []string{"app"}, f.cat, f.repo, Options{}); len(got) != 0 {
		t.Errorf("Select() = %v, want empty", titles(got))
	}
}

func TestOptionsKinds(t *testing.T) {
	tests := []struct {
		opts Options
		want []string
	}{
		{Options{}, []string{"normal"}},
		{Options{IncludeDev: true}, []string{"normal", "dev"}},
		{Options{IncludeBuild: true}, []string{"normal", "build"}},
		{Options{IncludeDev: true, IncludeBuild: true, IncludeOptional: true}, []string{"normal", "dev", "build"}},
	}
	for _, tt := range tests {
		if got := tt.opts.Kinds(); !slices.Equal(got, tt.want) {
			t.Errorf("%+v.Kinds() = %v, want %v", tt.opts, got, tt.want)
		}
	}
}

func TestIsWithin(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "crates", "core"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"root itself", root, true},
		{"existing child", filepath.Join(root, "crates", "core"), true},
		{"missing child", filepath.Join(root, "crates", "missing", "Cargo.toml"), true},
		{"sibling with shared prefix", root + "-other/Cargo.toml", false},
		{"parent", filepath.Dir(root), false},
		{"dotdot escape", filepath.Join(root, "crates", "..", "..", "x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWithin(tt.path, root); got != tt.want {
				t.Errorf("IsWithin(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsWithinSymlinkedRoot(t *testing.T) {
	target := t.TempDir()
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if !IsWithin(filepath.Join(target, "Cargo.toml"), link) {
		t.Error("path under the real directory should be within the symlinked root")
	}
}
