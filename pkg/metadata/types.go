package metadata

// Metadata is the decoded output of `cargo metadata --format-version 1`.
// Fields the generator does not use are not decoded.
type Metadata struct {
	Packages                []Package `json:"packages"`
	Resolve                 *Resolve  `json:"resolve"`
	WorkspaceMembers        []string  `json:"workspace_members"`
	WorkspaceDefaultMembers []string  `json:"workspace_default_members,omitempty"`
	WorkspaceRoot           string    `json:"workspace_root"`
	Version                 int       `json:"version"`
}

// Package is one entry of the resolver's package list.
// Optional fields are pointers so that null and absent stay distinguishable
// from empty strings while decoding.
type Package struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Version      string  `json:"version"`
	ManifestPath string  `json:"manifest_path"`
	License      *string `json:"license"`
	LicenseFile  *string `json:"license_file"`
	Repository   *string `json:"repository"`
	Source       *string `json:"source"`
}

// Resolve is the resolved dependency graph section.
type Resolve struct {
	Nodes []Node  `json:"nodes"`
	Root  *string `json:"root"`
}

// Node is a package in the resolve graph with its enabled dependencies.
type Node struct {
	ID   string    `json:"id"`
	Deps []NodeDep `json:"deps"`
}

// NodeDep is an edge from a resolve node to one of its dependencies.
type NodeDep struct {
	Name     string        `json:"name"`
	Pkg      string        `json:"pkg"`
	DepKinds []DepKindInfo `json:"dep_kinds"`
}

// DepKindInfo describes one way a dependency is declared.
// Kind is null for normal dependencies.
type DepKindInfo struct {
	Kind   *string `json:"kind"`
	Target *string `json:"target"`
}
