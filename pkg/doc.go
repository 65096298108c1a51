// Package pkg provides the libraries behind thirdparty, a generator for
// third-party license notices of Rust workspaces.
//
// # Overview
//
// thirdparty asks cargo for the resolved dependency graph of a workspace,
// keeps the dependencies the workspace declares directly, and writes their
// license texts into one markdown document. The pkg directory is organized
// into three areas:
//
//  1. Domain logic ([metadata], [depgraph], [catalog], [selection], [license], [report])
//  2. Orchestration ([pipeline], [observability])
//  3. Support ([config], [errors], [buildinfo])
//
// # Architecture
//
// The data flow through a run:
//
//	cargo metadata --format-version 1
//	         ↓
//	    [metadata] package (decode, build the dependency graph)
//	         ↓
//	    [catalog] package (package records by ID)
//	         ↓
//	    [selection] package (direct third-party dependencies of the roots)
//	         ↓
//	    [report] package (license files via [license], markdown rendering)
//	         ↓
//	    THIRD_PARTY.md next to the repository
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/thirdparty/pkg/metadata"
//	    "github.com/matzehuels/thirdparty/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(metadata.NewLoader(""), nil, nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{RepoPath: "."})
//	if err != nil {
//	    return err
//	}
//	err = runner.Write(result)
//
// # Main Packages
//
// [metadata] - Invokes the resolver and decodes its JSON output. Builds a
// [depgraph.Graph] from the resolve section and exposes the default
// workspace roots.
//
// [depgraph] - Directed dependency graph with kinded edges (normal, dev,
// build) and Graphviz DOT/SVG output.
//
// [selection] - One-hop walk from the roots with kind filtering, first-party
// exclusion and deterministic ordering.
//
// [license] - License file discovery and permissive, size-capped reading.
//
// [report] - Markdown rendering, heading anchors and the output location.
//
// [pipeline] - Runs the stages in order and reports events to
// [observability] hooks.
//
// [metadata]: https://pkg.go.dev/github.com/matzehuels/thirdparty/pkg/metadata
// [depgraph]: https://pkg.go.dev/github.com/matzehuels/thirdparty/pkg/depgraph
// [depgraph.Graph]: https://pkg.go.dev/github.com/matzehuels/thirdparty/pkg/depgraph#Graph
// [catalog]: https://pkg.go.dev/github.com/matzehuels/thirdparty/pkg/catalog
// [selection]: https://pkg.go.dev/github.com/matzehuels/thirdparty/pkg/selection
// [license]: https://pkg.go.dev/github.com/matzehuels/thirdparty/pkg/license
// [report]: https://pkg.go.dev/github.com/matzehuels/thirdparty/pkg/report
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/thirdparty/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/thirdparty/pkg/observability
// [config]: https://pkg.go.dev/github.com/matzehuels/thirdparty/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/thirdparty/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/thirdparty/pkg/buildinfo
package pkg
