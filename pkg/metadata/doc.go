// Package metadata loads the resolved dependency graph of a Rust workspace.
//
// # Overview
//
// The resolver is `cargo metadata --format-version 1`, run with the
// repository root as its working directory. Its JSON output is decoded into
// [Metadata], which exposes:
//
//   - the raw package list ([Metadata.Packages]), consumed by the catalog builder
//   - the resolve graph as a [depgraph.Graph] ([Metadata.Graph])
//   - the workspace member set ([Metadata.Members])
//   - the default workspace roots ([Metadata.DefaultRoots]), falling back to all
//     members when the resolver reports no default subset
//
// # Usage
//
//	loader := metadata.NewLoader("cargo")
//	meta, err := loader.Load(ctx, "/src/engine")
//	if err != nil {
//	    return err // RESOLVER_INVOCATION_FAILED or INVALID_METADATA
//	}
//	g, err := meta.Graph() // MISSING_RESOLVE_GRAPH if resolve is absent
//
// A previously captured document can be parsed with [ReadFile] or [Parse].
//
// # Blocking
//
// Load blocks until the resolver exits. There is no timeout; cancelling ctx
// (for example on SIGINT) kills the process.
//
// [depgraph.Graph]: github.com/matzehuels/thirdparty/pkg/depgraph.Graph
package metadata
