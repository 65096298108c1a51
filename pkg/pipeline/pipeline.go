// Package pipeline runs report generation end to end.
//
// The pipeline consists of four stages, executed strictly in order:
//
//  1. Load: run the resolver (or read a captured metadata file) and build
//     the dependency graph
//  2. Catalog: index the package records by identifier
//  3. Select: pick the direct third-party dependencies of the default
//     workspace roots
//  4. Render: locate and read license files and build the document
//
// Stages 1 to 3 are available on their own through [Runner.Resolve], which
// the list and graph commands use.
//
// # Usage
//
//	runner := pipeline.NewRunner(metadata.NewLoader(""), logger, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{RepoPath: "."})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = runner.Write(result)
package pipeline

import (
	"time"

	"github.com/matzehuels/thirdparty/pkg/catalog"
	"github.com/matzehuels/thirdparty/pkg/depgraph"
	"github.com/matzehuels/thirdparty/pkg/errors"
	"github.com/matzehuels/thirdparty/pkg/report"
	"github.com/matzehuels/thirdparty/pkg/selection"
)

// DefaultRepoPath is the repository path used when none is given.
const DefaultRepoPath = "."

// Options contains all configuration for one pipeline run.
type Options struct {
	RepoPath     string            // Repository root (default: DefaultRepoPath)
	Output       string            // Output file name, written next to the repository (default: report.DefaultFilename)
	Selection    selection.Options // Dependency kinds to follow
	MetadataFile string            // Read resolver output from this file instead of running the resolver

	// GeneratedAt is the timestamp printed in the report (default: now).
	GeneratedAt time.Time
}

// ValidateAndSetDefaults fills in defaults and checks the user-supplied values.
func (o *Options) ValidateAndSetDefaults() error {
	if o.RepoPath == "" {
		o.RepoPath = DefaultRepoPath
	}
	if o.Output == "" {
		o.Output = report.DefaultFilename
	}
	if o.GeneratedAt.IsZero() {
		o.GeneratedAt = time.Now()
	}
	if err := errors.ValidateRepoPath(o.RepoPath); err != nil {
		return err
	}
	return errors.ValidateOutputFilename(o.Output)
}

// Result contains the outputs of a pipeline run.
type Result struct {
	RepoRoot     string            // Resolved absolute repository root
	OutputPath   string            // Where the document is written
	Roots        []string          // Default workspace roots
	Graph        *depgraph.Graph   // Resolved dependency graph
	Catalog      *catalog.Catalog  // All known packages
	Dependencies []catalog.Package // Selected direct third-party dependencies, in report order
	Document     string            // Rendered markdown; empty after Resolve
	Stats        Stats
}

// Stats contains timing and count information.
type Stats struct {
	LoadTime        time.Duration
	SelectTime      time.Duration
	RenderTime      time.Duration
	PackageCount    int
	DependencyCount int
	Warnings        int
}
