package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/thirdparty/pkg/catalog"
	"github.com/matzehuels/thirdparty/pkg/metadata"
	"github.com/matzehuels/thirdparty/pkg/observability"
	"github.com/matzehuels/thirdparty/pkg/report"
	"github.com/matzehuels/thirdparty/pkg/selection"
)

// MetadataLoader produces resolver metadata for a repository root.
// *metadata.Loader is the production implementation.
type MetadataLoader interface {
	Load(ctx context.Context, repoRoot string) (*metadata.Metadata, error)
}

// Runner executes the pipeline. It keeps no state between runs.
type Runner struct {
	Loader MetadataLoader
	Logger *log.Logger
	Hooks  observability.PipelineHooks
}

// NewRunner creates a runner. A nil loader runs "cargo" from PATH, a nil
// logger uses log.Default(), and nil hooks are replaced by no-ops.
func NewRunner(loader MetadataLoader, logger *log.Logger, hooks observability.PipelineHooks) *Runner {
	if loader == nil {
		loader = metadata.NewLoader("")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Loader: loader,
		Logger: logger,
		Hooks:  observability.OrNoop(hooks),
	}
}

// Execute runs the complete load → select → render pipeline. The document is
// returned in the result; call Write to store it.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	result, err := r.resolve(ctx, opts)
	if err != nil {
		return nil, err
	}
	hooks := observability.OrNoop(r.Hooks)

	renderStart := time.Now()
	hooks.OnRenderStart(ctx, len(result.Dependencies))
	result.Document = report.Render(result.Dependencies, report.Options{
		RepoRoot:    result.RepoRoot,
		Selection:   opts.Selection,
		GeneratedAt: opts.GeneratedAt,
		Warn: func(format string, args ...any) {
			result.Stats.Warnings++
			hooks.OnWarning(ctx, fmt.Sprintf(format, args...))
		},
	})
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, len(result.Document), result.Stats.RenderTime)

	return result, nil
}

// Resolve runs the load and select stages only. The returned result has no
// document.
func (r *Runner) Resolve(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return r.resolve(ctx, opts)
}

func (r *Runner) resolve(ctx context.Context, opts Options) (*Result, error) {
	hooks := observability.OrNoop(r.Hooks)
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	repoRoot, err := resolveRoot(opts.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("resolve repository path: %w", err)
	}
	result := &Result{
		RepoRoot:   repoRoot,
		OutputPath: report.OutputPath(repoRoot, opts.Output),
	}

	// Stage 1: Load
	loadStart := time.Now()
	hooks.OnLoadStart(ctx, repoRoot)
	meta, err := r.load(ctx, repoRoot, opts.MetadataFile)
	result.Stats.LoadTime = time.Since(loadStart)
	if err != nil {
		hooks.OnLoadComplete(ctx, repoRoot, 0, result.Stats.LoadTime, err)
		return nil, fmt.Errorf("load metadata: %w", err)
	}
	hooks.OnLoadComplete(ctx, repoRoot, len(meta.Packages), result.Stats.LoadTime, nil)

	g, err := meta.Graph()
	if err != nil {
		return nil, fmt.Errorf("load metadata: %w", err)
	}
	result.Graph = g

	// Stage 2: Catalog
	cat, err := catalog.Build(meta.Packages)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	result.Catalog = cat
	result.Stats.PackageCount = cat.Len()

	// Stage 3: Select
	selectStart := time.Now()
	result.Roots = meta.DefaultRoots()
	result.Dependencies = selection.Select(g, result.Roots, cat, repoRoot, opts.Selection)
	result.Stats.SelectTime = time.Since(selectStart)
	result.Stats.DependencyCount = len(result.Dependencies)
	hooks.OnSelectComplete(ctx, len(result.Roots), len(result.Dependencies), result.Stats.SelectTime)

	logger.Info("selected direct dependencies",
		"roots", len(result.Roots),
		"packages", result.Stats.PackageCount,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"deps", result.Stats.DependencyCount,
		"kinds", opts.Selection.Kinds())

	return result, nil
}

// Write stores the rendered document at result.OutputPath.
func (r *Runner) Write(result *Result) error {
	return report.Write(result.OutputPath, result.Document)
}

func (r *Runner) load(ctx context.Context, repoRoot, metadataFile string) (*metadata.Metadata, error) {
	if metadataFile != "" {
		return metadata.ReadFile(metadataFile)
	}
	loader := r.Loader
	if loader == nil {
		loader = metadata.NewLoader("")
	}
	return loader.Load(ctx, repoRoot)
}

// resolveRoot makes path absolute and resolves symlinks when it exists.
func resolveRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}
