// Package cli implements the thirdparty command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/thirdparty/pkg/buildinfo"
	"github.com/matzehuels/thirdparty/pkg/metadata"
	"github.com/matzehuels/thirdparty/pkg/observability"
	"github.com/matzehuels/thirdparty/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "thirdparty"

	// cargoEnv names the environment variable selecting the resolver binary.
	cargoEnv = "CARGO"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand, it generates the notices file.
func (c *CLI) RootCommand() *cobra.Command {
	var flags reportFlags

	root := &cobra.Command{
		Use:   appName + " [repo]",
		Short: "Generate a third-party license notice for a Rust workspace",
		Long: `thirdparty collects the direct dependencies of a Rust workspace from cargo metadata,
reads the LICENSE/NOTICE files shipped with each of them, and writes a single
markdown notices file (THIRD_PARTY.md by default) next to the repository.

Only direct dependencies of the default workspace members are listed.
First-party workspace crates are skipped.`,
		Example: `  thirdparty                          # current directory, writes ../THIRD_PARTY.md
  thirdparty ./my-repo -o NOTICE.md
  thirdparty --include-dev --include-build`,
		Args:          cobra.MaximumNArgs(1),
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, repoArg(args))
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.ValidArgsFunction = completeRepoDir
	flags.register(root)

	root.AddCommand(c.listCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Stage events are logged,
// and forwarded to spinner when one is given.
func (c *CLI) newRunner(ctx context.Context, cargo string, spinner *Spinner) *pipeline.Runner {
	logger := loggerFromContext(ctx)
	var hooks observability.PipelineHooks = observability.NewLogHooks(logger)
	if spinner != nil {
		hooks = &spinnerHooks{PipelineHooks: hooks, spinner: spinner}
	}
	return pipeline.NewRunner(metadata.NewLoader(cargo), logger, hooks)
}

// defaultCargo returns $CARGO, or "cargo" when unset.
func defaultCargo() string {
	if v := os.Getenv(cargoEnv); v != "" {
		return v
	}
	return metadata.DefaultCargo
}

func repoArg(args []string) string {
	if len(args) == 0 {
		return pipeline.DefaultRepoPath
	}
	return args[0]
}
