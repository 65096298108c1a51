package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/matzehuels/thirdparty/pkg/catalog"
	"github.com/matzehuels/thirdparty/pkg/depgraph"
	"github.com/matzehuels/thirdparty/pkg/errors"
	"github.com/matzehuels/thirdparty/pkg/pipeline"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// graphOpts holds the flags specific to the graph command.
type graphOpts struct {
	format     string // output format: "dot" or "svg"
	output     string // output file path (stdout if empty)
	firstParty bool   // also draw edges to first-party workspace crates
}

// graphCommand creates the graph command, which draws the workspace roots
// and the dependencies they declare directly.
func (c *CLI) graphCommand() *cobra.Command {
	var flags reportFlags
	opts := graphOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "graph [repo]",
		Short: "Draw the workspace roots and their direct dependencies",
		Long: `Draw the workspace roots and the dependencies they declare directly,
as Graphviz DOT or SVG. Edges that are not normal dependencies are dashed.

Examples:
  thirdparty graph > deps.dot
  thirdparty graph --format svg -o deps.svg --include-dev`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateChoice("format", opts.format, formatDOT, formatSVG); err != nil {
				return err
			}
			runOpts, err := flags.options(cmd, repoArg(args))
			if err != nil {
				return err
			}
			return c.runGraph(cmd.Context(), cmd.OutOrStdout(), runOpts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.firstParty, "first-party", false, "include edges to first-party workspace crates")
	flags.registerSelection(cmd)
	cmd.ValidArgsFunction = completeRepoDir
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatDOT, formatSVG}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, stdout io.Writer, runOpts runOptions, opts graphOpts) error {
	result, err := c.newRunner(ctx, runOpts.cargo, nil).Resolve(ctx, runOpts.Options)
	if err != nil {
		return fmt.Errorf("resolve dependencies: %w", err)
	}

	dot := graphDOT(result, runOpts.Selection.WantsEdge, opts.firstParty)

	data := []byte(dot)
	if opts.format == formatSVG {
		if data, err = depgraph.RenderSVG(ctx, dot); err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
	}

	if opts.output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Graph complete")
	printFile(opts.output)
	return nil
}

// graphDOT draws the roots of result with the edges wanted allows. Edges to
// packages outside the selection are dropped unless firstParty is set.
func graphDOT(result *pipeline.Result, wanted func(depgraph.Edge) bool, firstParty bool) string {
	selected := lo.SliceToMap(result.Dependencies, func(p catalog.Package) (string, struct{}) {
		return p.ID, struct{}{}
	})

	return depgraph.ToDOT(result.Graph, result.Roots, depgraph.DOTOptions{
		Label: func(id string) string {
			if p, ok := result.Catalog.Get(id); ok {
				return p.Title()
			}
			return id
		},
		Keep: func(e depgraph.Edge) bool {
			if !wanted(e) {
				return false
			}
			_, ok := selected[e.To]
			return ok || firstParty
		},
	})
}
