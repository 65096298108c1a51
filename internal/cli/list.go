package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/matzehuels/thirdparty/pkg/catalog"
	"github.com/matzehuels/thirdparty/pkg/license"
)

// listCommand creates the list command, which shows the dependencies that
// would be included in the notices file without writing it.
func (c *CLI) listCommand() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "list [repo]",
		Short: "List the direct third-party dependencies and their license files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, repoArg(args))
			if err != nil {
				return err
			}
			return c.runList(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags.registerSelection(cmd)
	cmd.ValidArgsFunction = completeRepoDir
	return cmd
}

func (c *CLI) runList(ctx context.Context, w io.Writer, opts runOptions) error {
	logger := loggerFromContext(ctx)

	spinner := startSpinner(ctx, logger, "Resolving dependencies...")
	result, err := c.newRunner(ctx, opts.cargo, spinner).Resolve(ctx, opts.Options)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("resolve dependencies: %w", err)
	}

	if len(result.Dependencies) == 0 {
		printInfo("No direct third-party dependencies in %s", result.RepoRoot)
		return nil
	}

	fmt.Fprintln(w, dependencyTable(result.Dependencies))
	printDetail("%d direct third-party deps of %d roots (kinds: %s)",
		len(result.Dependencies), len(result.Roots), strings.Join(opts.Selection.Kinds(), ", "))
	return nil
}

// dependencyTable renders deps as a table with one row per package.
// Packages without license files are highlighted.
func dependencyTable(deps []catalog.Package) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	files := lo.Map(deps, func(p catalog.Package, _ int) []license.File { return license.Locate(p) })

	rows := lo.Map(deps, func(p catalog.Package, i int) []string {
		names := lo.Map(files[i], func(f license.File, _ int) string { return f.Rel })
		found := strings.Join(names, ", ")
		if found == "" {
			found = "none"
		}
		return []string{p.Name, p.Version, lo.CoalesceOrEmpty(p.License, "-"), sourceLabel(p), found}
	})

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Version", "License", "Source", "License files").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 4 && len(files[row]) == 0 {
				return cellStyle.Foreground(colorYellow)
			}
			return cellStyle
		})
}

// sourceLabel shortens a source descriptor to its kind, e.g. "registry" or
// "git".
func sourceLabel(p catalog.Package) string {
	if p.Source == "" {
		return "path"
	}
	kind, _, _ := strings.Cut(p.Source, "+")
	return kind
}

