package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// runGenerate resolves the workspace, renders the notices document and
// writes it next to the repository.
func (c *CLI) runGenerate(ctx context.Context, opts runOptions) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	spinner := startSpinner(ctx, logger, "Resolving dependencies...")
	runner := c.newRunner(ctx, opts.cargo, spinner)

	result, err := runner.Execute(ctx, opts.Options)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("generate notices: %w", err)
	}

	if err := runner.Write(result); err != nil {
		return fmt.Errorf("write %s: %w", result.OutputPath, err)
	}
	prog.done("Generated notices")

	printSuccess("Wrote %s (%d direct third-party deps).", result.OutputPath, len(result.Dependencies))
	if n := result.Stats.Warnings; n > 0 {
		printWarning("%d license file(s) could not be read; see the notices above", n)
	}
	return nil
}

// startSpinner starts a progress spinner on stderr, unless debug logging is
// enabled and log lines would interleave with it.
func startSpinner(ctx context.Context, logger *log.Logger, message string) *Spinner {
	if logger.GetLevel() <= log.DebugLevel {
		return nil
	}
	s := newSpinner(ctx, os.Stderr, message)
	s.Start()
	return s
}
