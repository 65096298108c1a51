package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/thirdparty/internal/cli"
	errs "github.com/matzehuels/thirdparty/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, diagnostic(err))
		os.Exit(1)
	}
}

// diagnostic formats a fatal error for stderr. Coded errors are shown with
// their code and message, followed by the underlying cause (for a failed
// resolver this carries its captured stderr).
func diagnostic(err error) string {
	code := errs.GetCode(err)
	if code == "" {
		return "Error: " + err.Error()
	}
	msg := fmt.Sprintf("Error [%s]: %s", code, errs.UserMessage(err))
	var coded *errs.Error
	if errors.As(err, &coded) && coded.Cause != nil {
		msg += "\n" + coded.Cause.Error()
	}
	return msg
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Apply the log level before the root's own pre-run attaches the logger.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := cli.LogInfo
		if verbose {
			level = cli.LogDebug
		}
		c.SetLogLevel(level)

		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
