package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/thirdparty/pkg/config"
	"github.com/matzehuels/thirdparty/pkg/errors"
	"github.com/matzehuels/thirdparty/pkg/pipeline"
	"github.com/matzehuels/thirdparty/pkg/report"
	"github.com/matzehuels/thirdparty/pkg/selection"
)

// reportFlags holds the flags shared by the generate, list and graph commands.
// Values from a config file apply only where the flag was not given.
type reportFlags struct {
	output          string // output file name, written next to the repository
	includeDev      bool   // follow dev-dependency edges
	includeBuild    bool   // follow build-dependency edges
	includeOptional bool   // accepted for compatibility; has no effect
	cargo           string // resolver binary
	metadataFile    string // pre-captured resolver output
	configFile      string // explicit config file
}

// register adds all report flags to cmd.
func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", report.DefaultFilename, "output file name, written to the parent of the repository")
	f.registerSelection(cmd)
}

// registerSelection adds the flags choosing the metadata source and the
// followed dependency kinds.
func (f *reportFlags) registerSelection(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVar(&f.includeDev, "include-dev", false, "include dev-dependencies")
	fs.BoolVar(&f.includeBuild, "include-build", false, "include build-dependencies")
	fs.BoolVar(&f.includeOptional, "include-optional", false, "include optional dependencies (no effect: disabled optional deps never reach the resolve graph)")
	fs.StringVar(&f.cargo, "cargo", "", "resolver binary (default: $CARGO or cargo)")
	fs.StringVar(&f.metadataFile, "metadata-file", "", "read cargo metadata JSON from this file instead of running cargo")
	fs.StringVar(&f.configFile, "config", "", "config file (default: <repo>/"+config.DefaultFilename+" if present)")
}

// options merges flags, the config file and defaults into pipeline options.
// It returns the resolver binary separately since it configures the loader.
func (f *reportFlags) options(cmd *cobra.Command, repoPath string) (runOptions, error) {
	if err := errors.ValidateRepoPath(repoPath); err != nil {
		return runOptions{}, err
	}
	cfg, err := config.Discover(f.configFile, repoPath)
	if err != nil {
		return runOptions{}, err
	}
	if cfg.Path != "" {
		loggerFromContext(cmd.Context()).Debug("Using config file", "path", cfg.Path)
	}

	fs := cmd.Flags()
	pick := func(name string, flag bool, fromConfig *bool) bool {
		if fs.Changed(name) || fromConfig == nil {
			return flag
		}
		return *fromConfig
	}

	opts := pipeline.Options{
		RepoPath:     repoPath,
		Output:       f.output,
		MetadataFile: f.metadataFile,
		Selection: selection.Options{
			IncludeDev:      pick("include-dev", f.includeDev, cfg.IncludeDev),
			IncludeBuild:    pick("include-build", f.includeBuild, cfg.IncludeBuild),
			IncludeOptional: pick("include-optional", f.includeOptional, cfg.IncludeOptional),
		},
	}
	if !fs.Changed("output") && cfg.Output != nil {
		opts.Output = *cfg.Output
	}
	if opts.Output == "" {
		opts.Output = report.DefaultFilename
	}

	cargo := f.cargo
	if !fs.Changed("cargo") && cfg.Cargo != nil {
		cargo = *cfg.Cargo
	}
	if cargo == "" {
		cargo = defaultCargo()
	}

	return runOptions{Options: opts, cargo: cargo}, nil
}

// runOptions are the merged settings of one command invocation.
type runOptions struct {
	pipeline.Options
	cargo string
}
