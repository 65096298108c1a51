// Package config loads optional generator settings from a TOML file.
//
// A repository can keep its preferred options in .thirdparty.toml at its root:
//
//	output = "NOTICE.md"
//	include-dev = false
//	include-build = true
//	cargo = "/usr/local/bin/cargo"
//
// Every key is optional. Unset keys are nil so callers can tell them apart
// from explicit false or empty values when merging with command-line flags.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"

	"github.com/matzehuels/thirdparty/pkg/errors"
)

// DefaultFilename is the config file looked up in the repository root.
const DefaultFilename = ".thirdparty.toml"

// Config holds settings read from a config file.
type Config struct {
	Output          *string `toml:"output"`
	IncludeDev      *bool   `toml:"include-dev"`
	IncludeBuild    *bool   `toml:"include-build"`
	IncludeOptional *bool   `toml:"include-optional"`
	Cargo           *string `toml:"cargo"`

	// Path is the file the settings were read from; empty if none.
	Path string `toml:"-"`
}

// Load reads the config file at path. Unknown keys are rejected so typos do
// not silently fall back to defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := lo.Map(undecoded, func(k toml.Key, _ int) string { return k.String() })
		return nil, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	return &cfg, nil
}

// Discover loads explicit if set. Otherwise it loads DefaultFilename from
// repoPath, returning an empty config when that file does not exist. Any other
// stat failure, such as a permission error, is reported.
func Discover(explicit, repoPath string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path := filepath.Join(repoPath, DefaultFilename)
	if _, err := os.Stat(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "stat config %s", path)
	}
	return Load(path)
}
