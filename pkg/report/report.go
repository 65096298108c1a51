package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/thirdparty/pkg/catalog"
	"github.com/matzehuels/thirdparty/pkg/license"
	"github.com/matzehuels/thirdparty/pkg/selection"
)

const (
	// DefaultFilename is the output file name used when none is given.
	DefaultFilename = "THIRD_PARTY.md"

	// DefaultGenerator is the tool name printed in the document header.
	DefaultGenerator = "thirdparty"

	timeFormat = "2006-01-02T15:04:05+00:00"

	noLicenseNotice = "_No LICENSE/NOTICE file found in the crate source directory. " +
		"You may need to fetch the license text from the upstream repository or rely on SPDX templates._"
)

// Options configures Render.
type Options struct {
	RepoRoot    string            // Repository root shown in the header
	Selection   selection.Options // Dependency kinds shown in the header
	GeneratedAt time.Time         // Timestamp shown in the header; converted to UTC
	Generator   string            // Tool name shown in the header (default: DefaultGenerator)

	// Warn, if set, is called when a license file cannot be read.
	Warn func(format string, args ...any)
}

// Render builds the notices document for deps, which must already be in
// report order. License files are located and read from each package's
// source directory; unreadable files are replaced by a short notice.
func Render(deps []catalog.Package, opts Options) string {
	generator := opts.Generator
	if generator == "" {
		generator = DefaultGenerator
	}

	lines := []string{
		"# Third-Party Notices",
		"",
		fmt.Sprintf("_Generated: %s (UTC)_", opts.GeneratedAt.UTC().Format(timeFormat)),
		"",
		fmt.Sprintf("Generated by `%s` from direct dependencies only.", generator),
		fmt.Sprintf("- Repo: `%s`", opts.RepoRoot),
		fmt.Sprintf("- Included dependency kinds: **%s**", strings.Join(opts.Selection.Kinds(), ", ")),
		fmt.Sprintf("- Included optional deps: **%t**", opts.Selection.IncludeOptional),
		"",
		"## Table of contents",
		"",
	}

	for _, p := range deps {
		lines = append(lines, fmt.Sprintf("- [%s](#%s)", p.Title(), Anchor(p.Title())))
	}
	lines = append(lines, "")

	for _, p := range deps {
		lines = appendSection(lines, p, opts.Warn)
	}

	return strings.TrimRightFunc(strings.Join(lines, "\n"), isSpace) + "\n"
}

func appendSection(lines []string, p catalog.Package, warn func(string, ...any)) []string {
	lines = append(lines, "## "+p.Title(), "")
	if p.License != "" {
		lines = append(lines, fmt.Sprintf("- License expression (Cargo.toml): `%s`", p.License))
	} else {
		lines = append(lines, "- License expression (Cargo.toml): _not specified_")
	}
	if p.Repository != "" {
		lines = append(lines, "- Repository: "+p.Repository)
	}
	if p.Source != "" {
		lines = append(lines, fmt.Sprintf("- Source: `%s`", p.Source))
	}
	lines = append(lines, "")

	files := license.Locate(p)
	if len(files) == 0 {
		return append(lines, noLicenseNotice, "")
	}

	for _, f := range files {
		lines = append(lines, "### "+f.Rel, "")
		text, err := license.Read(f.Path)
		if err != nil {
			if warn != nil {
				warn("cannot read license file %s of %s: %v", f.Path, p.Title(), err)
			}
			lines = append(lines, fmt.Sprintf("_Could not read this file: %v_", err), "")
			continue
		}
		text = strings.TrimRightFunc(text, isSpace)
		fence := Fence(text)
		lines = append(lines, fence+"text", text, fence, "")
	}
	return lines
}

// Fence returns a code fence that content cannot close: three backticks, or
// one more than the longest run of three or more backticks in content.
func Fence(content string) string {
	longest, run := 0, 0
	for _, r := range content {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}

// OutputPath returns where the document for repoRoot is written: name inside
// the parent directory of repoRoot.
func OutputPath(repoRoot, name string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(repoRoot)), name)
}

// Write stores doc at path as UTF-8, replacing any existing file.
func Write(path, doc string) error {
	return os.WriteFile(path, []byte(doc), 0o644)
}
