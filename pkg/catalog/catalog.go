// Package catalog normalizes resolver package entries into immutable records.
package catalog

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/matzehuels/thirdparty/pkg/errors"
	"github.com/matzehuels/thirdparty/pkg/metadata"
)

// Package is one resolved dependency unit.
// Optional fields are empty when the resolver did not report them.
type Package struct {
	ID           string // Unique resolver ID
	Name         string
	Version      string
	ManifestPath string // Path to the package's Cargo.toml
	License      string // Declared license expression (optional)
	LicenseFile  string // Declared license file, relative to Dir or absolute (optional)
	Repository   string // Repository URL (optional)
	Source       string // Origin descriptor; empty for local packages
}

// Title returns the display key "{name} {version}".
func (p Package) Title() string { return p.Name + " " + p.Version }

// Dir returns the package source directory (the manifest's parent).
func (p Package) Dir() string { return filepath.Dir(p.ManifestPath) }

// IsLocal reports whether the package has no external origin.
func (p Package) IsLocal() bool { return p.Source == "" }

// Catalog indexes packages by ID.
type Catalog struct {
	byID map[string]Package
}

// Build converts raw resolver entries into a catalog.
// Entries missing a required field, and duplicate IDs, are malformed input.
func Build(raw []metadata.Package) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Package, len(raw))}
	for i, r := range raw {
		if missing := missingFields(r); len(missing) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidMetadata,
				"package entry %d (%q) is missing %s", i, r.ID, strings.Join(missing, ", "))
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidMetadata, "duplicate package id %q", r.ID)
		}
		c.byID[r.ID] = Package{
			ID:           r.ID,
			Name:         r.Name,
			Version:      r.Version,
			ManifestPath: r.ManifestPath,
			License:      lo.FromPtr(r.License),
			LicenseFile:  lo.FromPtr(r.LicenseFile),
			Repository:   lo.FromPtr(r.Repository),
			Source:       lo.FromPtr(r.Source),
		}
	}
	return c, nil
}

func missingFields(r metadata.Package) []string {
	required := []lo.Tuple2[string, string]{
		lo.T2("id", r.ID),
		lo.T2("name", r.Name),
		lo.T2("version", r.Version),
		lo.T2("manifest_path", r.ManifestPath),
	}
	return lo.FilterMap(required, func(f lo.Tuple2[string, string], _ int) (string, bool) {
		return f.A, f.B == ""
	})
}

// Get returns the package with the given ID.
func (c *Catalog) Get(id string) (Package, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of packages.
func (c *Catalog) Len() int { return len(c.byID) }
