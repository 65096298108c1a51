package license

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/matzehuels/thirdparty/pkg/catalog"
)

const (
	// MaxBytes is the largest number of bytes read from a single file.
	MaxBytes = 512000

	// TruncationMarker is appended to text cut at MaxBytes.
	TruncationMarker = "\n\n[TRUNCATED]\n"
)

// Patterns are the file name globs tried, in order, when a package declares
// no license file.
var Patterns = []string{
	"LICENSE", "LICENSE.*",
	"LICENCE", "LICENCE.*",
	"COPYING", "COPYING.*",
	"NOTICE", "NOTICE.*",
	"COPYRIGHT", "COPYRIGHT.*",
	"UNLICENSE", "UNLICENSE.*",
}

// File is a discovered license file.
type File struct {
	Path string // Path to the file
	Rel  string // Path relative to the package directory, or Path if outside it
}

// Locate returns the license files of pkg. A declared license file that exists
// wins; otherwise the package directory is scanned.
func Locate(pkg catalog.Package) []File {
	dir := pkg.Dir()
	if declared := declaredFile(pkg); declared != "" {
		return []File{newFile(dir, declared)}
	}
	return Discover(dir)
}

// Discover scans dir for files matching Patterns. A missing or unreadable
// directory yields no files.
func Discover(dir string) []File {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var paths []string
	for _, pattern := range Patterns {
		for _, e := range entries {
			if ok, _ := filepath.Match(pattern, e.Name()); !ok {
				continue
			}
			path := filepath.Join(dir, e.Name())
			if isRegular(path) {
				paths = append(paths, path)
			}
		}
	}

	paths = lo.UniqBy(paths, resolved)
	slices.SortStableFunc(paths, func(a, b string) int {
		return strings.Compare(strings.ToLower(filepath.Base(a)), strings.ToLower(filepath.Base(b)))
	})

	return lo.Map(paths, func(p string, _ int) File { return newFile(dir, p) })
}

// Read returns the text of the file at path, truncated to MaxBytes and
// decoded permissively.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	truncated := len(data) > MaxBytes
	if truncated {
		data = data[:MaxBytes]
	}
	text := Decode(data)
	if truncated {
		text += TruncationMarker
	}
	return text, nil
}

// Decode converts data to a valid UTF-8 string. A UTF-8 or UTF-16 byte order
// mark selects the encoding and is dropped; otherwise UTF-8 is assumed.
// Invalid sequences become U+FFFD.
func Decode(data []byte) string {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return strings.ToValidUTF8(string(bytes.TrimPrefix(data, utf8BOM)), "\uFFFD")
	}
	return string(out)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func declaredFile(pkg catalog.Package) string {
	if pkg.LicenseFile == "" {
		return ""
	}
	path := pkg.LicenseFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(pkg.Dir(), path)
	}
	if !isRegular(path) {
		return ""
	}
	return path
}

func newFile(dir, path string) File {
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = path
	}
	return File{Path: path, Rel: filepath.ToSlash(rel)}
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func resolved(path string) string {
	if r, err := filepath.EvalSymlinks(path); err == nil {
		return r
	}
	return path
}
