package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputFilename validates the report file name.
// The report is always written next to the repository, so the name must be a
// plain basename without directory components.
func ValidateOutputFilename(filename string) error {
	if strings.TrimSpace(filename) == "" {
		return New(ErrCodeInvalidPath, "output filename cannot be empty")
	}

	if len(filename) > 255 {
		return New(ErrCodeInvalidPath, "output filename too long (max 255 characters)")
	}

	for _, r := range filename {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output filename contains invalid control characters")
		}
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "output filename cannot contain path separators: %q", filename)
	}

	if filename == "." || filename == ".." {
		return New(ErrCodeInvalidPath, "output filename cannot be %q", filename)
	}

	return nil
}

// ValidateRepoPath validates the repository path argument before it is resolved.
func ValidateRepoPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "repository path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' {
			return New(ErrCodeInvalidPath, "repository path contains a null byte")
		}
	}

	return nil
}

// ValidateChoice validates that value is one of the allowed options.
func ValidateChoice(kind, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return New(ErrCodeInvalidInput, "invalid %s %q (available: %s)", kind, value, strings.Join(allowed, ", "))
}
