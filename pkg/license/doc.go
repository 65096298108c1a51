// Package license finds and reads license and notice files shipped in a
// package's source directory.
//
// Discovery prefers the manifest's declared license file. When none is
// declared, or it does not exist, the package directory is scanned for the
// conventional names listed in [Patterns]. Matches are deduplicated by their
// symlink-resolved path and ordered case-insensitively by file name.
//
// [Read] never fails on content: files larger than [MaxBytes] are truncated
// with [TruncationMarker] appended, and bytes that are not valid UTF-8 are
// replaced with U+FFFD. Files starting with a UTF-16 byte order mark are
// transcoded.
package license
