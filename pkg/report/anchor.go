package report

import (
	"regexp"
	"strings"
	"unicode"
)

// space matches the characters treated as whitespace by anchor generation:
// the ASCII controls \t \n \v \f \r and \x1c-\x1f, NEL, and every Unicode
// separator.
const space = `\t\n\v\f\r\x{1c}-\x{1f}\x{85}\p{Z}`

var (
	nonWord   = regexp.MustCompile(`[^\p{L}\p{N}_` + space + `-]`)
	spaceRun  = regexp.MustCompile(`[` + space + `]+`)
	hyphenRun = regexp.MustCompile(`-{2,}`)
)

// Anchor returns the heading anchor for title: trimmed and lowercased, with
// everything except letters, digits, underscores, whitespace and hyphens
// removed, whitespace runs replaced by one hyphen, and hyphen runs collapsed.
func Anchor(title string) string {
	t := strings.ToLower(strings.TrimFunc(title, isSpace))
	t = nonWord.ReplaceAllString(t, "")
	t = spaceRun.ReplaceAllString(t, "-")
	return hyphenRun.ReplaceAllString(t, "-")
}

func isSpace(r rune) bool {
	switch {
	case r >= '\t' && r <= '\r', r >= 0x1c && r <= 0x1f, r == 0x85:
		return true
	}
	return unicode.In(r, unicode.Z)
}
