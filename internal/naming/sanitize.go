// Package naming cleans up candidate names before they reach the filesystem.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// Sanitize cleans a single line of an LLM reply. Colon subtitles become dash
// separated, slashes become dashes and whitespace runs collapse to one space.
// Original prompt entries must never be sanitized: they have to match the
// names on disk.
func Sanitize(line string) string {
	s := strings.TrimSpace(line)
	s = strings.ReplaceAll(s, ": ", " - ")
	s = strings.ReplaceAll(s, "/", "-")
	return reWhitespace.ReplaceAllString(s, " ")
}

// SanitizeAll applies Sanitize to every line.
func SanitizeAll(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Sanitize(l)
	}
	return out
}

// StripExt removes the final extension from name.
// "Clean Name (2001).mkv" becomes "Clean Name (2001)".
func StripExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
