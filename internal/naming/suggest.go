package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Release junk removed by Suggest, applied in order.
var junkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\.(dvdrip|xvid|x264|x265|av1|dts|ac3|german|english|hq|dvd|rip|by.+|@\w+)\b`),
	regexp.MustCompile(`(?i)\b(1080p|720p|bluray|brrip|webrip)\b`),
	regexp.MustCompile(`(?i)\b(extended|messias)\b`),
	regexp.MustCompile(`\(\)`),
	regexp.MustCompile(`\[.*?\]`),
}

var (
	reSeparators   = regexp.MustCompile(`[._]`)
	reGroupSuffix  = regexp.MustCompile(`(\s)-\S.*`)
	reTrailingDash = regexp.MustCompile(`-$`)
)

// Suggest derives a cleaned name from a release-style file name without any
// LLM: release tags are stripped, dots and underscores become spaces and a
// trailing "-GROUP" suffix is cut. The original extension is preserved.
//
//	Suggest("The.Matrix.1999.1080p.BluRay.x264-GROUP.mkv") == "The Matrix 1999.mkv"
func Suggest(name string) string {
	ext := filepath.Ext(name)
	return cleanStem(strings.TrimSuffix(name, ext)) + ext
}

// SuggestFolder is Suggest for folder names, which carry no extension.
func SuggestFolder(name string) string {
	return cleanStem(name)
}

func cleanStem(stem string) string {
	for _, re := range junkPatterns {
		stem = re.ReplaceAllString(stem, "")
	}
	stem = reSeparators.ReplaceAllString(stem, " ")
	stem = strings.TrimSpace(reWhitespace.ReplaceAllString(stem, " "))
	stem = strings.TrimSpace(reGroupSuffix.ReplaceAllString(stem, "$1"))
	return strings.TrimSpace(reTrailingDash.ReplaceAllString(stem, ""))
}
