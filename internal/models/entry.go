// Package models defines the data structures shared by the tidy workflow.
package models

import (
	"fmt"
	"strings"
)

// Mode selects what the scanner collects and how the apply stage treats a pair.
type Mode string

const (
	ModeFiles  Mode = "files"  // Video files, each moved into a folder named after it.
	ModeFolder Mode = "folder" // Subfolders, renamed in place.
)

// ParseMode validates a mode argument from the command line.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeFiles:
		return ModeFiles, nil
	case ModeFolder:
		return ModeFolder, nil
	default:
		return "", fmt.Errorf("invalid mode %q (use 'files' or 'folder')", s)
	}
}

// Entry is a single file or folder name discovered by the scanner.
type Entry struct {
	Name string
	Kind Mode
}

// Names returns the raw names of entries in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// DefaultVideoExtensions is the extension allow-list used in files mode.
// Matching is case-insensitive.
var DefaultVideoExtensions = []string{".mp4", ".mkv", ".divx", ".avi", ".flv", ".vob"}
