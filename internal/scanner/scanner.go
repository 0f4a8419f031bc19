// Package scanner lists the immediate children of a directory that are
// eligible for renaming.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphaelgruber/tidy/internal/models"
)

// Sentinel errors for scan failures.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrNotFound indicates the root directory does not exist.
	ErrNotFound = errors.New("directory not found")

	// ErrPermission indicates the root directory cannot be read.
	ErrPermission = errors.New("permission denied")

	// ErrNotDir indicates the root path is not a directory.
	ErrNotDir = errors.New("not a directory")
)

// Scan returns the entries directly under root for the given mode.
// In files mode only regular files whose extension is in exts are returned,
// compared case-insensitively. In folder mode only directories are returned.
// Entries keep the order os.ReadDir yields them in.
func Scan(root string, mode models.Mode, exts []string) ([]models.Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, classify(root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, root)
	}

	children, err := os.ReadDir(root)
	if err != nil {
		return nil, classify(root, err)
	}

	allowed := extensionSet(exts)
	var entries []models.Entry
	for _, child := range children {
		kind := child.Type()
		if kind&fs.ModeSymlink != 0 {
			// Symlinks count as what they point to; dangling ones are skipped.
			target, err := os.Stat(filepath.Join(root, child.Name()))
			if err != nil {
				continue
			}
			kind = target.Mode().Type()
		}

		switch mode {
		case models.ModeFiles:
			if !kind.IsRegular() {
				continue
			}
			if !allowed[strings.ToLower(filepath.Ext(child.Name()))] {
				continue
			}
		case models.ModeFolder:
			if !kind.IsDir() {
				continue
			}
		default:
			return nil, fmt.Errorf("unsupported mode %q", mode)
		}
		entries = append(entries, models.Entry{Name: child.Name(), Kind: mode})
	}
	return entries, nil
}

// extensionSet normalizes extensions to lowercase with a leading dot.
func extensionSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

func classify(root string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, root)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermission, root)
	default:
		return fmt.Errorf("read %s: %w", root, err)
	}
}
