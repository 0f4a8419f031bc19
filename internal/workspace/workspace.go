// Package workspace manages the plain-text files exchanged between the
// workflow stages and the user.
package workspace

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphaelgruber/tidy/internal/config"
)

// Workspace resolves the work files inside a directory.
type Workspace struct {
	Dir   string
	Files config.WorkFiles
}

// New creates a workspace rooted at dir.
func New(dir string, files config.WorkFiles) Workspace {
	return Workspace{Dir: dir, Files: files}
}

// PromptPath is the file the user copies into the LLM.
func (w Workspace) PromptPath() string { return filepath.Join(w.Dir, w.Files.Prompt) }

// OutputPath is the file the user pastes the LLM reply into.
func (w Workspace) OutputPath() string { return filepath.Join(w.Dir, w.Files.Output) }

// DryRunPath is the reviewable old --> new mapping.
func (w Workspace) DryRunPath() string { return filepath.Join(w.Dir, w.Files.DryRun) }

// LogPath is the append-only audit log.
func (w Workspace) LogPath() string { return filepath.Join(w.Dir, w.Files.Log) }

// transient lists the files removed by Cleanup.
func (w Workspace) transient() []string {
	return []string{w.PromptPath(), w.OutputPath(), w.DryRunPath()}
}

// ReadLines reads path as one record per line. Trailing carriage returns are
// stripped and blank lines are dropped, so pasted text with stray empty lines
// still lines up with the prompt.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// WriteLines replaces path with lines, each terminated by a newline.
func WriteLines(path string, lines []string) error {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Reset creates or truncates the reply file so a stale reply is never reused.
func (w Workspace) Reset() error {
	if err := os.WriteFile(w.OutputPath(), nil, 0o644); err != nil {
		return fmt.Errorf("reset %s: %w", w.OutputPath(), err)
	}
	return nil
}

// DiscardDryRun removes a dry-run mapping left over from an earlier prompt.
func (w Workspace) DiscardDryRun() error {
	if err := os.Remove(w.DryRunPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", w.DryRunPath(), err)
	}
	return nil
}

// Cleanup removes the prompt, reply and dry-run files. Files that are already
// gone are ignored. The audit log is kept.
func (w Workspace) Cleanup() error {
	var errs []error
	for _, path := range w.transient() {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// KeepDryRunCleanup removes the prompt and reply files but leaves the dry-run
// mapping in place for a retry.
func (w Workspace) KeepDryRunCleanup() error {
	var errs []error
	for _, path := range []string{w.PromptPath(), w.OutputPath()} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
