package service

import (
	"fmt"
	"strings"

	"github.com/raphaelgruber/tidy/internal/models"
	"github.com/raphaelgruber/tidy/internal/scanner"
	"github.com/raphaelgruber/tidy/internal/workspace"
)

// GenerateResult summarizes a written prompt.
type GenerateResult struct {
	Entries    int
	Content    models.ContentType
	PromptPath string
	// Copied is true when the prompt was also placed on the clipboard.
	Copied bool
}

// Generate scans the root directory and writes the prompt file: the header
// for content on the first line, then one entry name per line. The reply file
// is truncated and any old dry-run file is removed, so neither can be used
// against the new listing.
func (s *RenameService) Generate(content models.ContentType) (GenerateResult, error) {
	header, err := models.HeaderFor(content)
	if err != nil {
		return GenerateResult{}, err
	}

	entries, err := scanner.Scan(s.root, s.mode, s.exts)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("scan: %w", err)
	}
	if len(entries) == 0 {
		return GenerateResult{}, fmt.Errorf("%w in %s", ErrNoEntries, s.root)
	}

	lines := append([]string{header.Text}, models.Names(entries)...)
	if err := workspace.WriteLines(s.ws.PromptPath(), lines); err != nil {
		return GenerateResult{}, err
	}
	if err := s.ws.Reset(); err != nil {
		return GenerateResult{}, err
	}
	if err := s.ws.DiscardDryRun(); err != nil {
		return GenerateResult{}, err
	}

	result := GenerateResult{
		Entries:    len(entries),
		Content:    content,
		PromptPath: s.ws.PromptPath(),
	}
	if s.clip != nil {
		if err := s.clip.WriteAll(strings.Join(lines, "\n") + "\n"); err != nil {
			s.logger.Warn("copy prompt to clipboard", "error", err)
		} else {
			result.Copied = true
		}
	}

	s.logger.Info("prompt generated", "entries", result.Entries, "content", string(content), "file", result.PromptPath)
	return result, nil
}
