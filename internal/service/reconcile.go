package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/raphaelgruber/tidy/internal/models"
	"github.com/raphaelgruber/tidy/internal/naming"
	"github.com/raphaelgruber/tidy/internal/workspace"
)

// ReconcileResult is the dry-run mapping written by Reconcile.
type ReconcileResult struct {
	Pairs      []models.Pair
	DryRunPath string
	// FromClipboard is true when the reply was taken from the clipboard.
	FromClipboard bool
}

// Reconcile pairs the prompt entries with the sanitized reply lines and
// writes the dry-run file. A count mismatch returns *MismatchError and writes
// nothing.
func (s *RenameService) Reconcile() (ReconcileResult, error) {
	prompt, err := workspace.ReadLines(s.ws.PromptPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ReconcileResult{}, fmt.Errorf("%w: %s missing, generate a prompt first", ErrEmptyPrompt, s.ws.PromptPath())
		}
		return ReconcileResult{}, fmt.Errorf("read prompt: %w", err)
	}
	if len(prompt) < 2 {
		return ReconcileResult{}, fmt.Errorf("%w: %s", ErrEmptyPrompt, s.ws.PromptPath())
	}
	entries := prompt[1:]

	var result ReconcileResult
	if s.clip != nil {
		pasted, err := s.pasteReply()
		if err != nil {
			s.logger.Warn("read reply from clipboard", "error", err)
		}
		result.FromClipboard = pasted
	}

	reply, err := workspace.ReadLines(s.ws.OutputPath())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ReconcileResult{}, fmt.Errorf("read reply: %w", err)
	}
	if len(reply) == 0 {
		return ReconcileResult{}, fmt.Errorf("%w: paste the LLM output into %s", ErrEmptyReply, s.ws.OutputPath())
	}
	names := naming.SanitizeAll(reply)

	if len(entries) != len(names) {
		mismatch := &MismatchError{Entries: len(entries), Replies: len(names)}
		s.logger.Warn("reconcile aborted", "entries", mismatch.Entries, "replies", mismatch.Replies)
		return ReconcileResult{}, mismatch
	}

	result.Pairs = models.Zip(entries, names)
	result.DryRunPath = s.ws.DryRunPath()
	if err := workspace.WriteLines(result.DryRunPath, models.Lines(result.Pairs)); err != nil {
		return ReconcileResult{}, err
	}

	s.logger.Info("dry-run written", "pairs", len(result.Pairs), "file", result.DryRunPath)
	return result, nil
}

// pasteReply fills an empty reply file from the clipboard. It reports whether
// the file was written.
func (s *RenameService) pasteReply() (bool, error) {
	existing, err := workspace.ReadLines(s.ws.OutputPath())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	text, err := s.clip.ReadAll()
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(text) == "" {
		return false, nil
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if err := os.WriteFile(s.ws.OutputPath(), []byte(text), 0o644); err != nil {
		return false, fmt.Errorf("write reply: %w", err)
	}
	return true, nil
}
