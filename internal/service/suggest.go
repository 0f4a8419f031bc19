package service

import (
	"fmt"

	"github.com/raphaelgruber/tidy/internal/models"
	"github.com/raphaelgruber/tidy/internal/naming"
	"github.com/raphaelgruber/tidy/internal/scanner"
	"github.com/raphaelgruber/tidy/internal/workspace"
)

// Suggest writes a dry-run mapping built from local name cleanup instead of an
// LLM reply. Entries whose cleaned name is unchanged or empty are left out.
func (s *RenameService) Suggest() (ReconcileResult, error) {
	entries, err := scanner.Scan(s.root, s.mode, s.exts)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("scan: %w", err)
	}
	if len(entries) == 0 {
		return ReconcileResult{}, fmt.Errorf("%w in %s", ErrNoEntries, s.root)
	}

	var pairs []models.Pair
	for _, e := range entries {
		var suggested string
		switch s.mode {
		case models.ModeFiles:
			suggested = naming.Suggest(e.Name)
			if naming.StripExt(suggested) == "" {
				suggested = ""
			}
		case models.ModeFolder:
			suggested = naming.SuggestFolder(e.Name)
		}
		if suggested == "" || suggested == e.Name {
			s.logger.Debug("no suggestion", "entry", e.Name)
			continue
		}
		pairs = append(pairs, models.Pair{Old: e.Name, New: suggested})
	}

	result := ReconcileResult{Pairs: pairs, DryRunPath: s.ws.DryRunPath()}
	if err := workspace.WriteLines(result.DryRunPath, models.Lines(pairs)); err != nil {
		return ReconcileResult{}, err
	}
	s.logger.Info("suggestions written", "pairs", len(pairs), "scanned", len(entries), "file", result.DryRunPath)
	return result, nil
}
