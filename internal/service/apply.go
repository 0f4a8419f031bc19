package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphaelgruber/tidy/internal/metrics"
	"github.com/raphaelgruber/tidy/internal/models"
	"github.com/raphaelgruber/tidy/internal/naming"
	"github.com/raphaelgruber/tidy/internal/workspace"
)

// Status is the result of one dry-run line.
type Status string

const (
	StatusApplied Status = "applied"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Outcome records what happened to one dry-run line.
type Outcome struct {
	Line   int // 1-based line in the dry-run file
	Raw    string
	Pair   models.Pair
	Status Status
	Target string // final path, set when applied
	Err    error
}

// Report summarizes an apply batch.
type Report struct {
	Mode     models.Mode
	Outcomes []Outcome
	// Cleaned is true when all transient files were removed.
	Cleaned bool
	// Retained is the number of unapplied lines written back to the dry-run file.
	Retained int
	Metrics  metrics.Snapshot
}

func (r Report) count(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// Applied returns the number of successful renames.
func (r Report) Applied() int { return r.count(StatusApplied) }

// Failed returns the number of failed renames.
func (r Report) Failed() int { return r.count(StatusFailed) }

// Skipped returns the number of lines not attempted.
func (r Report) Skipped() int { return r.count(StatusSkipped) }

// Complete reports whether every line was applied.
func (r Report) Complete() bool {
	return len(r.Outcomes) > 0 && r.Applied() == len(r.Outcomes)
}

// Apply executes the dry-run mapping. Each line is handled independently: a
// failure is logged and recorded, and the batch continues. When every line
// succeeds the prompt, reply and dry-run files are deleted. Otherwise the
// unapplied lines are written back to the dry-run file so the batch can be
// fixed and re-run.
//
// Cancelling ctx stops the batch before the next line.
func (s *RenameService) Apply(ctx context.Context) (Report, error) {
	lines, err := workspace.ReadLines(s.ws.DryRunPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Report{}, fmt.Errorf("%s missing, reconcile the reply first: %w", s.ws.DryRunPath(), err)
		}
		return Report{}, fmt.Errorf("read dry-run: %w", err)
	}

	report := Report{Mode: s.mode}
	for i, line := range lines {
		o := Outcome{Line: i + 1, Raw: line}

		if err := ctx.Err(); err != nil {
			o.Status, o.Err = StatusSkipped, err
			report.Outcomes = append(report.Outcomes, o)
			continue
		}

		pair, err := models.ParsePair(line)
		if err != nil {
			o.Status, o.Err = StatusSkipped, err
			s.record("SKIPPED line %d: %v", o.Line, err)
			s.logger.Warn("skip dry-run line", "line", o.Line, "error", err)
			report.Outcomes = append(report.Outcomes, o)
			continue
		}
		o.Pair = pair

		switch s.mode {
		case models.ModeFolder:
			o.Target, err = s.renameFolder(pair)
		case models.ModeFiles:
			o.Target, err = s.moveFile(pair)
		default:
			err = fmt.Errorf("unsupported mode %q", s.mode)
		}

		if err != nil {
			o.Status, o.Err = StatusFailed, err
			s.record("FAILED '%s' --> '%s': %v", pair.Old, pair.New, err)
			s.logger.Error("apply failed", "old", pair.Old, "new", pair.New, "error", err)
		} else {
			o.Status = StatusApplied
			s.logger.Debug("applied", "old", pair.Old, "target", o.Target)
		}
		report.Outcomes = append(report.Outcomes, o)
	}

	if err := s.finish(&report); err != nil {
		return report, err
	}
	report.Metrics = s.metrics.Snapshot()

	s.logger.Info("apply finished",
		"applied", report.Applied(),
		"failed", report.Failed(),
		"skipped", report.Skipped(),
	)
	return report, nil
}

// finish resets the transient files after a complete batch, or keeps the
// unapplied lines for a retry.
func (s *RenameService) finish(report *Report) error {
	if report.Complete() || len(report.Outcomes) == 0 {
		if err := s.ws.Cleanup(); err != nil {
			return fmt.Errorf("cleanup: %w", err)
		}
		report.Cleaned = true
		return nil
	}

	var remaining []string
	for _, o := range report.Outcomes {
		if o.Status != StatusApplied {
			remaining = append(remaining, o.Raw)
		}
	}
	if err := workspace.WriteLines(s.ws.DryRunPath(), remaining); err != nil {
		return err
	}
	if err := s.ws.KeepDryRunCleanup(); err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}
	report.Retained = len(remaining)
	s.record("Batch incomplete: %d applied, %d failed, %d skipped; %d lines kept in %s",
		report.Applied(), report.Failed(), report.Skipped(), report.Retained, filepath.Base(s.ws.DryRunPath()))
	return nil
}

// renameFolder renames root/old to root/new.
func (s *RenameService) renameFolder(p models.Pair) (string, error) {
	if err := checkName(p.Old); err != nil {
		return "", err
	}
	if err := checkName(p.New); err != nil {
		return "", err
	}
	src := filepath.Join(s.root, p.Old)
	dst := filepath.Join(s.root, p.New)

	if err := mustExist(src); err != nil {
		return "", err
	}
	if err := mustNotExist(dst); err != nil {
		// A case-only rename on a case-insensitive filesystem finds the source
		// itself under the new name.
		if !errors.Is(err, ErrDestinationExists) || !sameFile(src, dst) {
			return "", err
		}
	}
	if err := s.metrics.Time(metrics.OpRename, func() error { return os.Rename(src, dst) }); err != nil {
		return "", fmt.Errorf("rename: %w", err)
	}
	s.record("Renamed folder '%s' to '%s'", p.Old, p.New)
	return dst, nil
}

// moveFile creates root/<new without extension>/ and moves root/old into it
// as new.
func (s *RenameService) moveFile(p models.Pair) (string, error) {
	if err := checkName(p.Old); err != nil {
		return "", err
	}
	if err := checkName(p.New); err != nil {
		return "", err
	}
	if oldExt, newExt := filepath.Ext(p.Old), filepath.Ext(p.New); !strings.EqualFold(oldExt, newExt) {
		return "", fmt.Errorf("%w: %q has extension %q, %q has %q", ErrExtensionMismatch, p.Old, oldExt, p.New, newExt)
	}
	folder := strings.TrimSpace(naming.StripExt(p.New))
	if err := checkName(folder); err != nil {
		return "", fmt.Errorf("folder for %q: %w", p.New, err)
	}

	src := filepath.Join(s.root, p.Old)
	dir := filepath.Join(s.root, folder)
	dst := filepath.Join(dir, p.New)

	if err := mustExist(src); err != nil {
		return "", err
	}
	if err := s.ensureDir(dir, folder); err != nil {
		return "", err
	}
	if err := mustNotExist(dst); err != nil {
		return "", err
	}
	if err := s.metrics.Time(metrics.OpMove, func() error { return os.Rename(src, dst) }); err != nil {
		return "", fmt.Errorf("move: %w", err)
	}
	s.record("Moved '%s' to '%s'", p.Old, filepath.Join(folder, p.New))
	return dst, nil
}

// ensureDir creates dir if needed. An existing directory is reused without
// an audit record.
func (s *RenameService) ensureDir(dir, name string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%w: %s is not a directory", ErrDestinationExists, dir)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat %s: %w", dir, err)
	}

	if err := s.metrics.Time(metrics.OpMkdir, func() error { return os.MkdirAll(dir, 0o755) }); err != nil {
		return fmt.Errorf("create folder: %w", err)
	}
	s.record("Created folder '%s'", name)
	return nil
}

// record appends to the audit log. A failed write is logged but does not
// stop the batch.
func (s *RenameService) record(format string, args ...any) {
	if err := s.audit.Record(format, args...); err != nil {
		s.logger.Warn("audit log write failed", "error", err, "file", s.audit.Path())
	}
}

// checkName rejects names that would leave the root directory.
func checkName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsRune(name, '/'), strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}

func mustExist(path string) error {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return nil
}

// sameFile reports whether a and b name the same directory entry.
func sameFile(a, b string) bool {
	ai, err := os.Lstat(a)
	if err != nil {
		return false
	}
	bi, err := os.Lstat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

func mustNotExist(path string) error {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrDestinationExists, path)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}
