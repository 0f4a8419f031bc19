// Package service implements the generate, reconcile and apply stages of the
// rename workflow.
package service

import (
	"log/slog"

	"github.com/raphaelgruber/tidy/internal/audit"
	"github.com/raphaelgruber/tidy/internal/clipboard"
	"github.com/raphaelgruber/tidy/internal/metrics"
	"github.com/raphaelgruber/tidy/internal/models"
	"github.com/raphaelgruber/tidy/internal/workspace"
)

// Options configures a RenameService.
type Options struct {
	// Root is the directory whose children are renamed.
	Root string
	// Mode selects files or folders.
	Mode models.Mode
	// Extensions is the files-mode allow-list.
	Extensions []string
	// Workspace holds the exchange files and the audit log.
	Workspace workspace.Workspace
	// Clipboard enables prompt/reply handoff (optional).
	Clipboard clipboard.Clipboard
	// Audit overrides the audit log (optional, defaults to Workspace.LogPath).
	Audit *audit.Log
	// Logger receives diagnostics (optional).
	Logger *slog.Logger
}

// RenameService runs the three workflow stages over one root directory.
type RenameService struct {
	root    string
	mode    models.Mode
	exts    []string
	ws      workspace.Workspace
	clip    clipboard.Clipboard
	audit   *audit.Log
	metrics *metrics.Collector
	logger  *slog.Logger
}

// NewRenameService creates a new rename service.
func NewRenameService(opts Options) *RenameService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	auditLog := opts.Audit
	if auditLog == nil {
		auditLog = audit.New(opts.Workspace.LogPath())
	}
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = models.DefaultVideoExtensions
	}
	return &RenameService{
		root:    opts.Root,
		mode:    opts.Mode,
		exts:    exts,
		ws:      opts.Workspace,
		clip:    opts.Clipboard,
		audit:   auditLog,
		metrics: metrics.NewCollector(),
		logger:  logger.With("root", opts.Root, "mode", string(opts.Mode)),
	}
}

// Mode returns the mode the service was created with.
func (s *RenameService) Mode() models.Mode {
	return s.mode
}

// Workspace returns the exchange files used by the service.
func (s *RenameService) Workspace() workspace.Workspace {
	return s.ws
}

// Metrics returns the timing collector fed by Apply.
func (s *RenameService) Metrics() *metrics.Collector {
	return s.metrics
}
