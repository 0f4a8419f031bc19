// Package cli provides the command-line interface for tidy.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/raphaelgruber/tidy/internal/clipboard"
	"github.com/raphaelgruber/tidy/internal/config"
	"github.com/raphaelgruber/tidy/internal/models"
	"github.com/raphaelgruber/tidy/internal/service"
	"github.com/raphaelgruber/tidy/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose       bool
	animeFlag     bool
	clipboardFlag bool
	workDirFlag   string

	// Global config and logger
	cfg        config.Config
	logger     *slog.Logger
	logCleanup func() error
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tidy <path> <files|folder>",
	Short: "Bulk-rename media files and folders with LLM help",
	Long: `Tidy renames media files or folders in three reviewable steps:

  1) generate  write prompt.txt with the directory listing for an LLM
  2) reconcile read the LLM reply from output.txt and write dry-run.txt
  3) apply     rename/move everything listed in dry-run.txt

Without a subcommand tidy opens an interactive menu for the three steps.
In "files" mode every video file is moved into a new folder named after its
cleaned title. In "folder" mode subfolders are renamed in place.

Examples:
  tidy ~/Downloads files
  tidy ~/Anime folder --anime
  tidy generate ~/Downloads files --clipboard
  tidy apply ~/Downloads files --yes`,
	Version: Version,
	Args:    cobra.ExactArgs(2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if workDirFlag != "" {
			cfg.WorkDir = workDirFlag
		}
		if cmd.Flags().Changed("clipboard") {
			cfg.Clipboard = clipboardFlag
		}

		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		logger, logCleanup = config.SetupLogger(cfg.LogFile, level)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			if err := logCleanup(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
	RunE: runMenuCmd,
}

// newSession builds the rename service for a <path> <mode> argument pair.
func newSession(cmd *cobra.Command, args []string) (*session, error) {
	root, mode := "", models.ModeFiles
	if len(args) >= 2 {
		var err error
		if mode, err = models.ParseMode(args[1]); err != nil {
			return nil, err
		}
		if root, err = filepath.Abs(args[0]); err != nil {
			return nil, fmt.Errorf("resolve %s: %w", args[0], err)
		}
	}

	opts := service.Options{
		Root:       root,
		Mode:       mode,
		Extensions: cfg.VideoExtensions,
		Workspace:  workspace.New(cfg.WorkDir, cfg.Files),
		Logger:     logger,
	}
	if cfg.Clipboard {
		if clipboard.Unsupported() {
			logger.Warn("clipboard not available on this system, using files only")
		} else {
			opts.Clipboard = clipboard.System{}
		}
	}

	return &session{
		svc:     service.NewRenameService(opts),
		content: models.ContentFor(animeFlag),
		in:      newLineReader(cmd.InOrStdin()),
		out:     cmd.OutOrStdout(),
		theme:   defaultTheme,
		verbose: verbose,
	}, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&animeFlag, "anime", "a", false, "use the anime prompt header")
	rootCmd.PersistentFlags().BoolVar(&clipboardFlag, "clipboard", false, "copy the prompt to and read the reply from the clipboard")
	rootCmd.PersistentFlags().StringVarP(&workDirFlag, "work-dir", "w", "", "directory for prompt.txt, output.txt, dry-run.txt and log.log")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(templateCmd)
}
