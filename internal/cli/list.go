package cli

import (
	"fmt"
	"path/filepath"

	"github.com/raphaelgruber/tidy/internal/models"
	"github.com/raphaelgruber/tidy/internal/scanner"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <path> <files|folder>",
	Short: "List the entries that would go into the prompt",
	Long: `List the entries of <path> that generate would write to the prompt.

Examples:
  tidy list ~/Downloads files
  tidy list ~/Anime folder`,
	Args: cobra.ExactArgs(2),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	mode, err := models.ParseMode(args[1])
	if err != nil {
		return err
	}
	root, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args[0], err)
	}

	entries, err := scanner.Scan(root, mode, cfg.VideoExtensions)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries found.")
		return nil
	}

	fmt.Fprintf(out, "Entries (%d):\n\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(out, "- %s\n", e.Name)
	}
	return nil
}
