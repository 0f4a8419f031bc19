package cli

import (
	"github.com/spf13/cobra"
)

var applyYes bool

var generateCmd = &cobra.Command{
	Use:   "generate <path> <files|folder>",
	Short: "Write the LLM prompt for a directory",
	Long: `Scan <path> and write prompt.txt: an instruction header on the first line,
then one entry name per line. output.txt is emptied so an old reply cannot be
reused by accident.

Examples:
  tidy generate ~/Downloads files
  tidy generate ~/Anime folder --anime --clipboard`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, args)
		if err != nil {
			return err
		}
		return s.generate()
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Pair the LLM reply with the prompt and write dry-run.txt",
	Long: `Read the entries from prompt.txt and the pasted LLM reply from output.txt,
clean up each reply line and write dry-run.txt with one "old --> new" line per
entry. Nothing is written if the line counts differ.

Examples:
  tidy reconcile
  tidy reconcile --clipboard`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, args)
		if err != nil {
			return err
		}
		return s.reconcile()
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply <path> <files|folder>",
	Short: "Rename or move everything listed in dry-run.txt",
	Long: `Apply dry-run.txt to <path>.

In folder mode each "old --> new" line renames <path>/old to <path>/new.
In files mode <path>/new-without-extension/ is created and the file is moved
into it as new. Every action is appended to log.log. Failed lines do not stop
the batch; they are kept in dry-run.txt for another run.

Requires confirmation unless --yes is used.

Examples:
  tidy apply ~/Downloads files
  tidy apply ~/Anime folder --yes`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, args)
		if err != nil {
			return err
		}
		return s.apply(cmd.Context(), applyYes)
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <path> <files|folder>",
	Short: "Write dry-run.txt from local name cleanup, without an LLM",
	Long: `Strip common release tags (resolution, codec, source, group) from the
names in <path> and write the result to dry-run.txt for review. Entries that
are already clean are left out.

Examples:
  tidy suggest ~/Downloads files
  tidy apply ~/Downloads files`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, args)
		if err != nil {
			return err
		}
		return s.suggest()
	},
}

func init() {
	applyCmd.Flags().BoolVarP(&applyYes, "yes", "y", false, "skip confirmation")
}
