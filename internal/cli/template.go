package cli

import (
	"fmt"

	"github.com/raphaelgruber/tidy/internal/models"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Show the built-in prompt headers",
	Long: `Show the instruction headers written to the first line of prompt.txt.

Subcommands:
  list    List all headers
  show    Show header text

Examples:
  tidy template list
  tidy template show anime`,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all headers",
	RunE:  runTemplateList,
}

var templateShowCmd = &cobra.Command{
	Use:   "show <movie|anime>",
	Short: "Show header text",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateShow,
}

func init() {
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	headers := models.DefaultHeaders()

	fmt.Fprintf(out, "Headers (%d):\n\n", len(headers))
	for _, h := range headers {
		flag := ""
		if h.Content == models.ContentAnime {
			flag = " (--anime)"
		}
		fmt.Fprintf(out, "- %s%s - %s\n", h.Content, flag, h.Description)
	}
	return nil
}

func runTemplateShow(cmd *cobra.Command, args []string) error {
	content, err := models.ParseContentType(args[0])
	if err != nil {
		return err
	}
	h, err := models.HeaderFor(content)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", h.Content)
	fmt.Fprintf(out, "%s\n", h.Description)
	fmt.Fprintf(out, "\n---\n\n")
	fmt.Fprintln(out, h.Text)
	return nil
}
