package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// menuChoice is one of the numbered menu options.
type menuChoice int

const (
	choiceInvalid menuChoice = iota
	choiceGenerate
	choiceReconcile
	choiceApply
	choiceExit
)

type menuItem struct {
	key    string
	choice menuChoice
	label  string
}

var menuItems = []menuItem{
	{"1", choiceGenerate, "Generate the LLM prompt (prompt.txt)"},
	{"2", choiceReconcile, "Read the LLM reply (output.txt) and write dry-run.txt for review"},
	{"3", choiceApply, "Rename and/or create the folders listed in dry-run.txt"},
	{"4", choiceExit, "Exit"},
}

func parseChoice(s string) menuChoice {
	s = strings.TrimSpace(s)
	for _, item := range menuItems {
		if item.key == s {
			return item.choice
		}
	}
	return choiceInvalid
}

// chooser returns the next menu selection. io.EOF ends the menu.
type chooser func() (menuChoice, error)

// lineChooser prints the menu and reads a numbered choice from a line of input.
func lineChooser(in *bufio.Reader, out io.Writer, theme Theme) chooser {
	return func() (menuChoice, error) {
		fmt.Fprint(out, renderMenu(theme, -1))
		fmt.Fprint(out, "Please choose one option: ")
		line, err := in.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return choiceInvalid, err
		}
		return parseChoice(line), nil
	}
}

func renderMenu(theme Theme, cursor int) string {
	var sb strings.Builder
	sb.WriteString("\n" + theme.titleStyle().Render("----- Tidy -----") + "\n")
	for i, item := range menuItems {
		line := fmt.Sprintf("%s) %s", item.key, item.label)
		if i == cursor {
			line = theme.statusStyle().Render("> " + line)
		} else if cursor >= 0 {
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

// menuModel is the bubbletea model for the interactive menu.
type menuModel struct {
	cursor int
	choice menuChoice
	theme  Theme
}

func newMenuModel(theme Theme) menuModel {
	return menuModel{theme: theme}
}

// Init returns no initial command.
func (m menuModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		var done bool
		m, done = m.handleKey(msg.String())
		if done {
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleKey applies one key press and reports whether a choice was made.
func (m menuModel) handleKey(key string) (menuModel, bool) {
	switch key {
	case "ctrl+c", "q", "esc":
		m.choice = choiceExit
		return m, true
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter":
		m.choice = menuItems[m.cursor].choice
		return m, true
	default:
		if c := parseChoice(key); c != choiceInvalid {
			m.choice = c
			return m, true
		}
	}
	return m, false
}

// View renders the menu.
func (m menuModel) View() tea.View {
	hint := m.theme.hintStyle().Render("↑/↓ to move, enter or 1-4 to choose, q to quit")
	return tea.NewView(renderMenu(m.theme, m.cursor) + hint + "\n")
}

// teaChooser runs the bubbletea menu once per selection.
func teaChooser(theme Theme) chooser {
	return func() (menuChoice, error) {
		final, err := tea.NewProgram(newMenuModel(theme)).Run()
		if err != nil {
			return choiceInvalid, fmt.Errorf("menu UI error: %w", err)
		}
		if m, ok := final.(menuModel); ok {
			return m.choice, nil
		}
		return choiceExit, nil
	}
}

// isInteractive reports whether cmd reads from a terminal.
func isInteractive(cmd *cobra.Command) bool {
	if cmd.InOrStdin() != os.Stdin {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func runMenuCmd(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}

	choose := lineChooser(s.in, s.out, s.theme)
	if isInteractive(cmd) {
		choose = teaChooser(s.theme)
	}
	return s.runMenu(cmd.Context(), choose)
}
