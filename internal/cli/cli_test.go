package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphaelgruber/tidy/internal/config"
	"github.com/raphaelgruber/tidy/internal/models"
	"github.com/raphaelgruber/tidy/internal/service"
	"github.com/raphaelgruber/tidy/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, mode models.Mode, input string) (*session, *bytes.Buffer, string, workspace.Workspace) {
	t.Helper()
	root := t.TempDir()
	ws := workspace.New(t.TempDir(), config.Default().Files)
	svc := service.NewRenameService(service.Options{
		Root:      root,
		Mode:      mode,
		Workspace: ws,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	var out bytes.Buffer
	s := &session{
		svc:     svc,
		content: models.ContentMovie,
		in:      newLineReader(strings.NewReader(input)),
		out:     &out,
		theme:   defaultTheme,
	}
	return s, &out, root, ws
}

func TestParseChoice(t *testing.T) {
	assert.Equal(t, choiceGenerate, parseChoice("1"))
	assert.Equal(t, choiceReconcile, parseChoice(" 2\n"))
	assert.Equal(t, choiceApply, parseChoice("3"))
	assert.Equal(t, choiceExit, parseChoice("4"))
	assert.Equal(t, choiceInvalid, parseChoice("5"))
	assert.Equal(t, choiceInvalid, parseChoice(""))
}

func TestMenuModel_HandleKey(t *testing.T) {
	m := newMenuModel(defaultTheme)

	m, done := m.handleKey("down")
	assert.False(t, done)
	m, done = m.handleKey("down")
	assert.False(t, done)
	m, done = m.handleKey("enter")
	assert.True(t, done)
	assert.Equal(t, choiceApply, m.choice)

	m = newMenuModel(defaultTheme)
	m, _ = m.handleKey("up")
	assert.Equal(t, 0, m.cursor, "cursor stays on the first item")

	m, done = m.handleKey("2")
	assert.True(t, done)
	assert.Equal(t, choiceReconcile, m.choice)

	m, done = newMenuModel(defaultTheme).handleKey("q")
	assert.True(t, done)
	assert.Equal(t, choiceExit, m.choice)

	_, done = newMenuModel(defaultTheme).handleKey("x")
	assert.False(t, done)
}

func TestRenderMenu(t *testing.T) {
	text := renderMenu(defaultTheme, -1)
	for _, item := range menuItems {
		assert.Contains(t, text, item.key+") "+item.label)
	}
}

// TestMenu_FullCycle drives generate, reconcile and apply through the line menu.
func TestMenu_FullCycle(t *testing.T) {
	s, out, root, ws := newTestSession(t, models.ModeFiles, "")
	require.NoError(t, os.WriteFile(filepath.Join(root, "Old.Name.mkv"), nil, 0o644))

	// Step 1 runs before the reply exists, so feed the menu in two parts.
	s.in = newLineReader(strings.NewReader("1\n4\n"))
	require.NoError(t, s.runMenu(context.Background(), lineChooser(s.in, s.out, s.theme)))
	assert.FileExists(t, ws.PromptPath())
	assert.Contains(t, out.String(), "prompt.txt written (1 entries)")

	require.NoError(t, workspace.WriteLines(ws.OutputPath(), []string{"Clean Name: Part (2001).mkv"}))

	s.in = newLineReader(strings.NewReader("2\n3\ny\n4\n"))
	require.NoError(t, s.runMenu(context.Background(), lineChooser(s.in, s.out, s.theme)))

	assert.FileExists(t, filepath.Join(root, "Clean Name - Part (2001)", "Clean Name - Part (2001).mkv"))
	assert.NoFileExists(t, ws.PromptPath())
	assert.NoFileExists(t, ws.OutputPath())
	assert.NoFileExists(t, ws.DryRunPath())
	assert.Contains(t, out.String(), "Old.Name.mkv --> Clean Name - Part (2001).mkv")
	assert.Contains(t, out.String(), "1/1 applied")
}

func TestMenu_ApplyNeedsConfirmation(t *testing.T) {
	s, out, root, ws := newTestSession(t, models.ModeFolder, "3\nn\n4\n")
	require.NoError(t, os.Mkdir(filepath.Join(root, "Old Folder"), 0o755))
	require.NoError(t, workspace.WriteLines(ws.DryRunPath(), []string{"Old Folder --> New Folder"}))

	require.NoError(t, s.runMenu(context.Background(), lineChooser(s.in, s.out, s.theme)))

	assert.Contains(t, out.String(), "Cancelled.")
	assert.DirExists(t, filepath.Join(root, "Old Folder"))
	assert.FileExists(t, ws.DryRunPath())
}

func TestMenu_MismatchReportsCounts(t *testing.T) {
	s, out, _, ws := newTestSession(t, models.ModeFiles, "2\n4\n")
	header, _ := models.HeaderFor(models.ContentMovie)
	require.NoError(t, workspace.WriteLines(ws.PromptPath(), []string{header.Text, "A.mkv", "B.mkv", "C.mkv"}))
	require.NoError(t, workspace.WriteLines(ws.OutputPath(), []string{"A", "B"}))

	require.NoError(t, s.runMenu(context.Background(), lineChooser(s.in, s.out, s.theme)))

	assert.Contains(t, out.String(), "Lines old names: 3")
	assert.Contains(t, out.String(), "Lines renamed data: 2")
	assert.NoFileExists(t, ws.DryRunPath())
}

func TestMenu_InvalidChoiceAndEOF(t *testing.T) {
	s, out, _, _ := newTestSession(t, models.ModeFiles, "9\n")
	require.NoError(t, s.runMenu(context.Background(), lineChooser(s.in, s.out, s.theme)))
	assert.Contains(t, out.String(), "Invalid choice")
}

func TestMenu_ExitLeavesWorkFiles(t *testing.T) {
	s, _, _, ws := newTestSession(t, models.ModeFiles, "4\n")
	require.NoError(t, workspace.WriteLines(ws.DryRunPath(), []string{"a --> b"}))

	require.NoError(t, s.runMenu(context.Background(), lineChooser(s.in, s.out, s.theme)))
	assert.FileExists(t, ws.DryRunPath())
}

func TestApply_FailureReturnsError(t *testing.T) {
	s, out, _, ws := newTestSession(t, models.ModeFolder, "")
	require.NoError(t, workspace.WriteLines(ws.DryRunPath(), []string{"missing --> Missing (2001)"}))

	err := s.apply(context.Background(), true)
	assert.ErrorContains(t, err, "1 of 1 renames failed")
	assert.Contains(t, out.String(), "kept in the dry-run file")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"  y  \n", true},
		{"yes\n", false},
		{"n\n", false},
		{"", false},
		{"y", true},
	}
	for _, tt := range tests {
		s, _, _, _ := newTestSession(t, models.ModeFiles, tt.in)
		got, err := s.confirm("? ")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestRenderReport_Empty(t *testing.T) {
	assert.Contains(t, renderReport(defaultTheme, service.Report{}, false), "nothing to apply")
}

func TestTemplateCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TIDY_CONFIG", "")
	t.Setenv("TIDY_LOG_FILE", filepath.Join(dir, "tidy.log"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"template", "list"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "- movie")
	assert.Contains(t, out.String(), "- anime (--anime)")

	out.Reset()
	rootCmd.SetArgs([]string{"template", "show", "anime"})
	require.NoError(t, rootCmd.Execute())
	header, _ := models.HeaderFor(models.ContentAnime)
	assert.Contains(t, out.String(), header.Text)
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TIDY_CONFIG", "")
	t.Setenv("TIDY_LOG_FILE", filepath.Join(dir, "tidy.log"))

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.mkv"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "Show"), 0o755))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"list", root, "files"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Entries (1):")
	assert.Contains(t, out.String(), "- a.mkv")
	assert.NotContains(t, out.String(), "notes.txt")

	out.Reset()
	rootCmd.SetArgs([]string{"list", root, "folder"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "- Show")

	out.Reset()
	rootCmd.SetArgs([]string{"list", root, "both"})
	assert.Error(t, rootCmd.Execute())
}
