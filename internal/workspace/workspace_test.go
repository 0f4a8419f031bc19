package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/raphaelgruber/tidy/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace(t *testing.T) Workspace {
	t.Helper()
	return New(t.TempDir(), config.Default().Files)
}

func TestPaths(t *testing.T) {
	ws := New("/work", config.Default().Files)
	assert.Equal(t, filepath.Join("/work", "prompt.txt"), ws.PromptPath())
	assert.Equal(t, filepath.Join("/work", "output.txt"), ws.OutputPath())
	assert.Equal(t, filepath.Join("/work", "dry-run.txt"), ws.DryRunPath())
	assert.Equal(t, filepath.Join("/work", "log.log"), ws.LogPath())
}

func TestWriteReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, WriteLines(path, []string{"a", "b c"}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb c\n", string(b))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b c"}, lines)
}

func TestReadLines_PastedText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	require.NoError(t, os.WriteFile(path, []byte("Alien (1979)\r\n\r\n  \nAliens (1986)\r\n\n"), 0o644))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alien (1979)", "Aliens (1986)"}, lines)
}

func TestReadLines_Missing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReset(t *testing.T) {
	ws := newTestWorkspace(t)
	require.NoError(t, os.WriteFile(ws.OutputPath(), []byte("stale reply\n"), 0o644))

	require.NoError(t, ws.Reset())

	info, err := os.Stat(ws.OutputPath())
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestDiscardDryRun(t *testing.T) {
	ws := newTestWorkspace(t)
	require.NoError(t, ws.DiscardDryRun(), "missing file is fine")

	require.NoError(t, os.WriteFile(ws.DryRunPath(), []byte("a --> b\n"), 0o644))
	require.NoError(t, ws.DiscardDryRun())
	assert.NoFileExists(t, ws.DryRunPath())
}

func TestCleanup(t *testing.T) {
	ws := newTestWorkspace(t)
	for _, p := range []string{ws.PromptPath(), ws.DryRunPath(), ws.LogPath()} {
		require.NoError(t, os.WriteFile(p, []byte("x\n"), 0o644))
	}

	// output.txt is absent on purpose.
	require.NoError(t, ws.Cleanup())

	for _, p := range []string{ws.PromptPath(), ws.OutputPath(), ws.DryRunPath()} {
		assert.NoFileExists(t, p)
	}
	assert.FileExists(t, ws.LogPath())

	require.NoError(t, ws.Cleanup(), "second cleanup is a no-op")
}

func TestKeepDryRunCleanup(t *testing.T) {
	ws := newTestWorkspace(t)
	for _, p := range []string{ws.PromptPath(), ws.OutputPath(), ws.DryRunPath()} {
		require.NoError(t, os.WriteFile(p, []byte("x\n"), 0o644))
	}

	require.NoError(t, ws.KeepDryRunCleanup())
	assert.NoFileExists(t, ws.PromptPath())
	assert.NoFileExists(t, ws.OutputPath())
	assert.FileExists(t, ws.DryRunPath())
}
