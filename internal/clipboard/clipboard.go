// Package clipboard hands the prompt to, and the reply from, the system
// clipboard so the user does not have to open the work files.
package clipboard

import "github.com/atotto/clipboard"

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System is the desktop clipboard. It needs xclip, xsel or wl-clipboard on
// Linux; errors are returned unchanged.
type System struct{}

// ReadAll returns the current clipboard text.
func (System) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// WriteAll replaces the clipboard text.
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Unsupported reports whether the platform has no clipboard utility at all.
func Unsupported() bool {
	return clipboard.Unsupported
}

// Memory is an in-process clipboard used by tests and headless runs.
type Memory struct {
	Text string
	Err  error
}

// ReadAll returns the stored text or the configured error.
func (m *Memory) ReadAll() (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// WriteAll stores text unless an error is configured.
func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}
