package cli

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/raphaelgruber/tidy/internal/service"
)

// Theme holds the color scheme for console output.
type Theme struct {
	Title   lipgloss.Color
	Status  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warn    lipgloss.Color
	Hint    lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Title:   lipgloss.Color("#AF87FF"), // violet
	Status:  lipgloss.Color("#5FAFD7"), // light blue
	Success: lipgloss.Color("#00D787"), // green
	Error:   lipgloss.Color("#FF005F"), // red
	Warn:    lipgloss.Color("#FFAF00"), // amber
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
}

// Style functions for dynamic theming
func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Title).Bold(true)
}

func (t Theme) statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Status)
}

func (t Theme) completedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

func (t Theme) warnStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Warn)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

// renderReport builds the batch summary printed after apply.
func renderReport(theme Theme, r service.Report, verbose bool) string {
	if len(r.Outcomes) == 0 {
		return theme.hintStyle().Render("Dry-run file is empty, nothing to apply.") + "\n"
	}

	var sb strings.Builder
	for _, o := range r.Outcomes {
		switch o.Status {
		case service.StatusApplied:
			sb.WriteString(theme.completedStyle().Render("  ✓ ") + fmt.Sprintf("%s --> %s\n", o.Pair.Old, o.Target))
		case service.StatusFailed:
			sb.WriteString(theme.errorStyle().Render("  ✗ ") + fmt.Sprintf("%s: %v\n", o.Pair, o.Err))
		case service.StatusSkipped:
			sb.WriteString(theme.warnStyle().Render("  - ") + fmt.Sprintf("line %d skipped: %v\n", o.Line, o.Err))
		}
	}

	// Completion bar
	pct := float64(r.Applied()) / float64(len(r.Outcomes))
	bar := progress.New(
		progress.WithDefaultBlend(),
		progress.WithWidth(40),
	)
	counts := fmt.Sprintf("%d/%d applied", r.Applied(), len(r.Outcomes))
	sb.WriteString("\n" + bar.ViewAs(pct) + " " + counts + "\n")

	if r.Failed() > 0 || r.Skipped() > 0 {
		sb.WriteString(theme.errorStyle().Render(fmt.Sprintf("Failed: %d  Skipped: %d", r.Failed(), r.Skipped())) + "\n")
	}
	if r.Cleaned {
		sb.WriteString(theme.completedStyle().Render("✓ Completed") + ", work files removed.\n")
	} else if r.Retained > 0 {
		sb.WriteString(theme.hintStyle().Render(fmt.Sprintf(
			"%d unapplied lines kept in the dry-run file. Fix them and run step 3 again.", r.Retained)) + "\n")
	}

	if verbose && len(r.Metrics.Operations) > 0 {
		sb.WriteString("\nTimings:\n")
		for _, op := range r.Metrics.Operations {
			sb.WriteString(fmt.Sprintf("  %-7s count=%d failed=%d avg=%s max=%s\n",
				op.Name, op.Count, op.Failures, op.AvgTime, op.MaxTime))
		}
	}
	return sb.String()
}
