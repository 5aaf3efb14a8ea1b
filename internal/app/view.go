package app

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/repostatus/internal/models"
	"github.com/wahlandcase/repostatus/internal/reconcile"
	"github.com/wahlandcase/repostatus/internal/report"
	"github.com/wahlandcase/repostatus/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// contentWidth returns the usable content width, adapting to terminal size
func (m Model) contentWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

// View renders the application
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	var sections []string
	sections = append(sections, ui.RenderBanner())
	sections = append(sections, "")

	outerBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPurple).
		Width(m.contentWidth()).
		Padding(1, 2)

	var content string
	switch m.screen {
	case ScreenScanning:
		content = m.renderScanning()
	case ScreenDetail:
		content = m.renderDetail()
	default:
		content = m.renderList()
	}
	sections = append(sections, outerBox.Render(content))

	sections = append(sections, "")
	sections = append(sections, m.renderStatusBar())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, strings.Join(sections, "\n"))
}

func (m Model) renderScanning() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	return fmt.Sprintf("%s Scanning %d repositories...",
		spinnerStyle.Render(ui.Spinner(m.spinnerFrame)),
		len(m.opts.Links),
	)
}

func (m Model) renderList() string {
	var lines []string
	lines = append(lines, ui.SectionHeader("REPOSITORIES", ui.ColorCyan))
	lines = append(lines, "")

	if len(m.statuses) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(ui.ColorDarkGray).Render("  No repositories declared"))
		return strings.Join(lines, "\n")
	}

	nameWidth := 0
	for _, s := range m.statuses {
		nameWidth = max(nameWidth, len(s.RepoName))
	}

	for i, s := range m.statuses {
		highlighted := i == m.cursor
		icon, color := ui.StatusIcon(s)

		nameStyle := lipgloss.NewStyle().Width(nameWidth)
		if highlighted {
			nameStyle = nameStyle.Bold(true).Foreground(ui.ColorCyan)
		}
		healthStyle := lipgloss.NewStyle().Foreground(ui.HealthColor(s.Health)).Width(8)
		validationStyle := lipgloss.NewStyle().Foreground(ui.ValidationColor(s.Validation)).Width(11)
		dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)

		lines = append(lines, fmt.Sprintf("%s%s %s  %s  %s  %s  %s",
			lipgloss.NewStyle().Foreground(ui.ColorCyan).Render(ui.Arrow(highlighted)),
			lipgloss.NewStyle().Foreground(color).Render(icon),
			nameStyle.Render(s.RepoName),
			validationStyle.Render(s.Validation.Display()),
			healthStyle.Render(s.Health.Display()),
			dimStyle.Render(fmt.Sprintf("%-10s", models.SyncDisplay(s.LastSync))),
			s.Notes,
		))
	}

	total := len(m.statuses)
	healthy := reconcile.CountHealthy(m.statuses)
	available := reconcile.CountAvailable(m.statuses)

	lines = append(lines, "")
	lines = append(lines, ui.SectionHeader("SUMMARY", ui.ColorMagenta))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  Available: %d/%d", available, total))
	lines = append(lines, fmt.Sprintf("  Health:    %s %s",
		ui.ProgressBar(healthy, total, 20),
		report.OverallIcon(healthy, total),
	))
	if !m.scannedAt.IsZero() {
		lines = append(lines, lipgloss.NewStyle().Foreground(ui.ColorDarkGray).
			Render("  Scanned "+m.scannedAt.UTC().Format(report.TimestampLayout)))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	s, ok := m.selected()
	if !ok {
		return m.renderList()
	}

	color := ui.HealthColor(s.Health)
	if s.Health == models.HealthUnknown {
		color = ui.ColorWhite
	}
	return ui.DetailBox(s.RepoName, ui.DetailFields(s), color, m.contentWidth()-8)
}

func (m Model) renderStatusBar() string {
	var hints []string
	switch m.screen {
	case ScreenScanning:
		hints = append(hints, ui.KeyBinding("q", "quit", ui.ColorRed))
	case ScreenDetail:
		hints = append(hints,
			ui.KeyBinding(m.keys.Back.Help().Key, m.keys.Back.Help().Desc, ui.ColorCyan),
			ui.KeyBinding(m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc, ui.ColorRed),
		)
	default:
		for _, b := range []struct {
			help  string
			desc  string
			color lipgloss.Color
		}{
			{m.keys.Up.Help().Key + " " + m.keys.Down.Help().Key, "move", ui.ColorCyan},
			{m.keys.Detail.Help().Key, m.keys.Detail.Help().Desc, ui.ColorCyan},
			{m.keys.Rescan.Help().Key, m.keys.Rescan.Help().Desc, ui.ColorGreen},
			{m.keys.Dashboard.Help().Key, m.keys.Dashboard.Help().Desc, ui.ColorMagenta},
			{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc, ui.ColorRed},
		} {
			hints = append(hints, ui.KeyBinding(b.help, b.desc, b.color))
		}
	}

	bar := strings.Join(hints, "  ")
	switch {
	case m.errorMessage != "":
		bar += "\n" + lipgloss.NewStyle().Foreground(ui.ColorRed).Render("✗ "+m.errorMessage)
	case m.message != "":
		bar += "\n" + lipgloss.NewStyle().Foreground(ui.ColorGreen).Render(m.message)
	}
	return bar
}
