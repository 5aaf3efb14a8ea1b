package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/wahlandcase/repostatus/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// SectionHeader renders "─── TITLE ─────" in color
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// SpinnerFrames animate the scanning screen
var SpinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner returns the spinner character at the given frame index
func Spinner(frame int) string {
	return string(SpinnerFrames[frame%len(SpinnerFrames)])
}

// Arrow returns an arrow indicator for selection
func Arrow(selected bool) string {
	if selected {
		return "▶ "
	}
	return "  "
}

// ProgressBar renders healthy/total as a bar followed by the rounded percentage
func ProgressBar(healthy, total int, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}

	ratio := float64(healthy) / float64(total)
	filled := min(int(math.Round(ratio*float64(width))), width)

	bar := lipgloss.NewStyle().Foreground(ColorGreen).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(ColorDarkGray).Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("[%s] %d%%", bar, int(math.Round(ratio*100)))
}

// KeyBinding renders a key binding hint
func KeyBinding(key, description string, color lipgloss.Color) string {
	keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		descStyle.Render(description),
	)
}

// StatusIcon returns the list icon and color for a repo status
func StatusIcon(s models.RepoStatus) (string, lipgloss.Color) {
	switch {
	case !s.Exists:
		return "✗", ColorRed
	case !s.IsGit:
		return "⊘", ColorYellow
	case s.Health == models.Healthy:
		return "✓", ColorGreen
	case s.Health == models.Empty:
		return "○", ColorYellow
	default:
		return "!", ColorRed
	}
}

// DetailBox renders key/value rows in a bordered box titled with the repo name
func DetailBox(title string, fields [][2]string, color lipgloss.Color, width int) string {
	keyWidth := 0
	for _, f := range fields {
		keyWidth = max(keyWidth, len(f[0]))
	}
	keyStyle := lipgloss.NewStyle().Foreground(ColorCyan).Width(keyWidth)

	rows := []string{lipgloss.NewStyle().Bold(true).Foreground(color).Render(" " + title + " ")}
	for _, f := range fields {
		rows = append(rows, keyStyle.Render(f[0])+" "+f[1])
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(width).
		Render(strings.Join(rows, "\n"))
}
