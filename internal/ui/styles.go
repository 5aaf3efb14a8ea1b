package ui

import (
	"github.com/wahlandcase/repostatus/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorPurple   = lipgloss.Color("#AA55FF")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

// DisableColor switches all lipgloss output to plain text
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func HealthColor(h models.Health) lipgloss.Color {
	switch h {
	case models.Healthy:
		return ColorGreen
	case models.Empty:
		return ColorYellow
	case models.HealthError:
		return ColorRed
	default:
		return ColorDarkGray
	}
}

// ValidationColor colors the validation column of the repository list
func ValidationColor(v models.Validation) lipgloss.Color {
	switch v {
	case models.Passed:
		return ColorGreen
	case models.Warning:
		return ColorYellow
	case models.ValidationError:
		return ColorRed
	default:
		return ColorDarkGray
	}
}
